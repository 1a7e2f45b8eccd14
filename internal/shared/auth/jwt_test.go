package auth

import "testing"

func TestSignAndVerifyRoundTrip(t *testing.T) {
	token, err := Sign("test-secret", "user-1", "a@b.c", "PRO")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	claims, err := Verify("test-secret", token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("sub = %q, want user-1", claims.Subject)
	}
	if claims.Email != "a@b.c" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.Plan != "PRO" {
		t.Errorf("plan = %q", claims.Plan)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := Sign("secret-a", "user-1", "", "FREE")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := Verify("secret-b", token); err == nil {
		t.Fatal("expected verification to fail with wrong secret")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := Verify("secret", "not.a.token"); err == nil {
		t.Fatal("expected verification to fail")
	}
}

func TestSignRequiresSecret(t *testing.T) {
	if _, err := Sign("", "user-1", "", "FREE"); err == nil {
		t.Fatal("expected error without secret")
	}
}
