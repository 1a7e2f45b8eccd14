package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"atsmatch-backend/internal/plans"
	"atsmatch-backend/internal/shared/auth"
	"atsmatch-backend/internal/shared/server/respond"
)

const (
	userIDKey    = "userId"
	userEmailKey = "userEmail"
	userPlanKey  = "userPlan"
)

// Auth validates bearer session tokens and stores the identity in context.
// The token carries {sub, email, plan} issued by the session service; this
// core trusts all three fields verbatim.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if token == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		claims, err := auth.Verify(jwtSecret, token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
			return
		}

		c.Set(userIDKey, claims.Subject)
		if claims.Email != "" {
			c.Set(userEmailKey, claims.Email)
		}
		c.Set(userPlanKey, string(plans.ParseTier(claims.Plan)))
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// UserEmailFromContext fetches the email set by the auth middleware.
func UserEmailFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userEmailKey)
	if email, ok := val.(string); ok {
		return email
	}
	return ""
}

// UserPlanFromContext fetches the plan tier set by the auth middleware.
func UserPlanFromContext(c *gin.Context) plans.Tier {
	if c == nil {
		return plans.TierFree
	}
	val, _ := c.Get(userPlanKey)
	if plan, ok := val.(string); ok {
		return plans.ParseTier(plan)
	}
	return plans.TierFree
}
