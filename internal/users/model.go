package users

import (
	"time"

	"atsmatch-backend/internal/plans"
)

// User is the account record. Plan is the single source of truth for
// entitlement; it is written by the billing integration or an admin, never
// by the analysis pipeline.
type User struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	Plan          plans.Tier `json:"plan"`
	EmailVerified bool       `json:"emailVerified"`
	CreatedAt     time.Time  `json:"createdAt"`
}
