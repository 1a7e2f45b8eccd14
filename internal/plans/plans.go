package plans

import "strings"

// Tier is a user's subscription level. It is written by the billing
// integration and trusted verbatim everywhere else.
type Tier string

const (
	TierFree     Tier = "FREE"
	TierPro      Tier = "PRO"
	TierProPlus  Tier = "PRO_PLUS"
	TierLifetime Tier = "LIFETIME"
)

// Unlimited marks a quota that is not enforced.
const Unlimited = 0

// Entitlement is the derived set of quotas and feature flags for a tier.
// Quotas of Unlimited (0) are not enforced.
type Entitlement struct {
	DailyQuota   int
	MonthlyQuota int

	TailoredResume  bool
	CoverLetter     bool
	InterviewQA     bool
	FullKeywordList bool
	Export          bool

	// KeywordLimit caps the missing-keyword list in immediate analyze
	// responses; 0 means no cap.
	KeywordLimit int
}

// ParseTier normalizes a raw plan string to a known tier. Unknown values
// fall back to FREE so a bad plan column can never unlock features.
func ParseTier(raw string) Tier {
	switch Tier(strings.ToUpper(strings.TrimSpace(raw))) {
	case TierPro:
		return TierPro
	case TierProPlus:
		return TierProPlus
	case TierLifetime:
		return TierLifetime
	default:
		return TierFree
	}
}

// Resolve maps a tier to its entitlement. This table is the single source
// of truth for quota numbers and feature gating; the limiter and the result
// projector both consume it.
func Resolve(tier Tier) Entitlement {
	switch tier {
	case TierPro:
		return Entitlement{
			DailyQuota:      Unlimited,
			MonthlyQuota:    20,
			TailoredResume:  true,
			CoverLetter:     true,
			FullKeywordList: true,
			Export:          true,
		}
	case TierProPlus, TierLifetime:
		return Entitlement{
			DailyQuota:      Unlimited,
			MonthlyQuota:    Unlimited,
			TailoredResume:  true,
			CoverLetter:     true,
			InterviewQA:     true,
			FullKeywordList: true,
			Export:          true,
		}
	default:
		return Entitlement{
			DailyQuota:   1,
			MonthlyQuota: Unlimited,
			KeywordLimit: 10,
		}
	}
}
