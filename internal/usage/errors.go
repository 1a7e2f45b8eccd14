package usage

import "errors"

// ErrLimitReached indicates the user exhausted their plan's analysis quota.
var ErrLimitReached = errors.New("limit reached")
