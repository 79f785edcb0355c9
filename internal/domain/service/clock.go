package service

import "time"

// Clock is the single time source for token issuance and expiry checks.
type Clock interface {
	Now() time.Time
}
