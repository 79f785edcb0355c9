package auth

import (
	"time"

	"contacts/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns a Clock that reads the wall clock in UTC.
func NewSystemClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
