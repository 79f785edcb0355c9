package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact is an address-book entry owned by exactly one user.
type Contact struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Birthday       *time.Time // Date only; the time of day is ignored.
	AdditionalData string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// BirthdayWithin reports whether the contact's next birthday falls in [from, from+days].
// Year is ignored; a 29 February birthday is observed on 28 February in non-leap years.
func (c *Contact) BirthdayWithin(from time.Time, days int) bool {
	if c.Birthday == nil {
		return false
	}

	start := truncateToDate(from)
	end := start.AddDate(0, 0, days)

	for _, year := range []int{start.Year(), start.Year() + 1} {
		next := birthdayInYear(*c.Birthday, year, start.Location())
		if !next.Before(start) && !next.After(end) {
			return true
		}
	}

	return false
}

func birthdayInYear(birthday time.Time, year int, loc *time.Location) time.Time {
	month, day := birthday.Month(), birthday.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}

	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
