// Package types contains special types for the API.
package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Date is a calendar date without a time component. It is stored and
// serialized as "YYYY-MM-DD" and always operates in UTC.
type Date time.Time

// NewDate returns the Date for a year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf truncates a time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current date.
func Today() Date {
	return DateOf(time.Now().In(time.UTC))
}

// ParseDate parses a date in "YYYY-MM-DD" representation.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}

	return Date(t), nil
}

func (d Date) String() string {
	return time.Time(d).Format("2006-01-02")
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// AddDays returns the date n days later. Negative n goes back in time.
func (d Date) AddDays(n int) Date {
	return Date(time.Time(d).AddDate(0, 0, n))
}

// AddMonths returns the date n months later. When the day of the month does
// not exist in the target month, the last day of that month is used, so
// adding a month to January 31 yields the last day of February.
func (d Date) AddMonths(n int) Date {
	t := time.Time(d)
	day := t.Day()

	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}

	return NewDate(first.Year(), first.Month(), day)
}

// DaysSince returns the number of whole days from other to d.
func (d Date) DaysSince(other Date) int {
	return int(time.Time(d).Sub(time.Time(other)).Hours() / 24)
}

// Before reports whether d is before other.
func (d Date) Before(other Date) bool {
	return time.Time(d).Before(time.Time(other))
}

// After reports whether d is after other.
func (d Date) After(other Date) bool {
	return time.Time(d).After(time.Time(other))
}

// Equal reports whether d and other are the same date.
func (d Date) Equal(other Date) bool {
	return time.Time(d).Equal(time.Time(other))
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("cannot parse %q as date", s)
	}
	s = s[1 : len(s)-1]

	// Accept a plain date as well as a full timestamp
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("cannot parse %q as date", s)
		}
	}

	*d = DateOf(parsed.In(time.UTC))
	return nil
}

// Value implements the driver.Valuer interface.
func (d Date) Value() (driver.Value, error) {
	return time.Time(d), nil
}

// Scan implements the sql.Scanner interface.
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		*d = DateOf(v.In(time.UTC))
		return nil
	case string:
		parsed, err := ParseDate(v[:min(len(v), 10)])
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

// GormDataType defines the data type used by gorm.
func (Date) GormDataType() string {
	return "date"
}
