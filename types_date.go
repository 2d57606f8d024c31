package invoicer

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument. See [time.Format].
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// ParseDate parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func ParseDate(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

func (d *Date) UnmarshalJSON(bytes []byte) error {
	// null and "" decode to the zero date, so hand-edited files stay readable
	if string(bytes) == "null" {
		*d = Date{}
		return nil
	}
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if str == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Period identifies the month an invoice bills for.
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the period containing the given date.
func PeriodOf(d Date) Period { return Period{Year: d.Year(), Month: d.Month()} }

// CurrentPeriod returns the period containing today.
func CurrentPeriod() Period { return PeriodOf(Today()) }

func (p Period) IsZero() bool { return p.Year == 0 && p.Month == 0 }

// String formats the period the way it appears on an invoice, e.g. "October 2024".
func (p Period) String() string {
	return fmt.Sprintf("%s %d", p.Month.String(), p.Year)
}

// ParsePeriod parses a period from either the invoice form ("October 2024")
// or the compact form ("2024-10").
func ParsePeriod(str string) (Period, error) {
	str = strings.TrimSpace(str)
	if t, err := time.Parse("January 2006", str); err == nil {
		return Period{Year: t.Year(), Month: t.Month()}, nil
	}
	if t, err := time.Parse("2006-01", str); err == nil {
		return Period{Year: t.Year(), Month: t.Month()}, nil
	}
	return Period{}, fmt.Errorf("invalid period %q, want e.g. %q or %q", str, "October 2024", "2024-10")
}
