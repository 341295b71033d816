// Package date implements the day granularity dates carried by account transactions.
package date

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represent a date with no lower than day granularity.
//
// A Date decoded from text that is not a date keeps that text, and prints it
// unchanged.
type Date struct {
	y   int
	m   time.Month
	d   int
	raw string
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{y: year, m: month, d: day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Text returns a Date that is only the given text.
func Text(s string) Date { return Date{raw: s} }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// String format the date in its standard format, or returns its text.
func (d Date) String() string {
	switch {
	case d.raw != "":
		return d.raw
	case d.IsZero():
		return ""
	}
	return d.time().Format(DateFormat)
}

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
//
// The account API sometimes sends full timestamps, only the day part is kept.
func Parse(str string) (Date, error) {
	if day, _, ok := strings.Cut(str, "T"); ok {
		str = day
	}
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json value.
//
// null and an empty string decode to the zero Date. Strings that do not parse
// and other JSON values (like epoch numbers) are kept as text.
func (j *Date) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// not a string, data is a valid JSON value.
		*j = Text(string(bytes.TrimSpace(data)))
		return nil
	}
	if str == "" {
		*j = Date{}
		return nil
	}
	d, err := Parse(str)
	if err != nil {
		d = Text(str)
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
