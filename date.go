package fatinspect

import (
	"fmt"
	"time"
)

// DateTime is a decoded FAT write stamp. The fields are the raw bit fields
// and are not validated, so Month may be 0 or 15.
type DateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// DecodeDateTime splits a packed FAT date and time:
//  date bits 0–4: day of month, bits 5–8: month, bits 9–15: years since 1980
//  time bits 0–4: 2 second count, bits 5–10: minutes, bits 11–15: hours
func DecodeDateTime(date, t uint16) DateTime {
	return DateTime{
		Year:   1980 + int(date>>9),
		Month:  int(date>>5) & 0xF,
		Day:    int(date) & 0x1F,
		Hour:   int(t>>11) & 0x1F,
		Minute: int(t>>5) & 0x3F,
		Second: int(t&0x1F) * 2,
	}
}

// String formats the stamp as YYYY-MM-DD hh:mm:ss using the raw field values.
func (d DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
}

// Time converts the stamp into a time.Time in UTC.
//
// As value 0 for day and month is invalid, time.Time{} is returned in that case
// to be compatible with time.Time.IsZero().
//
// Note that values bigger than valid ones are just added by time.Date, e.g. month 13
// increments the year.
func (d DateTime) Time() time.Time {
	if d.Day == 0 || d.Month == 0 {
		return time.Time{}
	}

	return time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, 0, time.UTC)
}
