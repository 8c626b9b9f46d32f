package stay

import (
	"campground/shared/constant"
	"fmt"
	"time"
)

// Range is a half-open interval of calendar dates: the stay occupies the
// nights from CheckIn up to but not including CheckOut. A reservation ending
// on day N and another beginning on day N share a calendar date but not a
// night, so they never conflict.
type Range struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewRange builds a Range, rejecting ranges where check-in is not strictly
// before check-out. A zero-night request (check-in equals check-out) is an
// invalid range, never a trivially conflict-free stay. Both ends are floored
// to their calendar date, so ranges built from times in different locations
// still compare date-against-date.
func NewRange(checkIn, checkOut time.Time) (Range, error) {
	in := Date(checkIn)
	out := Date(checkOut)

	if !in.Before(out) {
		return Range{}, ErrInvalidDateRange
	}

	return Range{CheckIn: in, CheckOut: out}, nil
}

// Nights returns the number of nights the range spans. Dates are compared as
// calendar days so a DST transition inside the stay cannot skew the count.
func (r Range) Nights() int {
	return int(Date(r.CheckOut).Sub(Date(r.CheckIn)).Hours() / 24)
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s)",
		r.CheckIn.Format(constant.CalendarDateFormat),
		r.CheckOut.Format(constant.CalendarDateFormat))
}

// Overlaps reports whether two half-open date ranges share at least one
// night. Symmetric in its arguments; back-to-back ranges do not overlap.
func Overlaps(a, b Range) bool {
	return a.CheckIn.Before(b.CheckOut) && b.CheckIn.Before(a.CheckOut)
}

// Date floors a time to its calendar date, anchored at UTC midnight. The
// date is read in the time's own location, so "today" for an instant in the
// application timezone is that timezone's calendar day, not UTC's.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
