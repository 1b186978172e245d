package iso8601

/*
civil.go implements the broken-down civil time record populated by
the decoder and its normalization to an absolute instant.
*/

import (
	"math"
	"time"
)

const (
	tmYearBase = 1900 // civil.year counts years since this one
	dstAuto    = -1   // let zone rules decide whether DST applies
)

/*
civil is a broken-down civil time. Following the classic tm layout,
year counts years since 1900 and month is zero-based. A civil value
carries no zone; one is supplied at normalization.
*/
type civil struct {
	year   int // years since 1900
	month  int // 0-11
	day    int // 1-31
	hour   int // 0-23
	minute int // 0-59
	second int // 0-59 (a leap second is clamped before storage)
	isdst  int // always dstAuto
}

func newCivil() civil { return civil{isdst: dstAuto} }

/*
normalize resolves the receiver in loc and returns whole seconds since
the Unix epoch. Out-of-range fields roll over into the next larger unit
(e.g. February 31 becomes March 3 or 2).
*/
func (r civil) normalize(loc *time.Location) (sec int64, err error) {
	if loc == nil {
		err = mkerr("no location available for civil time")
		return
	}

	// isdst is always dstAuto, which is what time.Date implements:
	// the zone's own rules select the offset in effect.
	t := time.Date(r.year+tmYearBase, time.Month(r.month+1), r.day,
		r.hour, r.minute, r.second, 0, loc)
	sec = t.Unix()
	return
}

/*
composeMillis returns sec*1000+frac, or an error if the result does
not fit within an int64.
*/
func composeMillis(sec, frac int64) (ms int64, err error) {
	if sec > math.MaxInt64/1000 || sec < math.MinInt64/1000 {
		err = mkerrf("seconds value ", sec, " overflows milliseconds")
		return
	}
	ms = sec * 1000
	if frac > 0 && ms > math.MaxInt64-frac {
		err = mkerrf("fraction ", frac, " overflows milliseconds")
		ms = 0
		return
	}
	ms += frac
	return
}

// daysInMonth is the number of days for non-leap years in each
// calendar month starting at 1.
var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysIn returns the length of month (1-12) in the given full year.
func daysIn(month, year int) int {
	if month == 2 && isLeap(year) {
		return 29
	}
	return daysInMonth[month]
}
