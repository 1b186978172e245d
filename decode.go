package iso8601

/*
decode.go implements the ISO 8601 extended format decoder.
*/

import "time"

/*
Field identifies a component of an ISO 8601 string, in the order in
which the decoder visits them.
*/
type Field int

const (
	FieldYear Field = iota
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
	FieldFraction
	FieldZone
)

var fieldNames = [...]string{
	FieldYear:     `year`,
	FieldMonth:    `month`,
	FieldDay:      `day`,
	FieldHour:     `hour`,
	FieldMinute:   `minute`,
	FieldSecond:   `second`,
	FieldFraction: `fraction`,
	FieldZone:     `zone`,
}

/*
String returns the string representation of the receiver instance.
*/
func (r Field) String() string {
	if r < 0 || int(r) >= len(fieldNames) {
		return `unknown`
	}
	return fieldNames[r]
}

// fieldSpec describes a fixed-width numeric field: the absolute offset
// at which it must end, and its inclusive value bounds.
type fieldSpec struct {
	end, min, max int
}

// Offsets mirror the layout YYYY-MM-DDTHH:MM:SS and are load-bearing.
var fieldSpecs = [...]fieldSpec{
	FieldYear:   {end: 4, min: tmYearBase, max: 9999},
	FieldMonth:  {end: 7, min: 1, max: 12},
	FieldDay:    {end: 10, min: 1, max: 31},
	FieldHour:   {end: 13, min: 0, max: 23},
	FieldMinute: {end: 16, min: 0, max: 59},
	FieldSecond: {end: 19, min: 0, max: 60},
}

// fracPlaces is the precision of a Timestamp: milliseconds.
const fracPlaces = 3

/*
Decoder converts ISO 8601 extended format strings into [Timestamp]
values. The zero value is ready for use and is equivalent to a
Decoder configured with a zero [Options] instance.

A Decoder holds no mutable state and may be used concurrently.
*/
type Decoder struct {
	opts Options
}

var defaultDecoder Decoder

/*
NewDecoder returns a new *[Decoder] configured with opts.
*/
func NewDecoder(opts Options) *Decoder {
	return &Decoder{opts: opts}
}

/*
Options returns the [Options] in effect for the receiver instance.
*/
func (r *Decoder) Options() Options {
	if r == nil {
		return Options{}
	}
	return r.opts
}

/*
Decode returns an instance of [Timestamp] alongside an error following
an attempt to decode b. The bytes are only read for the duration of
the call.

The accepted layouts are:

	YYYY-MM-DD
	YYYY-MM-DDTHH
	YYYY-MM-DDTHH:MM
	YYYY-MM-DDTHH:MM:SS
	YYYY-MM-DDTHH:MM:SS[.,]F+

Any of the layouts may be followed by 'Z' (UTC). Without 'Z' the
civil time is resolved in the receiver's local location. A numeric
offset ("+02:00") is recognized but not supported: it yields an error
of kind [KindUnsupported], or a panic in builds made with the
iso8601_debug tag.

Input beyond the recognized fields and terminator is ignored.
*/
func (r *Decoder) Decode(b []byte) (Timestamp, error) {
	return r.decode(unsafeString(b))
}

/*
DecodeString is the string counterpart of [Decoder.Decode].
*/
func (r *Decoder) DecodeString(s string) (Timestamp, error) {
	return r.decode(s)
}

/*
Millis returns the epoch milliseconds represented by s, or zero if s
could not be decoded.

Zero is also the valid result for 1970-01-01T00:00:00Z, so a zero
return is ambiguous. Callers that must tell the two apart should use
[Decoder.DecodeString].
*/
func (r *Decoder) Millis(s string) (ms int64) {
	if ts, err := r.decode(s); err == nil {
		ms = int64(ts)
	}
	return
}

/*
Decode decodes b using a zero [Decoder]. See [Decoder.Decode].
*/
func Decode(b []byte) (Timestamp, error) { return defaultDecoder.Decode(b) }

/*
DecodeString decodes s using a zero [Decoder]. See [Decoder.Decode].
*/
func DecodeString(s string) (Timestamp, error) { return defaultDecoder.decode(s) }

/*
Millis decodes s using a zero [Decoder]. See [Decoder.Millis] for the
caveat concerning its zero return value.
*/
func Millis(s string) int64 { return defaultDecoder.Millis(s) }

func (r *Decoder) decode(s string) (ts Timestamp, err error) {
	if r == nil {
		r = &defaultDecoder
	}

	done := debugPath(newLItem(s, "input"), r.opts)
	defer func() {
		if err != nil {
			debugFail(err)
		}
		done(ts, err)
	}()

	var (
		cur  cursor = newCursor(s)
		tm   civil  = newCivil()
		frac int64
	)

	if err = r.readDate(&cur, &tm); err != nil {
		return
	}

	if cur.peek() == 'T' {
		cur.seek(cur.pos() + 1)
		if frac, err = r.readTime(&cur, &tm); err != nil {
			return
		}
	}

	ts, err = r.resolve(&cur, tm, frac)
	return
}

func (r *Decoder) readDate(cur *cursor, tm *civil) (err error) {
	var year, month int

	if year, err = readField(cur, FieldYear); err != nil {
		return
	} else if err = expectSeparator(cur, FieldYear, '-'); err != nil {
		return
	}
	tm.year = year - tmYearBase

	if month, err = readField(cur, FieldMonth); err != nil {
		return
	} else if err = expectSeparator(cur, FieldMonth, '-'); err != nil {
		return
	}
	tm.month = month - 1

	if tm.day, err = readField(cur, FieldDay); err == nil && r.opts.StrictDays {
		if last := daysIn(month, year); tm.day > last {
			start := fieldSpecs[FieldDay].end - 2
			err = errorRange(FieldDay, start, int64(tm.day), 1, last)
		}
	}

	return
}

// readTime reads the optional, strictly nested time-of-day fields that
// follow the 'T' designator, returning the fractional milliseconds.
func (r *Decoder) readTime(cur *cursor, tm *civil) (frac int64, err error) {
	if tm.hour, err = readField(cur, FieldHour); err != nil || cur.peek() != ':' {
		return
	}
	cur.seek(cur.pos() + 1)

	if tm.minute, err = readField(cur, FieldMinute); err != nil || cur.peek() != ':' {
		return
	}
	cur.seek(cur.pos() + 1)

	if tm.second, err = readField(cur, FieldSecond); err != nil {
		return
	}
	if tm.second == 60 {
		tm.second = 59 // leap seconds are not modeled
	}

	if b := cur.peek(); b == '.' || b == ',' {
		cur.seek(cur.pos() + 1)
		frac, err = r.readFraction(cur)
	}

	return
}

func (r *Decoder) readFraction(cur *cursor) (frac int64, err error) {
	start := cur.pos()
	if !r.opts.RawFraction {
		frac = cur.readFraction(fracPlaces)
	} else {
		var ok bool
		if frac, ok = cur.readUint(); !ok {
			err = decodeErrorf(KindRange, FieldFraction, start,
				"fraction overflows int64")
		}
	}

	if err == nil {
		debugField(FieldFraction, start, frac)
	}
	return
}

// resolve consumes the zone designator, if any, and normalizes tm.
func (r *Decoder) resolve(cur *cursor, tm civil, frac int64) (ts Timestamp, err error) {
	var loc *time.Location

	switch b := cur.peek(); b {
	case 'Z':
		loc = time.UTC
	case '+', '-':
		err = numericZone(cur.pos(), b)
		return
	default:
		loc = r.opts.location()
	}
	debugZone(cur.pos(), loc)

	var sec, ms int64
	if sec, err = tm.normalize(loc); err == nil {
		ms, err = composeMillis(sec, frac)
	}

	if err != nil {
		err = errorNormalize(cur.pos(), err)
		return
	}

	debugNormalize(sec, frac)
	ts = Timestamp(ms)
	return
}

// readField reads the numeric field f, which must end exactly at its
// checkpoint offset and fall within its bounds.
func readField(cur *cursor, f Field) (v int, err error) {
	fs := fieldSpecs[f]
	start := cur.pos()

	n, _ := cur.readUint()
	if end := cur.pos(); end != fs.end {
		err = errorOffset(f, end, fs.end)
	} else if !within(n, int64(fs.min), int64(fs.max)) {
		err = errorRange(f, start, n, fs.min, fs.max)
	} else {
		v = int(n)
		debugField(f, start, n)
	}

	return
}

func expectSeparator(cur *cursor, f Field, sep byte) (err error) {
	if b := cur.peek(); b != sep {
		err = errorSeparator(f, cur.pos(), b, quoteByte(sep))
	} else {
		cur.seek(cur.pos() + 1)
	}
	return
}
