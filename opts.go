package iso8601

/*
opts.go contains all types and methods pertaining to the Options
type, which serves to deliver instructions to a Decoder either
directly or through a parsed tag string.
*/

import "time"

/*
Options implements a simple encapsulator for decoding options. The zero
value decodes exactly as documented for [Decoder.Decode] in the local
time zone of the host.
*/
type Options struct {
	// StrictDays rejects a day-of-month beyond the length of the month
	// in the given year (e.g. "2023-02-29"). By default any day within
	// 1-31 is accepted and rolls over into the following month.
	StrictDays bool

	// RawFraction adds the digits of a fractional second to the result
	// as an integer count of milliseconds, rather than reading them as
	// a decimal fraction. With RawFraction, ".5" adds 5ms, not 500ms.
	RawFraction bool

	// Location resolves strings that do not end in 'Z'. If nil,
	// time.Local is used.
	Location *time.Location
}

func (r Options) location() *time.Location {
	if r.Location == nil {
		return time.Local
	}
	return r.Location
}

// add appends val to dst if cond is true.
func addStringConfigValue(dst *[]string, cond bool, val string) {
	if cond {
		*dst = append(*dst, val)
	}
}

/*
String returns the string representation of the receiver instance,
using the same syntax understood by [NewOptions].
*/
func (r Options) String() string {
	var parts []string

	addStringConfigValue(&parts, r.StrictDays, "strict-days")
	addStringConfigValue(&parts, r.RawFraction, "raw-fraction")
	addStringConfigValue(&parts, r.Location != nil, "zone:"+r.location().String())

	return join(parts, ",")
}

/*
NewOptions returns a new instance of [Options] alongside an error
following an attempt to parse the input tag string value, e.g.:

	iso8601:"strict-days,zone:Europe/Berlin"
	raw-fraction,zone:UTC

Recognized keywords are "strict-days", "raw-fraction" and "zone:<name>",
where name is any value accepted by [time.LoadLocation]. Case is not
significant in keywords, but is significant in zone names.
*/
func NewOptions(tag string) (opts Options, err error) {
	if tag = trimS(tag); hasPfx(lc(tag), `iso8601:`) {
		tag = trimS(tag[8:])
	}
	tag = trim(tag, `"`)

	if len(tag) == 0 {
		err = errorEmptyOptions
		return
	}

	for _, token := range split(tag, ",") {
		if token = trimS(token); len(token) == 0 {
			continue
		}
		if err = opts.parseToken(token); err != nil {
			break
		}
	}

	return
}

func (r *Options) parseToken(token string) (err error) {
	switch key := lc(token); {
	case key == "strict-days":
		r.StrictDays = true
	case key == "raw-fraction":
		r.RawFraction = true
	case hasPfx(key, "zone:"):
		name := trimS(token[5:])
		if r.Location, err = time.LoadLocation(name); err != nil {
			err = optionsErrorf("bad zone ", name, ": ", err)
		}
	default:
		err = optionsErrorf("unknown keyword ", token)
	}
	return
}
