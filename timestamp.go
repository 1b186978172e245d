package iso8601

/*
timestamp.go contains the Timestamp type, its constructor and the
hooks that let it be decoded directly from JSON, YAML, TOML and plain
text documents.
*/

import (
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

/*
Timestamp is a signed count of milliseconds elapsed since
1970-01-01T00:00:00Z.
*/
type Timestamp int64

/*
Parse returns an instance of [Timestamp] alongside an error following
an attempt to marshal x using a zero [Decoder]. See [Decoder.Parse].
*/
func Parse(x any, constraints ...Constraint[Timestamp]) (Timestamp, error) {
	return defaultDecoder.Parse(x, constraints...)
}

/*
Parse returns an instance of [Timestamp] alongside an error following
an attempt to marshal x. Strings and byte slices are decoded per
[Decoder.Decode]. A [Timestamp], int64 (epoch milliseconds) or
[time.Time] is taken as-is, truncated to millisecond precision.

Any constraints are evaluated in order against the result.
*/
func (r *Decoder) Parse(x any, constraints ...Constraint[Timestamp]) (ts Timestamp, err error) {
	var _ts Timestamp

	switch tv := x.(type) {
	case string:
		_ts, err = r.decode(tv)
	case []byte:
		_ts, err = r.decode(unsafeString(tv))
	case Timestamp:
		_ts = tv
	case int64:
		_ts = Timestamp(tv)
	case time.Time:
		_ts = Timestamp(tv.UnixMilli())
	default:
		err = errorBadTypeForConstructor(x)
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[Timestamp] = constraints
		err = group.Constrain(_ts)
	}

	if err == nil {
		ts = _ts
	}

	return
}

/*
Cast returns the receiver instance cast as an instance of [time.Time]
in UTC.
*/
func (r Timestamp) Cast() time.Time { return time.UnixMilli(int64(r)).UTC() }

/*
Int64 returns the receiver instance as epoch milliseconds.
*/
func (r Timestamp) Int64() int64 { return int64(r) }

/*
String returns the decimal count of milliseconds represented by the
receiver instance.
*/
func (r Timestamp) String() string { return fmtInt(int64(r), 10) }

/*
UnmarshalText decodes an ISO 8601 string into the receiver instance.
Strings lacking 'Z' are resolved in [time.Local].
*/
func (r *Timestamp) UnmarshalText(b []byte) (err error) {
	var ts Timestamp
	if ts, err = defaultDecoder.Decode(b); err == nil {
		*r = ts
	}
	return
}

/*
UnmarshalJSON decodes a JSON string (ISO 8601) or number (epoch
milliseconds) into the receiver instance. JSON null leaves the
receiver untouched.
*/
func (r *Timestamp) UnmarshalJSON(b []byte) (err error) {
	raw := trimS(unsafeString(b))
	switch {
	case raw == `null`:
	case hasPfx(raw, `"`):
		var s string
		if err = json.Unmarshal(b, &s); err == nil {
			err = r.UnmarshalText([]byte(s))
		}
	default:
		var ms int64
		if err = json.Unmarshal(b, &ms); err == nil {
			*r = Timestamp(ms)
		}
	}
	return
}

/*
MarshalJSON encodes the receiver instance as a JSON number of epoch
milliseconds.
*/
func (r Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(r))
}

/*
UnmarshalYAML decodes a YAML scalar into the receiver instance. Integer
scalars are epoch milliseconds; any other scalar, including unquoted
YAML timestamps, is decoded as ISO 8601 text.
*/
func (r *Timestamp) UnmarshalYAML(node *yaml.Node) (err error) {
	if node.Kind != yaml.ScalarNode {
		return mkerr("Timestamp requires a YAML scalar")
	}

	switch node.ShortTag() {
	case `!!null`:
	case `!!int`:
		var ms int64
		if err = node.Decode(&ms); err == nil {
			*r = Timestamp(ms)
		}
	default:
		err = r.UnmarshalText([]byte(node.Value))
	}
	return
}

/*
UnmarshalTOML satisfies the github.com/BurntSushi/toml Unmarshaler
interface. Strings are decoded as ISO 8601 text, integers as epoch
milliseconds, and native TOML date-times are converted directly.
*/
func (r *Timestamp) UnmarshalTOML(v any) (err error) {
	switch tv := v.(type) {
	case string:
		err = r.UnmarshalText([]byte(tv))
	case int64:
		*r = Timestamp(tv)
	case time.Time:
		*r = Timestamp(tv.UnixMilli())
	default:
		err = errorBadTypeForConstructor(v)
	}
	return
}
