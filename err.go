package iso8601

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import (
	"errors"
	"sync"
)

/*
ErrorKind classifies the reason a decode attempt failed. Every
[DecodeError] carries exactly one kind, and unwraps to the sentinel
error associated with that kind, thus the following works:

	if errors.Is(err, iso8601.ErrRange) { ... }
*/
type ErrorKind int

const (
	invalidErrorKind ErrorKind = iota
	KindStructural             // separator or terminator missing or misplaced
	KindOffset                 // numeric field did not end at its checkpoint offset
	KindRange                  // numeric field value out of bounds
	KindUnsupported            // recognized but unimplemented syntax (numeric zone offset)
	KindNormalize              // civil time could not be resolved to an instant
)

/*
Sentinel errors, one per [ErrorKind].
*/
var (
	ErrStructural  = errors.New("iso8601: malformed layout")
	ErrOffset      = errors.New("iso8601: field width mismatch")
	ErrRange       = errors.New("iso8601: field value out of range")
	ErrUnsupported = errors.New("iso8601: unsupported syntax")
	ErrNormalize   = errors.New("iso8601: calendar normalization failed")
)

var kindSentinels = map[ErrorKind]error{
	KindStructural:  ErrStructural,
	KindOffset:      ErrOffset,
	KindRange:       ErrRange,
	KindUnsupported: ErrUnsupported,
	KindNormalize:   ErrNormalize,
}

/*
String returns the string representation of the receiver instance.
*/
func (r ErrorKind) String() (s string) {
	s = `invalid`
	switch r {
	case KindStructural:
		s = `structural`
	case KindOffset:
		s = `offset`
	case KindRange:
		s = `range`
	case KindUnsupported:
		s = `unsupported`
	case KindNormalize:
		s = `normalize`
	}
	return
}

/*
DecodeError describes the first violation encountered while decoding
an ISO 8601 string. Decoding never continues past a violation, so at
most one [DecodeError] is produced per call.
*/
type DecodeError struct {
	Kind   ErrorKind // classification of the failure
	Field  Field     // field being processed when the failure occurred
	Offset int       // cursor offset at the time of failure
	e      error
}

/*
Error returns the string representation of the receiver instance.
*/
func (r *DecodeError) Error() string {
	b := newStrBuilder()
	b.WriteString(uc(r.Kind.String()))
	b.WriteString(` ERROR: `)
	b.WriteString(r.Field.String())
	b.WriteString(` (offset `)
	b.WriteString(itoa(r.Offset))
	b.WriteString(`)`)
	if r.e != nil {
		b.WriteString(`: `)
		b.WriteString(r.e.Error())
	}
	return b.String()
}

/*
Unwrap returns the sentinel error associated with the receiver's
[ErrorKind].
*/
func (r *DecodeError) Unwrap() error { return kindSentinels[r.Kind] }

/*
IsDecodeError returns the *[DecodeError] found within the chain of err,
alongside a Boolean value indicative of success.
*/
func IsDecodeError(err error) (de *DecodeError, ok bool) {
	ok = errors.As(err, &de)
	return
}

var errorEmptyOptions error = optionsErr{mkerr("empty options tag")}

type optionsErr struct{ e error }

func optionsErrorf(m ...any) error { return optionsErr{mkerrf(m...)} }

func (r optionsErr) Error() string { return `OPTIONS ERROR: ` + r.e.Error() }

func decodeErrorf(kind ErrorKind, field Field, off int, m ...any) error {
	return &DecodeError{Kind: kind, Field: field, Offset: off, e: mkerrf(m...)}
}

func errorOffset(field Field, got, want int) error {
	return decodeErrorf(KindOffset, field, got,
		"field ends at offset ", got, ", want ", want)
}

func errorSeparator(field Field, off int, got byte, want string) error {
	return decodeErrorf(KindStructural, field, off,
		"found ", quoteByte(got), ", want ", want)
}

func errorRange(field Field, off int, v int64, min, max int) error {
	return decodeErrorf(KindRange, field, off,
		"value ", v, " not in [", min, ", ", max, "]")
}

func errorNumericZone(off int, sign byte) error {
	return decodeErrorf(KindUnsupported, FieldZone, off,
		"numeric offset ", quoteByte(sign), "hh[:mm] is not supported")
}

func errorNormalize(off int, m ...any) error {
	return decodeErrorf(KindNormalize, FieldZone, off, m...)
}

func errorBadTypeForConstructor(x any) error {
	return mkerrf("invalid input type for Timestamp constructor: ", typeName(x))
}

func quoteByte(b byte) string {
	if b == 0 {
		return `end of input`
	}
	return `'` + string(rune(b)) + `'`
}

var errCache sync.Map

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
		} else if parts[0] == nil {
			return nil
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		case int64:
			b.WriteString(fmtInt(v, 10))
		case Field:
			b.WriteString(v.String())
		case ErrorKind:
			b.WriteString(v.String())
		default:
			b.WriteString("<not supported>")
		}
	}
	e := mkerr(b.String())

	// composed messages embed input values; cache constants only.
	if s, ok := parts[0].(string); ok && len(parts) == 1 {
		errCache.Store(s, e)
	}
	return e
}
