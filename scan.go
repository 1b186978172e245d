package iso8601

/*
scan.go implements the forward-only cursor used by the decoder.
*/

import "math"

/*
cursor is a forward-only scanning position over an immutable input
string. The cursor never owns its input.
*/
type cursor struct {
	s   string
	off int
}

func newCursor(s string) cursor { return cursor{s: s} }

// pos returns the absolute offset of the next unread byte.
func (r *cursor) pos() int { return r.off }

// peek returns the next byte without consuming it, or 0 at end of input.
func (r *cursor) peek() (b byte) {
	if r.off < len(r.s) {
		b = r.s[r.off]
	}
	return
}

// seek repositions the cursor to an absolute offset, clamped to the input.
func (r *cursor) seek(off int) {
	if off < 0 {
		off = 0
	} else if off > len(r.s) {
		off = len(r.s)
	}
	r.off = off
}

/*
readUint consumes a run of ASCII digits beginning at the current offset
and returns its value. If no digit is present, zero is returned and the
offset is unchanged. The run is always consumed in full; ok is false if
its value overflows int64.
*/
func (r *cursor) readUint() (v int64, ok bool) {
	ok = true
	for r.off < len(r.s) && isDigit(r.s[r.off]) {
		d := int64(r.s[r.off] - '0')
		if ok && v > (math.MaxInt64-d)/10 {
			ok = false
		}
		if ok {
			v = v*10 + d
		}
		r.off++
	}
	return
}

/*
readFraction consumes a run of ASCII digits and returns them read as a
decimal fraction scaled to the given number of places, truncating any
digits beyond it: with places=3, "5" yields 500 and "1649" yields 164.
*/
func (r *cursor) readFraction(places int) (v int64) {
	n := 0
	for r.off < len(r.s) && isDigit(r.s[r.off]) {
		if n < places {
			v = v*10 + int64(r.s[r.off]-'0')
			n++
		}
		r.off++
	}
	for ; n < places; n++ {
		v *= 10
	}
	return
}
