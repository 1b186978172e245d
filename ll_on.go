//go:build iso8601_debug

package iso8601

/*
loglevels is the set of [EventType] bits a [DefaultTracer] will emit.
Copies share the same underlying bits.
*/
type loglevels struct {
	v *uint16
}

func newLoglevels() loglevels { return loglevels{v: new(uint16)} }

func (r loglevels) Int() (i int) {
	if r.v != nil {
		i = int(*r.v)
	}
	return
}

// Shift enables each of x, where x may be an EventType, an int or a
// level name such as "field".
func (r loglevels) Shift(x ...any) loglevels {
	for _, xi := range x {
		if ev, ok := toLevel(xi); ok && r.v != nil {
			*r.v |= uint16(ev)
		}
	}
	return r
}

// Unshift disables each of x. See Shift.
func (r loglevels) Unshift(x ...any) loglevels {
	for _, xi := range x {
		if ev, ok := toLevel(xi); ok && r.v != nil {
			*r.v &^= uint16(ev)
		}
	}
	return r
}

// Positive reports whether any bit of x is enabled.
func (r loglevels) Positive(x any) (posi bool) {
	if ev, ok := toLevel(x); ok && r.v != nil {
		posi = (*r.v)&uint16(ev) != 0
	}
	return
}

func (r loglevels) enabled() (names []string) {
	switch i := r.Int(); i {
	case int(EventNone), int(EventAll):
		names = []string{EventType(i).String()}
	default:
		for bit := 1; bit < int(EventAll); bit <<= 1 {
			if i&bit != 0 {
				names = append(names, EventType(bit).String())
			}
		}
	}
	return
}

func toLevel(x any) (ev EventType, ok bool) {
	switch tv := x.(type) {
	case EventType:
		ev, ok = tv, true
	case int:
		ev, ok = EventType(tv), true
	case string:
		for k, name := range eventNames {
			if streqf(name, trimS(tv)) {
				ev, ok = k, true
				break
			}
		}
	}

	if ok && (ev < EventNone || ev > EventAll) {
		ev, ok = EventNone, false
	}
	return
}
