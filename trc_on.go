//go:build iso8601_debug

package iso8601

import (
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
)

/*
EnvDebugVar defines the environment variable name which can
be leveraged to invoke or disable use of the [DefaultTracer]
[Tracer] qualifier.

Its value is a comma-separated list of level names (e.g.
"enter,exit,field") or integer masks. A negative integer
enables all levels.
*/
const EnvDebugVar = "ISO8601_DEBUG"

const coreTracerMask = EventEnter | EventInfo | EventExit

/*
DefaultTracer is the package-level [Tracer] implementation.
*/
type DefaultTracer struct {
	mu sync.Mutex
	w  io.Writer
	ll loglevels
}

/*
NewDefaultTracer returns an instance of *[DefaultTracer]. The
input [io.Writer] value represents the writer interface type
to which debug data shall be written.
*/
func NewDefaultTracer(writer io.Writer) *DefaultTracer {
	return &DefaultTracer{
		w:  writer,
		ll: newLoglevels(),
	}
}

/*
EnableLevel adds [EventType] ev to the collection of loglevels
to be used during debugging.
*/
func (r *DefaultTracer) EnableLevel(ev EventType) { r.ll.Shift(ev) }

/*
DisableLevel removes [EventType] ev from the collection of loglevels
to be used during debugging.
*/
func (r *DefaultTracer) DisableLevel(ev EventType) { r.ll.Unshift(ev) }

/*
Enabled returns a Boolean value indicative of the specified
[EventType] being enabled within the receiver instance.
*/
func (r *DefaultTracer) Enabled(e EventType) bool { return r.ll.Positive(e) }

/*
Trace writes [TraceRecord] rec to the [io.Writer] handled by the
receiver instance. This method need not be executed by the end
user directly.
*/
func (r *DefaultTracer) Trace(rec TraceRecord) {
	if !r.ll.Positive(rec.Type) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := rec.Time.Format("15:04:05.000")
	if id := rec.ID; id != "" {
		if len(id) > 8 {
			id = id[:8]
		}
		prefix += " [" + id + "]"
	}
	fn := trimFuncName(rec.Func)

	switch rec.Type & coreTracerMask {
	case EventEnter:
		r.write(prefix+" → "+fn+"(", rec.Args, ")\n")
	case EventExit:
		r.write(prefix+" ← "+fn+" => ", rec.Ret, "\n")
	default:
		r.write(prefix+"     • "+fn+" "+rec.Type.String()+": ", rec.Args, "\n")
	}
}

func (r *DefaultTracer) write(head string, args []any, tail string) {
	b := newStrBuilder()
	b.WriteString(head)
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmtArg(a))
	}
	b.WriteString(tail)
	r.w.Write([]byte(b.String()))
}

func trimFuncName(full string) string {
	for i := len(full) - 1; i >= 0; i-- {
		if full[i] == '/' {
			return full[i+1:]
		}
	}
	return full
}

/*
TraceRecord encapsulates metadata pertaining to a particular event
observed by a [Tracer].
*/
type TraceRecord struct {
	Time time.Time // timestamp, i.e.: time.Now()
	Type EventType // the event being reported
	Func string    // function which produced the event
	ID   string    // decode call identifier; set on Enter and Exit only
	Args []any     // event values
	Ret  []any     // On Exit: return values (last entry is the error)
}

/*
Tracer implements an interface tracer type, which is implemented
by [DefaultTracer].
*/
type Tracer interface {
	Trace(TraceRecord)
}

type levelTracer interface {
	Tracer
	Enabled(EventType) bool
}

/*
EnableDebug registers and activates [Tracer] for debugging.

This function need not be called if an environment variable of
[EnvDebugVar] was read and successfully parsed at runtime.
*/
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

/*
DisableDebug disables [Tracer] debugging.
*/
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = &discardTracer{}
}

var (
	tmu    sync.RWMutex
	tracer Tracer = &discardTracer{}
)

type discardTracer struct{}

func (*discardTracer) Trace(_ TraceRecord)      {}
func (*discardTracer) Enabled(_ EventType) bool { return false }

func currentTracer() Tracer {
	tmu.RLock()
	defer tmu.RUnlock()
	return tracer
}

func wants(t Tracer, level EventType) bool {
	lt, ok := t.(levelTracer)
	return !ok || lt.Enabled(level)
}

func emit(level EventType, id string, args []any) {
	t := currentTracer()
	if !wants(t, level) {
		return
	}

	rec := TraceRecord{
		Time: time.Now(),
		Type: level,
		Func: callerName(),
		ID:   id,
	}
	if level == EventExit {
		rec.Ret = args
	} else {
		rec.Args = args
	}
	t.Trace(rec)
}

// callerName returns the first function on the stack which is not
// part of the tracing machinery.
func callerName() string {
	pcs := make([]uintptr, 10)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		fr, more := frames.Next()
		name := trimFuncName(fr.Function)
		if !hasPfx(name, "go-iso8601.debug") && !hasPfx(name, "go-iso8601.emit") {
			// deferred closures report as their enclosing function
			if i := idx(name, ".func"); i > 0 {
				name = name[:i]
			}
			return trimPfx(name, "go-iso8601.")
		}
		if !more {
			break
		}
	}
	return "unknown"
}

func debugPath(args ...any) func(rets ...any) {
	id := uuid.NewString()
	emit(EventEnter, id, args)
	return func(rets ...any) {
		emit(EventExit, id, rets)
	}
}

func debugEvent(level EventType, args ...any) { emit(level, "", args) }
func debugInfo(args ...any)                   { emit(EventInfo, "", args) }
func debugField(args ...any)                  { emit(EventField, "", args) }
func debugZone(args ...any)                   { emit(EventZone, "", args) }
func debugNormalize(args ...any)              { emit(EventNormalize, "", args) }
func debugFail(args ...any)                   { emit(EventFail, "", args) }

// strictly for debugging.
type labeledItem struct {
	L string
	V any
}

func newLItem(value any, labels ...any) (li labeledItem) {
	li = labeledItem{V: value}
	var l []string
	for _, label := range labels {
		if s, ok := label.(string); ok {
			l = append(l, s)
		}
	}
	li.L = join(l, ` `)
	return
}

func (r labeledItem) String() string {
	l := "<No label>"
	if r.L != "" {
		l = r.L
	}
	return l + ":" + fmtArg(r.V)
}

func fmtArg(x any) (s string) {
	switch v := x.(type) {
	case nil:
		s = "<nil>"
	case string:
		s = `"` + v + `"`
	case int:
		s = itoa(v)
	case int64:
		s = fmtInt(v, 10)
	case bool:
		s = bool2str(v)
	case error:
		s = "error:" + v.Error()
	case Field:
		s = "field:" + v.String()
	case Timestamp:
		s = "ts:" + v.String()
	case Options:
		s = "options:[" + v.String() + "]"
	case *time.Location:
		s = "loc:" + v.String()
	case labeledItem:
		s = v.String()
	default:
		s = typeName(v)
	}
	return
}

func init() {
	evar := os.Getenv(EnvDebugVar)
	if evar == "" {
		return
	}

	ll := newLoglevels()
	for _, tok := range split(evar, ",") {
		if n, err := atoi(trimS(tok)); err != nil {
			ll.Shift(lc(trimS(tok)))
		} else if n < 0 {
			ll.Shift(EventAll)
		} else {
			ll.Shift(n)
		}
	}

	dt := NewDefaultTracer(os.Stderr)
	dt.ll = ll
	EnableDebug(dt)
	debugInfo(newLItem(join(ll.enabled(), `,`), "loglevels"))
}
