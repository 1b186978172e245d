package iso8601

/*
evt.go contains EventType constants which are (only) used
for debugging when this package was built or run with the
"-tags iso8601_debug" flag.
*/

/*
EventType describes a specific kind of [Tracer] event. see the
[EventType] constants for a full list and descriptions.

Note that this type and all of its constants are only meaningful
if/when this package was run or built with the "-tags iso8601_debug"
flag. Otherwise, they can be ignored entirely.
*/
type EventType int

const (
	EventNone EventType = 0     // NO events
	EventAll  EventType = 65535 // ALL events
)

const (
	EventEnter     EventType = 1 << iota //   1: Decode begin
	EventInfo                            //   2: Interim event
	EventExit                            //   4: Decode end
	EventIO                              //   8: Decode inputs/outputs
	EventField                           //  16: Numeric field accepted
	EventZone                            //  32: Zone designator resolved
	EventNormalize                       //  64: Civil time normalized
	EventFail                            // 128: Decode rejected
)

var eventNames = map[EventType]string{
	EventAll:       "all",
	EventNone:      "none",
	EventEnter:     "enter",
	EventInfo:      "info",
	EventExit:      "exit",
	EventIO:        "io",
	EventField:     "field",
	EventZone:      "zone",
	EventNormalize: "normalize",
	EventFail:      "fail",
}

/*
String returns the string representation of the receiver instance.
Combined bitmasks which do not match a single name return "mixed".
*/
func (r EventType) String() string {
	if name, found := eventNames[r]; found {
		return name
	}
	return "mixed"
}
