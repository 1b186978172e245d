/*
Package iso8601 decodes ISO 8601 extended format date and date-time
strings into signed milliseconds since the Unix epoch.

The accepted grammar is narrow and positional:

	YYYY-MM-DD[THH[:MM[:SS[(.|,)F+]]]][Z]

Each numeric field must end at a fixed offset (4, 7, 10, 13, 16 and
19 respectively), so "2023-1-05" is rejected even though its values
are in range. Years before 1900 are rejected. A second of 60 is
accepted and clamped to 59. A day beyond the length of its month is
accepted and rolls over into the next month unless [Options.StrictDays]
is set.

A trailing 'Z' selects UTC. Anything else after the last recognized
field selects the [Decoder]'s location, which defaults to [time.Local].
Numeric offsets such as "+02:00" are recognized but not supported.

# Results

[Decoder.Decode] and [Decoder.DecodeString] return a [Timestamp] and
an error. Errors are of type *[DecodeError] and unwrap to one of the
Err* sentinels, for example:

	if _, err := iso8601.DecodeString(s); errors.Is(err, iso8601.ErrRange) {
		...
	}

[Millis] is retained for callers that want a bare int64. It returns
zero on failure, which cannot be told apart from a successful decode
of 1970-01-01T00:00:00Z.

# Build tags

Building with "-tags iso8601_debug" enables the [DefaultTracer] (see
[EnvDebugVar]) and turns a numeric zone offset into a panic instead
of a [KindUnsupported] error. [AssertionsEnabled] reports which build
is in effect.
*/
package iso8601
