//go:build !iso8601_debug

package iso8601

import (
	"errors"
	"testing"
)

func TestNumericZone_unsupported(t *testing.T) {
	if AssertionsEnabled {
		t.Fatalf("%s failed: assertions enabled in release build", t.Name())
	}

	for idx, tc := range []struct {
		in  string
		off int
	}{
		{`2022-07-16T12:39:33+02:00`, 19},
		{`2022-07-16T12:39:33-05:00`, 19},
		{`2022-07-16T12:39:33.164+02:00`, 23},
		{`2022-07-16T12+02`, 13},
		{`2022-07-16-05:00`, 10},
	} {
		ts, err := DecodeString(tc.in)
		if !errors.Is(err, ErrUnsupported) {
			t.Errorf("%s[%d] failed: expected unsupported error, got %v", t.Name(), idx, err)
			continue
		}
		de, _ := IsDecodeError(err)
		if de.Kind != KindUnsupported || de.Field != FieldZone || de.Offset != tc.off {
			t.Errorf("%s[%d] failed: got %s/%s/%d", t.Name(), idx, de.Kind, de.Field, de.Offset)
		}
		if ts != 0 || Millis(tc.in) != 0 {
			t.Errorf("%s[%d] failed: non-zero result for numeric offset", t.Name(), idx)
		}
	}
}
