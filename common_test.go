package iso8601

import "testing"

func TestCommon_helpers(t *testing.T) {
	for b := 0; b < 256; b++ {
		if want := b >= '0' && b <= '9'; isDigit(byte(b)) != want {
			t.Errorf("%s failed: isDigit(%q)", t.Name(), byte(b))
		}
	}

	if bool2str(true) != `true` || bool2str(false) != `false` {
		t.Errorf("%s failed: bool2str", t.Name())
	}

	if s := unsafeString([]byte(`2022`)); s != `2022` {
		t.Errorf("%s failed: unsafeString gave %q", t.Name(), s)
	}
	if s := unsafeString(nil); s != `` {
		t.Errorf("%s failed: unsafeString(nil) gave %q", t.Name(), s)
	}

	if typeName(nil) != `<nil>` || typeName(Timestamp(0)) != `iso8601.Timestamp` {
		t.Errorf("%s failed: typeName", t.Name())
	}

	if quoteByte(0) != `end of input` || quoteByte('T') != `'T'` {
		t.Errorf("%s failed: quoteByte", t.Name())
	}
}
