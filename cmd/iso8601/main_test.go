package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/JesseCoretta/go-iso8601"
)

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDecode_args(t *testing.T) {
	out, err := execute(t, "", "decode",
		"2022-07-16T12:39:33.164Z", "2022-07-16Z", "2023-1-05Z")
	if !errors.Is(err, errFailed) {
		t.Fatalf("expected errFailed, got %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "2022-07-16T12:39:33.164Z\t1657975173164" {
		t.Errorf("unexpected line 0: %q", lines[0])
	}
	if lines[1] != "2022-07-16Z\t1657929600000" {
		t.Errorf("unexpected line 1: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "2023-1-05Z\terror: OFFSET ERROR") {
		t.Errorf("unexpected line 2: %q", lines[2])
	}
}

func TestDecode_stdinJSON(t *testing.T) {
	out, err := execute(t, "2022-07-16T12:39:33Z\n\n1970-01-01Z\n", "decode", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dec := json.NewDecoder(strings.NewReader(out))
	for _, want := range []int64{1657975173000, 0} {
		var r result
		if err := dec.Decode(&r); err != nil {
			t.Fatalf("decode output: %v", err)
		}
		if r.Millis == nil || *r.Millis != want || r.Error != "" {
			t.Errorf("unexpected result %+v, want millis %d", r, want)
		}
	}
}

func TestDecode_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stamps.txt")
	if err := os.WriteFile(path, []byte("2022-07-16T12:39Z\n2022-07-16T12Z\n"), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out, err := execute(t, "", "decode", "--file", path, "--workers", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "2022-07-16T12:39Z\t1657975140000\n2022-07-16T12Z\t1657972800000\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestDecode_optionFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "zone flag",
			args: []string{"decode", "--zone", "UTC", "2022-07-16T12:39:33"},
			want: "2022-07-16T12:39:33\t1657975173000\n",
		},
		{
			name: "options tag",
			args: []string{"decode", "--options", "raw-fraction,zone:UTC", "2022-07-16T12:39:33.5"},
			want: "2022-07-16T12:39:33.5\t1657975173005\n",
		},
		{
			name: "flag overrides tag",
			args: []string{"decode", "--options", "raw-fraction,zone:UTC", "--raw-fraction=false", "2022-07-16T12:39:33.5"},
			want: "2022-07-16T12:39:33.5\t1657975173500\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("got %q, want %q", out, tt.want)
			}
		})
	}
}

func TestDecode_strictDays(t *testing.T) {
	out, err := execute(t, "", "decode", "--strict-days", "2023-02-29Z")
	if !errors.Is(err, errFailed) {
		t.Fatalf("expected errFailed, got %v", err)
	}
	if !strings.Contains(out, "RANGE ERROR: day") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestDecode_configErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad workers", []string{"decode", "--workers", "0", "2022-07-16Z"}},
		{"bad zone", []string{"decode", "--zone", "Not/AZone", "2022-07-16Z"}},
		{"bad options", []string{"decode", "--options", "bogus", "2022-07-16Z"}},
		{"missing config", []string{"decode", "--config", "/nonexistent/iso8601.toml", "2022-07-16Z"}},
		{"missing file", []string{"decode", "--file", "/nonexistent/stamps.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			if err == nil || errors.Is(err, errFailed) {
				t.Errorf("expected a setup error, got %v", err)
			}
			if out != "" {
				t.Errorf("expected no output, got %q", out)
			}
		})
	}
}

func TestDecodeAll_order(t *testing.T) {
	var inputs []string
	for day := 1; day <= 28; day++ {
		inputs = append(inputs, "2022-02-"+twoDigits(day)+"Z")
	}

	results := decodeAll(context.Background(), iso8601.NewDecoder(iso8601.Options{}), inputs, 3)
	for i, r := range results {
		if r.Input != inputs[i] {
			t.Fatalf("result %d belongs to %q, want %q", i, r.Input, inputs[i])
		}
		if r.Millis == nil {
			t.Fatalf("result %d: unexpected error %s", i, r.Error)
		}
		if i > 0 && *r.Millis-*results[i-1].Millis != 86400000 {
			t.Errorf("result %d not one day after its predecessor", i)
		}
	}
}

func TestDecodeAll_canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := decodeAll(ctx, nil, []string{"2022-07-16Z"}, 1)
	if len(results) != 1 || results[0].Error == "" {
		t.Errorf("expected canceled result, got %+v", results)
	}
}

func twoDigits(n int) string {
	s := strconv.Itoa(n)
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}
