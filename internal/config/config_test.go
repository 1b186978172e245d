package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoad_defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if want := Defaults(); *cfg != *want {
		t.Errorf("%s failed: got %+v, want %+v", t.Name(), *cfg, *want)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "iso8601.toml", `
workers = 8
json = true

[decoder]
strict_days = true
zone = "UTC"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if cfg.Workers != 8 || !cfg.JSON || !cfg.Decoder.StrictDays ||
		cfg.Decoder.RawFraction || cfg.Decoder.Zone != "UTC" {
		t.Errorf("%s failed: unexpected config %+v", t.Name(), *cfg)
	}
}

func TestLoad_YAML(t *testing.T) {
	for _, name := range []string{"iso8601.yaml", "iso8601.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, "decoder:\n  raw_fraction: true\n")
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("%s failed: %v", t.Name(), err)
			}
			if !cfg.Decoder.RawFraction || cfg.Workers != 4 {
				t.Errorf("%s failed: unexpected config %+v", t.Name(), *cfg)
			}
		})
	}
}

func TestLoad_envOverrides(t *testing.T) {
	path := writeFile(t, "iso8601.toml", "workers = 8\n")
	t.Setenv("ISO8601_WORKERS", "2")
	t.Setenv("ISO8601_STRICT_DAYS", "true")
	t.Setenv("ISO8601_RAW_FRACTION", "1")
	t.Setenv("ISO8601_JSON", "true")
	t.Setenv("ISO8601_ZONE", "Europe/Berlin")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	want := Config{
		Decoder: DecoderConfig{StrictDays: true, RawFraction: true, Zone: "Europe/Berlin"},
		Workers: 2,
		JSON:    true,
	}
	if *cfg != want {
		t.Errorf("%s failed: got %+v, want %+v", t.Name(), *cfg, want)
	}
}

func TestLoad_errors(t *testing.T) {
	cases := []struct {
		name string
		path func(t *testing.T) string
		env  map[string]string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") },
		},
		{
			name: "bad TOML",
			path: func(t *testing.T) string { return writeFile(t, "bad.toml", "workers = [") },
		},
		{
			name: "bad YAML",
			path: func(t *testing.T) string { return writeFile(t, "bad.yaml", "workers: [") },
		},
		{
			name: "zero workers",
			path: func(t *testing.T) string { return writeFile(t, "zero.toml", "workers = 0\n") },
		},
		{
			name: "bad bool",
			path: func(*testing.T) string { return "" },
			env:  map[string]string{"ISO8601_STRICT_DAYS": "maybe"},
		},
		{
			name: "bad workers",
			path: func(*testing.T) string { return "" },
			env:  map[string]string{"ISO8601_WORKERS": "many"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for k, v := range c.env {
				t.Setenv(k, v)
			}
			if _, err := Load(c.path(t)); err == nil {
				t.Errorf("%s failed: expected error, got nil", t.Name())
			}
		})
	}
}

func TestDecoderConfig_Options(t *testing.T) {
	opts, err := DecoderConfig{StrictDays: true, Zone: "UTC"}.Options()
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if !opts.StrictDays || opts.RawFraction || opts.Location == nil ||
		opts.Location.String() != "UTC" {
		t.Errorf("%s failed: unexpected options %s", t.Name(), opts)
	}

	if opts, err = (DecoderConfig{}).Options(); err != nil || opts.Location != nil {
		t.Errorf("%s failed: zero config gave %s, %v", t.Name(), opts, err)
	}

	if _, err = (DecoderConfig{Zone: "Not/AZone"}).Options(); err == nil {
		t.Errorf("%s failed: expected error for bad zone", t.Name())
	}
}

func TestDetectFormat(t *testing.T) {
	for path, want := range map[string]Format{
		"a.toml":     FormatTOML,
		"a.yaml":     FormatYAML,
		"a.YML":      FormatYAML,
		"a":          FormatTOML,
		"dir/a.conf": FormatTOML,
	} {
		if got := detectFormat(path); got != want {
			t.Errorf("%s failed: %s: got %s, want %s", t.Name(), path, got, want)
		}
	}
}
