// Package main provides a CLI for decoding ISO 8601 timestamps into
// epoch milliseconds.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/JesseCoretta/go-iso8601"
	"github.com/JesseCoretta/go-iso8601/internal/config"
)

// errFailed is returned when at least one input could not be decoded.
var errFailed = errors.New("one or more inputs failed to decode")

type flags struct {
	configPath  string
	jsonOutput  bool
	workers     int
	file        string
	optionsTag  string
	strictDays  bool
	rawFraction bool
	zone        string
}

// result is one line of output.
type result struct {
	Input  string `json:"input"`
	Millis *int64 `json:"millis"`
	Error  string `json:"error,omitempty"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "iso8601",
		Short: "ISO 8601 timestamp decoder",
		Long: `Decodes ISO 8601 extended format timestamps into milliseconds
since the Unix epoch.

Environment variables:
  ISO8601_STRICT_DAYS  - reject days beyond the end of the month
  ISO8601_RAW_FRACTION - add fraction digits as raw milliseconds
  ISO8601_ZONE         - zone for timestamps without 'Z' (default: local)
  ISO8601_WORKERS      - number of parallel decoders (default: 4)
  ISO8601_JSON         - output as JSON lines`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&f.configPath, "config", "", "Configuration file (.toml, .yaml or .yml)")
	root.PersistentFlags().BoolVar(&f.jsonOutput, "json", false, "Output as JSON lines (or ISO8601_JSON env)")
	root.PersistentFlags().IntVar(&f.workers, "workers", 0, "Number of parallel decoders (or ISO8601_WORKERS env)")

	root.AddCommand(newDecodeCmd(f))
	return root
}

func newDecodeCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [timestamp...]",
		Short: "Decode timestamps",
		Long: `Decodes each timestamp given as an argument. Without arguments,
timestamps are read one per line from --file, or from stdin.

Each input produces one line of output, in input order:
  <input>	<millis>
  <input>	error: <message>

Example:
  iso8601 decode 2022-07-16T12:39:33.164Z
  iso8601 decode --zone Europe/Berlin --file stamps.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, f, args)
		},
	}

	cmd.Flags().StringVar(&f.file, "file", "", "Read timestamps from file, one per line")
	cmd.Flags().StringVar(&f.optionsTag, "options", "", `Decoder options tag, e.g. "strict-days,zone:UTC"`)
	cmd.Flags().BoolVar(&f.strictDays, "strict-days", false, "Reject days beyond the end of the month")
	cmd.Flags().BoolVar(&f.rawFraction, "raw-fraction", false, "Add fraction digits as raw milliseconds")
	cmd.Flags().StringVar(&f.zone, "zone", "", "Zone for timestamps without 'Z' (default: local)")
	return cmd
}

func runDecode(cmd *cobra.Command, f *flags, args []string) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}

	opts, err := cfg.Decoder.Options()
	if err != nil {
		return err
	}
	if f.optionsTag != "" {
		if opts, err = iso8601.NewOptions(f.optionsTag); err != nil {
			return err
		}
	}
	if err = applyOptionFlags(cmd, f, &opts); err != nil {
		return err
	}

	inputs, err := readInputs(cmd.InOrStdin(), f.file, args)
	if err != nil {
		return err
	}

	results := decodeAll(cmd.Context(), iso8601.NewDecoder(opts), inputs, cfg.Workers)
	if err = writeResults(cmd.OutOrStdout(), results, cfg.JSON); err != nil {
		return err
	}

	for _, r := range results {
		if r.Error != "" {
			return errFailed
		}
	}
	return nil
}

// resolveConfig loads the configuration and lets explicitly set flags
// take precedence over it.
func resolveConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("json") {
		cfg.JSON = f.jsonOutput
	}
	if cmd.Flags().Changed("workers") {
		if f.workers < 1 {
			return nil, fmt.Errorf("--workers must be at least 1, got %d", f.workers)
		}
		cfg.Workers = f.workers
	}
	return cfg, nil
}

func applyOptionFlags(cmd *cobra.Command, f *flags, opts *iso8601.Options) error {
	if cmd.Flags().Changed("strict-days") {
		opts.StrictDays = f.strictDays
	}
	if cmd.Flags().Changed("raw-fraction") {
		opts.RawFraction = f.rawFraction
	}
	if cmd.Flags().Changed("zone") {
		loc, err := (config.DecoderConfig{Zone: f.zone}).Options()
		if err != nil {
			return err
		}
		opts.Location = loc.Location
	}
	return nil
}

// readInputs returns args if any were given, else the non-blank lines
// of file, else the non-blank lines of stdin.
func readInputs(stdin io.Reader, file string, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	r := stdin
	if file != "" {
		fh, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer fh.Close()
		r = fh
	}

	var inputs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return inputs, nil
}

// decodeAll decodes inputs with at most workers decodes in flight. The
// result at index i always belongs to inputs[i].
func decodeAll(ctx context.Context, dec *iso8601.Decoder, inputs []string, workers int) []result {
	results := make([]result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = result{Input: in, Error: err.Error()}
				return nil
			}
			results[i] = decodeOne(dec, in)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func decodeOne(dec *iso8601.Decoder, in string) result {
	ts, err := dec.DecodeString(in)
	if err != nil {
		return result{Input: in, Error: err.Error()}
	}
	ms := ts.Int64()
	return result{Input: in, Millis: &ms}
}

func writeResults(w io.Writer, results []result, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	}

	bw := bufio.NewWriter(w)
	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(bw, "%s\terror: %s\n", r.Input, r.Error)
		} else {
			fmt.Fprintf(bw, "%s\t%d\n", r.Input, *r.Millis)
		}
	}
	return bw.Flush()
}
