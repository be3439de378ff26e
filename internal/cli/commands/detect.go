package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/urltools/urlsplit/pkg/config"
	"github.com/urltools/urlsplit/pkg/detector"
	"github.com/urltools/urlsplit/pkg/input"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	Output      string
	SampleSize  int
	ShowAll     bool
	WriteConfig string
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect [<input>]",
		Short: "Detect the delimiter and header layout of an input file",
		Long: `Sample lines from an input file (or standard input) and score candidate
field delimiters by how consistently they split the sample. Also guesses
whether the first line is a header row.

Reports the best match with a confidence score and a ready-to-use YAML
configuration snippet. Optionally writes a starter config file with
--write-config.

Example:
  urlsplit detect urls.csv
  urlsplit detect --sample 500 big-list.txt
  urlsplit detect --write-config urlsplit.yaml urls.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "s", 100, "Number of lines to sample")
	cmd.Flags().BoolVar(&opts.ShowAll, "all", false, "Show all candidate delimiters, not just the best match")
	cmd.Flags().StringVarP(&opts.WriteConfig, "write-config", "w", "", "Write starter config to file (will not overwrite)")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	d := detector.New(detector.WithSampleSize(opts.SampleSize))

	var (
		result *detector.DetectionResult
		err    error
	)
	if len(args) == 1 && args[0] != input.StdinPath {
		result, err = d.DetectFromFile(ctx, args[0])
	} else {
		result, err = detectFromStdin(d, opts.SampleSize)
	}
	if err != nil {
		return err
	}

	best := result.Best()
	if best == nil {
		return fmt.Errorf("no input lines to sample")
	}

	cfg := starterConfig(result)

	switch opts.Output {
	case "json":
		if err := writeDetectionJSON(os.Stdout, result, opts.ShowAll); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
	case "text":
		if err := writeDetectionText(os.Stdout, result, cfg, opts.ShowAll); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}

	if opts.WriteConfig != "" {
		if err := writeStarterConfig(opts.WriteConfig, cfg); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Starter config written to %s\n", opts.WriteConfig)
	}

	return nil
}

func detectFromStdin(d *detector.Detector, sampleSize int) (*detector.DetectionResult, error) {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for len(lines) < sampleSize && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}

	return d.DetectFromLines(lines), nil
}

// starterConfig builds a config reflecting the detection result.
func starterConfig(result *detector.DetectionResult) *config.Config {
	cfg := config.DefaultConfig()
	if best := result.Best(); best != nil {
		cfg.Delimiter = config.Delimiter(best.Delimiter)
	}
	cfg.Headers = result.HasHeader
	return cfg
}

func writeDetectionText(w io.Writer, result *detector.DetectionResult, cfg *config.Config, showAll bool) error {
	best := result.Best()

	fmt.Fprintf(w, "Sampled %d line(s)\n\n", result.SampledLines)
	fmt.Fprintf(w, "Delimiter:  %s\n", config.Delimiter(best.Delimiter))
	fmt.Fprintf(w, "Fields:     %d per row\n", best.FieldCount)
	fmt.Fprintf(w, "Confidence: %.0f%%\n", best.Confidence*100)
	fmt.Fprintf(w, "Header row: %v\n", result.HasHeader)
	if best.SampleLine != "" {
		fmt.Fprintf(w, "Sample:     %s\n", best.SampleLine)
	}

	if showAll {
		fmt.Fprintf(w, "\nAll candidates:\n")
		for _, m := range result.Matches {
			fmt.Fprintf(w, "  %-4s %3.0f%%  %d field(s)\n",
				config.Delimiter(m.Delimiter), m.Confidence*100, m.FieldCount)
		}
	}

	snippet, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nConfig snippet:\n%s", snippet)

	return nil
}

func writeDetectionJSON(w io.Writer, result *detector.DetectionResult, showAll bool) error {
	type match struct {
		Delimiter  string  `json:"delimiter"`
		Confidence float64 `json:"confidence"`
		FieldCount int     `json:"field_count"`
		SampleLine string  `json:"sample_line,omitempty"`
	}
	type report struct {
		SampledLines int     `json:"sampled_lines"`
		HasHeader    bool    `json:"has_header"`
		Best         match   `json:"best"`
		Candidates   []match `json:"candidates,omitempty"`
	}

	toMatch := func(m detector.DelimiterMatch) match {
		return match{
			Delimiter:  config.Delimiter(m.Delimiter).String(),
			Confidence: m.Confidence,
			FieldCount: m.FieldCount,
			SampleLine: m.SampleLine,
		}
	}

	out := report{
		SampledLines: result.SampledLines,
		HasHeader:    result.HasHeader,
		Best:         toMatch(*result.Best()),
	}
	if showAll {
		for _, m := range result.Matches {
			out.Candidates = append(out.Candidates, toMatch(m))
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// writeStarterConfig writes cfg as YAML, refusing to overwrite.
func writeStarterConfig(path string, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644) // #nosec G304 -- user-provided path is expected
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing config file: %w", err)
	}
	return f.Close()
}
