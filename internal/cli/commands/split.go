package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/urltools/urlsplit/pkg/config"
	"github.com/urltools/urlsplit/pkg/input"
	"github.com/urltools/urlsplit/pkg/output"
	"github.com/urltools/urlsplit/pkg/splitter"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// SplitOptions holds command-line options for the split command.
type SplitOptions struct {
	Output     string
	Delimiter  string
	NoHeaders  bool
	Raw        bool
	URLColumn  string
	Format     string
	NoSuffixes bool
	ConfigFile string
}

// NewSplitCommand creates the split command.
func NewSplitCommand() *cobra.Command {
	opts := &SplitOptions{}

	cmd := &cobra.Command{
		Use:   "split [<input>]",
		Short: "Split URLs into component columns",
		Long: `Read URLs from a file or standard input and emit one output row per
input row with the URL's component parts appended as fixed columns.

When <input> is omitted or "-", rows are read from standard input. Input
may be a plain URL list (one per line) or delimited rows, with the URL
column selected by --url-column.

Appended columns, in order:
  scheme, userinfo, host, port, path, query, fragment,
  hostname, domain, subdomain, suffix, registration, error

The last five are derived from the hostname using the public suffix list.
A row whose URL does not parse is still emitted: its component columns are
empty and the error column carries the parse failure. Parse failures never
change the exit code; only configuration and I/O errors do.

Exit codes:
  0 - Run completed (parse failures included)
  2 - Configuration or runtime error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write output to file instead of stdout (database path for sqlite)")
	cmd.Flags().StringVarP(&opts.Delimiter, "delimiter", "d", ",", `Field delimiter, a single ASCII character (\t for tab)`)
	cmd.Flags().BoolVarP(&opts.NoHeaders, "no-headers", "n", false, "Input has no header row and none is written")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "Disable CSV quote handling; split and join on the bare delimiter")
	cmd.Flags().StringVarP(&opts.URLColumn, "url-column", "c", "0", "Input column holding the URL (header name or 0-based index)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "csv", "Output format (csv|jsonl|sqlite)")
	cmd.Flags().BoolVar(&opts.NoSuffixes, "no-suffixes", false, "Skip public suffix derivation")
	cmd.Flags().StringVar(&opts.ConfigFile, "config", "", "YAML config file supplying defaults for these flags")

	return cmd
}

func runSplit(cmd *cobra.Command, args []string, opts *SplitOptions) (retErr error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveSplitConfig(ctx, cmd, opts)
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	source, err := input.OpenPath(path, cfg.Delimiter.Rune(), cfg.Raw)
	if err != nil {
		return err
	}
	defer source.Close()

	// The header row, when present, is consumed before the sink is built:
	// it names the columns the URL selector and the JSONL sink key on.
	var header *input.Record
	if cfg.Headers {
		rec, err := source.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		header = rec
	}

	var headerNames []string
	if header != nil {
		headerNames = header.Fields
	}

	urlIdx, err := cfg.ResolveURLColumn(headerNames)
	if err != nil {
		return err
	}

	sink, outFile, err := newSink(cfg, urlIdx)
	if err != nil {
		return err
	}
	defer func() {
		if err := sink.Close(); err != nil && retErr == nil {
			retErr = fmt.Errorf("flushing output: %w", err)
		}
		if outFile != nil {
			if err := outFile.Close(); err != nil && retErr == nil {
				retErr = fmt.Errorf("closing output file: %w", err)
			}
		}
	}()

	if header != nil {
		if err := sink.WriteHeader(header.Fields); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for {
		rec, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		var (
			comps    *splitter.Components
			splitErr error
		)
		if urlIdx < len(rec.Fields) {
			comps, splitErr = splitter.Split(rec.Fields[urlIdx], splitter.WithSuffixes(cfg.Suffixes))
		} else {
			splitErr = fmt.Errorf("row %d has no column %d", rec.RowNum, urlIdx)
		}

		if err := sink.WriteRow(rec.Fields, comps, splitErr); err != nil {
			return fmt.Errorf("writing row %d: %w", rec.RowNum, err)
		}
	}

	return nil
}

// resolveSplitConfig layers flag values over the config file (or defaults):
// a flag the user set wins over the file, the file wins over defaults.
func resolveSplitConfig(ctx context.Context, cmd *cobra.Command, opts *SplitOptions) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(ctx, opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed("delimiter") {
		d, err := config.ParseDelimiter(opts.Delimiter)
		if err != nil {
			return nil, fmt.Errorf("invalid delimiter: %w", err)
		}
		cfg.Delimiter = d
	}
	if flags.Changed("no-headers") {
		cfg.Headers = !opts.NoHeaders
	}
	if flags.Changed("raw") {
		cfg.Raw = opts.Raw
	}
	if flags.Changed("url-column") {
		cfg.URLColumn = opts.URLColumn
	}
	if flags.Changed("format") {
		cfg.Format = config.Format(opts.Format)
	}
	if flags.Changed("no-suffixes") {
		cfg.Suffixes = !opts.NoSuffixes
	}
	if flags.Changed("output") {
		cfg.Output = opts.Output
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSink builds the configured output sink. The returned file, when
// non-nil, must be closed after the sink.
func newSink(cfg *config.Config, urlIdx int) (output.Sink, *os.File, error) {
	if cfg.Format == config.FormatSQLite {
		sink, err := output.NewSQLiteSink(cfg.Output, urlIdx)
		return sink, nil, err
	}

	var (
		w       io.Writer = os.Stdout
		outFile *os.File
	)
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output) // #nosec G304 -- user-provided output path is expected
		if err != nil {
			return nil, nil, fmt.Errorf("creating output file %s: %w", cfg.Output, err)
		}
		w = f
		outFile = f
	}

	if cfg.Format == config.FormatJSONL {
		return output.NewJSONLSink(w), outFile, nil
	}
	return output.NewCSVSink(w, cfg.Delimiter.Rune(), cfg.Raw), outFile, nil
}
