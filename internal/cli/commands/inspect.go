package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/urltools/urlsplit/pkg/splitter"
)

// InspectOptions holds command-line options for the inspect command.
type InspectOptions struct {
	Output     string
	NoSuffixes bool
}

// inspection is the result of splitting one URL for display.
type inspection struct {
	URL        string               `json:"url"`
	Components *splitter.Components `json:"components,omitempty"`
	Error      string               `json:"error,omitempty"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <url>...",
		Short: "Show the component breakdown of one or more URLs",
		Long: `Split each URL given on the command line and print its components.

Useful for checking how a single URL decomposes before running a full
split over a file.

Exit codes:
  0 - All URLs parsed
  1 - At least one URL failed to parse
  2 - Configuration or runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVar(&opts.NoSuffixes, "no-suffixes", false, "Skip public suffix derivation")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, opts *InspectOptions) error {
	if opts.Output != "text" && opts.Output != "json" {
		return fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}

	failed := false
	for _, raw := range args {
		result := inspectURL(raw, !opts.NoSuffixes)
		if result.Error != "" {
			failed = true
		}

		var err error
		if opts.Output == "json" {
			err = writeInspectionJSON(os.Stdout, result)
		} else {
			err = writeInspectionText(os.Stdout, result)
		}
		if err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
	}

	if failed {
		ExitCode = 1
	}
	return nil
}

func inspectURL(raw string, suffixes bool) inspection {
	result := inspection{URL: raw}

	comps, err := splitter.Split(raw, splitter.WithSuffixes(suffixes))
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Components = comps
	return result
}

func writeInspectionJSON(w io.Writer, result inspection) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeInspectionText(w io.Writer, result inspection) error {
	if _, err := fmt.Fprintln(w, result.URL); err != nil {
		return err
	}

	if result.Error != "" {
		_, err := fmt.Fprintf(w, "  error:        %s\n", result.Error)
		return err
	}

	c := result.Components
	rows := []struct {
		label, value string
	}{
		{"scheme", c.Scheme},
		{"userinfo", c.Userinfo},
		{"host", c.Host},
		{"port", c.Port},
		{"path", c.Path},
		{"query", c.Query},
		{"fragment", c.Fragment},
		{"hostname", c.Hostname},
		{"domain", c.Domain},
		{"subdomain", c.Subdomain},
		{"suffix", c.Suffix},
		{"registration", c.Registration},
	}

	for _, row := range rows {
		if row.value == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "  %-13s %s\n", row.label+":", row.value); err != nil {
			return err
		}
	}
	return nil
}
