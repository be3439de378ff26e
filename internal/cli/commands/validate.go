package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/urltools/urlsplit/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a urlsplit configuration file without running a split.

Checks:
  - YAML syntax
  - Delimiter validity (single ASCII character, \t for tab)
  - Output format and its requirements
  - URL column selector presence`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Delimiter:   %s\n", cfg.Delimiter)
	fmt.Printf("  Headers:     %v\n", cfg.Headers)
	fmt.Printf("  Raw mode:    %v\n", cfg.Raw)
	fmt.Printf("  URL column:  %s\n", cfg.URLColumn)
	fmt.Printf("  Format:      %s\n", cfg.Format)
	fmt.Printf("  Suffixes:    %v\n", cfg.Suffixes)
	if cfg.Output != "" {
		fmt.Printf("  Output:      %s\n", cfg.Output)
	}

	return nil
}
