// Package cli provides the command-line interface for urlsplit.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/urltools/urlsplit/internal/cli/commands"
	"github.com/urltools/urlsplit/internal/cli/plugins"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	// Check if the first argument might be a plugin command
	if len(os.Args) > 1 {
		potentialCommand := os.Args[1]
		// Skip flags (start with -)
		if len(potentialCommand) > 0 && potentialCommand[0] != '-' {
			if !isBuiltinCommand(rootCmd, potentialCommand) {
				// Try to find and execute a plugin
				if pluginPath, err := plugins.FindPlugin(potentialCommand); err == nil {
					return plugins.Execute(pluginPath, os.Args[2:])
				}
				// Plugin not found - will fall through to Cobra which will show error
			}
		}
	}

	if err := rootCmd.Execute(); err != nil {
		// Check if this was an unknown command that could be a plugin
		if len(os.Args) > 1 {
			potentialCommand := os.Args[1]
			if len(potentialCommand) > 0 && potentialCommand[0] != '-' {
				if !isBuiltinCommand(rootCmd, potentialCommand) {
					_, _ = fmt.Fprintln(os.Stderr, plugins.FormatNotFoundError(potentialCommand))
					return 2
				}
			}
		}
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// isBuiltinCommand checks if a command name is a built-in cobra command.
func isBuiltinCommand(rootCmd *cobra.Command, name string) bool {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == name || cmd.HasAlias(name) {
			return true
		}
	}
	// Also check for special commands like help and completion
	return name == "help" || name == "completion"
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "urlsplit",
		Short: "Split URLs into their component parts",
		Long: `urlsplit reads a list of URLs and emits their component parts as
delimited rows.

Each input row is preserved and the following columns are appended:
  - scheme: How to reach the resource, e.g. "https"
  - userinfo: The credentials part of the authority, if any
  - host: Where to find the authority, e.g. "my.example.com"
  - port: The authority's port, if given
  - path: Where the resource lives within the authority, e.g. "/a/b"
  - query: Parameters specifying the page content, e.g. "foo=bar"
  - fragment: Anchor within the page, e.g. "some-heading"
  - hostname: The host when it is a registered name rather than an IP
  - domain: The registrable label, e.g. "example" for "my.example.com"
  - subdomain: The unregistered prefix, e.g. "my" for "my.example.com"
  - suffix: The public suffix, e.g. "com" or "co.uk"
  - registration: Domain and suffix combined, e.g. "example.com"
  - error: The parse failure for this row, if any

The domain, subdomain, suffix, and registration columns are derived from
the hostname using the public suffix list (PSL). Rows that fail to parse
are still emitted with the message in the error column.

PLUGINS:
  urlsplit supports plugins for extended functionality. Plugins are
  standalone binaries named urlsplit-<command> that are automatically
  discovered and invoked.

  Plugin locations (searched in order):
    1. Same directory as the urlsplit binary
    2. ~/.urlsplit/plugins/
    3. Anywhere in PATH`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewSplitCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
