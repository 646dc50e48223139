package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kview-dev/kview/internal/config"
	"github.com/kview-dev/kview/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  _        _
 | |___ __(_)_____ __ __
 | / /\ V /| / -_) V  V /
 |_\_\ \_/ |_\___|\_/\_/
`

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code. Failures are
// reported on stderr through the coded error printer.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root, style := rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		if os.Getenv("NO_COLOR") != "" {
			style.Color = false
		}
		errors.Fprint(stderr, err, *style)
		return 1
	}
	return 0
}

func rootCmd() (*cobra.Command, *errors.Style) {
	var (
		dir         string
		noColor     bool
		errorFormat string
	)
	style := &errors.Style{Color: true}

	root := &cobra.Command{
		Use:   "kview",
		Short: "Serve and export kview applications",
		Long: `kview renders widget trees on the server.

The serve command runs the showcase application behind a websocket
transport: the browser client applies document mutations and sends
events back. The export command renders the same application once
into a static page.

Configuration is read from kview.json or kview.yaml in the project
directory. Command line flags override it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			style.Color = !noColor
			switch errorFormat {
			case "text":
				style.JSON = false
			case "json":
				style.JSON = true
			default:
				return fmt.Errorf("--error-format must be text or json, got %q", errorFormat)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&dir, "dir", "C", "", "Project directory (default: search upwards from the working directory)")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored error output")
	root.PersistentFlags().StringVar(&errorFormat, "error-format", "text", "Error output format: text or json")

	load := func() (*config.Config, error) { return loadConfig(dir) }
	root.AddCommand(
		serveCmd(load),
		exportCmd(load),
		versionCmd(),
	)
	return root, style
}

// loadConfig reads the project configuration. Without an explicit
// directory it searches upwards from the working directory and falls back
// to defaults when no configuration file exists.
func loadConfig(dir string) (*config.Config, error) {
	if dir != "" {
		return config.LoadOrDefault(dir)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if root, err := config.FindProjectRoot(wd); err == nil {
		wd = root
	}
	return config.LoadOrDefault(wd)
}

func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
