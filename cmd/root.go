// Package cmd provides the root command and CLI setup for docstream.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/docstream/internal/adapter"
	"github.com/mouse-blink/docstream/internal/config"
)

var repository adapter.Repository
var cfg = config.Default()

func init() {
	repository = adapter.NewGitRepository()
}

var configFlag string
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docstream",
		Short: "Stream generated documentation into source files",
		Long: `Docstream places documentation templates above (or inside) the scopes
reported by the analysis service, then streams generated text into
the right template fields as tokens arrive.

Messages are read as newline-delimited JSON:
  {"type":"init","data":{"topic":...,"scopes":[...],"template":...,"position":"BEFORE"}}
  {"type":"token","topic":...,"data":{"scope":{...},"type":"@overview","text":...}}
  {"type":"error","level":40,"message":...}`,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to config file (default ~/.config/docstream/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "show info and warning diagnostics")

	return cmd
}

func loadConfig(_ *cobra.Command, _ []string) error {
	path := configFlag
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return err
		}

		path = defaultPath
	}

	loaded, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if verboseFlag {
		loaded.Verbose = true
	}

	cfg = loaded

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A second signal after the first one terminates immediately.
	context.AfterFunc(ctx, stop)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
