package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/docstream/internal/adapter"
	"github.com/mouse-blink/docstream/internal/controller"
	"github.com/mouse-blink/docstream/internal/domain"
	m "github.com/mouse-blink/docstream/internal/model"
)

var applyStreamFlag string
var applyOutputFlag string
var applySummaryFlag bool

// applyCmd represents the apply command.
var applyCmd = newApplyCmd()

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply FILE",
		Short: "Apply a documentation stream to a file",
		Long: `Apply reads protocol messages from a stream (stdin by default), inserts
one template per reported scope and appends streamed tokens to their
fields. The result is written back to FILE unless --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := m.Path(args[0])

			buffer, err := adapter.LoadFileBuffer(file)
			if err != nil {
				return err
			}

			input, closeInput, err := openStream(cmd, applyStreamFlag)
			if err != nil {
				return err
			}
			defer closeInput()

			diagnostics := adapter.NewZapDiagnostics(cmd.ErrOrStderr(), cfg.Verbose)
			defer func() { _ = diagnostics.Sync() }()

			sessions, err := domain.NewSessionStore(cfg.Sessions.MaxActive, func(s *domain.Session) {
				diagnostics.Report(m.LevelWarning, fmt.Sprintf("session %s evicted", s.Topic))
			})
			if err != nil {
				return err
			}

			router := domain.NewRouter(buffer, sessions, domain.NewTemplateInserter(), diagnostics)

			summaries, err := domain.NewRunner(router, diagnostics).Run(cmd.Context(), adapter.NewJSONLinesSource(input, cfg.Template))
			if err != nil {
				return err
			}

			out := file
			if applyOutputFlag != "" {
				out = m.Path(applyOutputFlag)
			}

			if err := buffer.Save(out); err != nil {
				return err
			}

			if applySummaryFlag {
				return controller.NewSimpleUI(cmd).DisplaySummaries(summaries)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&applyStreamFlag, "stream", "s", "-", "file to read messages from, - for stdin")
	cmd.Flags().StringVarP(&applyOutputFlag, "output", "o", "", "write the result here instead of FILE")
	cmd.Flags().BoolVar(&applySummaryFlag, "summary", false, "print where each scope's documentation landed")

	return cmd
}

func openStream(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open stream %s: %w", path, err)
	}

	return f, func() { _ = f.Close() }, nil
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
