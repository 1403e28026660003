package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/docstream/internal/controller"
	"github.com/mouse-blink/docstream/internal/domain"
	m "github.com/mouse-blink/docstream/internal/model"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Check whether a file is eligible for documentation",
		Long: `Check reports the repository, branch and last commit of FILE, and whether
it is tracked and carries the opt-in marker. README.md files do not need
the marker.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := m.Path(args[0])

			contents, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}

			result, err := domain.NewGate(repository, cfg.Marker).Check(file, string(contents))
			if err != nil {
				return err
			}

			return controller.NewSimpleUI(cmd).DisplayEligibility(result)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
