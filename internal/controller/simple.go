package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/docstream/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySummaries prints one table row per documented scope.
func (s *SimpleUI) DisplaySummaries(summaries []m.SessionSummary) error {
	if len(summaries) == 0 {
		s.printf("No sessions\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Topic", "Scope", "Docs", "Overview", "Details", "End"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	scopes, tokens, dropped := 0, 0, 0

	for _, summary := range summaries {
		for _, state := range summary.States {
			table.Append([]string{
				summary.Topic,
				scopeLabel(state.Scope),
				strconv.Itoa(state.DocsStart),
				strconv.Itoa(state.OverviewLine),
				strconv.Itoa(state.DetailsLine),
				strconv.Itoa(state.EndLine),
			})

			scopes++
		}

		tokens += summary.Tokens
		dropped += summary.Dropped
	}

	table.SetFooter([]string{
		fmt.Sprintf("Sessions %d", len(summaries)),
		fmt.Sprintf("Scopes %d", scopes),
		"", "",
		fmt.Sprintf("Tokens %d", tokens),
		fmt.Sprintf("Dropped %d", dropped),
	})

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayEligibility prints the gate result as a two column table.
func (s *SimpleUI) DisplayEligibility(result m.Eligibility) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	table.AppendBulk([][]string{
		{"File", string(result.File)},
		{"Repository", result.Repo},
		{"Branch", result.Branch},
		{"Commit", result.Commit},
		{"Marker", strconv.FormatBool(result.Marker)},
		{"Tracked", strconv.FormatBool(result.Tracked)},
		{"Eligible", strconv.FormatBool(result.Eligible)},
	})
	table.Render()
	s.printf("%s", tableBuffer.String())

	if result.Reason != "" {
		s.printf("docstream: %s\n", result.Reason)
	}

	return nil
}

func scopeLabel(scope m.Scope) string {
	label := fmt.Sprintf("%d-%d", scope.Range.Start.Line, scope.Range.End.Line)
	if scope.Name != "" {
		label = scope.Name + " " + label
	}

	return label
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
