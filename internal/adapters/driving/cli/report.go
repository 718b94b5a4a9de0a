package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/csvnorm/internal/adapters/driving/styles"
	"github.com/custodia-labs/csvnorm/internal/core/domain"
)

// printReport prints one line per completed stage, then the outcome.
func printReport(cmd *cobra.Command, st *styles.Styles, report *domain.Report, err error) {
	if report != nil {
		if report.BackedUp() {
			cmd.Printf("Backed up %s -> %s\n", report.Input, report.Backup)
		}
		if msg := report.HeaderAction.Message(); msg != "" {
			cmd.Println(msg)
		}
	}

	if err == nil {
		cmd.Printf("Wrote normalized CSV to %s\n", report.Input)
		cmd.Println(st.Success("Done."))
		return
	}

	for _, line := range failureLines(report, err) {
		cmd.Println(st.Failure(line))
	}
}

// failureLines maps a pipeline error to its user facing messages.
func failureLines(report *domain.Report, err error) []string {
	var (
		backupErr *domain.BackupError
		writeErr  *domain.WriteError
	)

	switch {
	case errors.Is(err, domain.ErrInputNotFound):
		input := ""
		if report != nil {
			input = report.Input
		}
		return []string{"File not found: " + input}
	case errors.As(err, &backupErr):
		return []string{"Failed to create backup: " + backupErr.Err.Error()}
	case errors.Is(err, domain.ErrEmptyResult):
		return []string{"Input file empty after processing"}
	case errors.As(err, &writeErr):
		lines := []string{"Failed to write normalized file: " + writeErr.Err.Error()}
		if writeErr.Restored() {
			return append(lines, "Restored backup due to failure")
		}
		return append(lines, "Failed to restore backup: "+writeErr.RestoreErr.Error())
	default:
		return []string{"Failed to normalize: " + err.Error()}
	}
}
