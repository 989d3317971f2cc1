package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.trai.ch/xcache/internal/core/domain"
)

var (
	newColor       = color.New(color.FgCyan, color.Bold)
	changedColor   = color.New(color.FgYellow, color.Bold)
	unchangedColor = color.New(color.FgGreen)
)

func (c *CLI) newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [units...]",
		Short: "Fingerprint the cacheable units and store the result",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options(cmd, args)
			opts.NoSave, _ = cmd.Flags().GetBool("no-save")

			report, err := c.app.Hash(cmd.Context(), opts)
			if err != nil {
				return err
			}
			printChanges(c.out, report.Changes, false)
			return nil
		},
	}
	cmd.Flags().Bool("no-save", false, "Do not persist the new fingerprints")
	return cmd
}

// printChanges writes one aligned line per unit. With onlyStale set,
// unchanged units are left out.
func printChanges(w io.Writer, changes []domain.UnitChange, onlyStale bool) {
	width := 0
	for _, ch := range changes {
		width = max(width, len(ch.Unit))
	}

	for _, ch := range changes {
		if onlyStale && ch.Status == domain.ChangeStatusUnchanged {
			continue
		}
		_, _ = fmt.Fprintf(w, "%-*s  %s  %s\n", width, ch.Unit, ch.Digest, statusColor(ch.Status).Sprint(ch.Status))
	}
}

func statusColor(status domain.ChangeStatus) *color.Color {
	switch status {
	case domain.ChangeStatusNew:
		return newColor
	case domain.ChangeStatusChanged:
		return changedColor
	default:
		return unchangedColor
	}
}
