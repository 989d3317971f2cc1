package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/xcache/internal/core/domain"
)

func (c *CLI) newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff [units...]",
		Short: "List units whose fingerprint differs from the stored one",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := c.app.Diff(cmd.Context(), options(cmd, args))
			if err != nil {
				return err
			}

			stale := 0
			for _, ch := range report.Changes {
				if ch.Status != domain.ChangeStatusUnchanged {
					stale++
				}
			}
			if stale == 0 {
				_, _ = fmt.Fprintln(c.out, "all fingerprints are up to date")
				return nil
			}

			printChanges(c.out, report.Changes, true)
			return nil
		},
	}
}
