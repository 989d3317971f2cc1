package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the stored fingerprints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := c.app.Clean(options(cmd, nil))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(c.out, "removed %s\n", path)
			return nil
		},
	}
}
