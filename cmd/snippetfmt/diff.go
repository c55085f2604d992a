package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xonecas/snippetfmt/internal/diffspan"
	"github.com/xonecas/snippetfmt/internal/format"
	"github.com/xonecas/snippetfmt/internal/source"
	"github.com/xonecas/snippetfmt/internal/span"
)

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [before] [after]",
		Short: "Render the changed regions between two file revisions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			before, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("diff: read %s: %w", args[0], err)
			}
			after, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("diff: read %s: %w", args[1], err)
			}

			changes, err := diffspan.Compute(string(before), string(after))
			if err != nil {
				return fmt.Errorf("diff: %w", err)
			}

			m := span.NewDefaultMetric()
			f := format.New()
			for _, c := range changes {
				f.AddHighlight(c.Highlight.Span, c.Highlight.Label, c.Highlight.Style)
			}

			bound := span.OfString([]rune(string(after)), m)
			out, err := f.Render(source.FromString(string(after)), bound, m)
			if err != nil {
				return fmt.Errorf("diff: render: %w", err)
			}

			fmt.Print(out.String())
			return nil
		},
	}
	return cmd
}
