package main

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xonecas/snippetfmt/internal/format"
	"github.com/xonecas/snippetfmt/internal/lexsource"
	"github.com/xonecas/snippetfmt/internal/source"
	"github.com/xonecas/snippetfmt/internal/span"
)

func newBatchCmd() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "batch [glob]",
		Short: "Render every file matching a doublestar glob pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := doublestar.FilepathGlob(args[0])
			if err != nil {
				return fmt.Errorf("batch: glob %s: %w", args[0], err)
			}
			if len(matches) == 0 {
				log.Warn().Str("pattern", args[0]).Msg("batch: no files matched")
				return nil
			}

			m := span.NewDefaultMetric()
			for _, path := range matches {
				data, err := os.ReadFile(path)
				if err != nil {
					log.Warn().Err(err).Str("path", path).Msg("batch: skipping unreadable file")
					continue
				}
				text := string(data)

				lx, err := lexsource.New(text, language)
				if err != nil {
					log.Warn().Err(err).Str("path", path).Msg("batch: lexing failed")
					continue
				}

				f := format.New()
				for _, h := range lx.Highlights() {
					f.AddHighlight(h.Span, h.Label, h.Style)
				}
				bound := span.OfString([]rune(text), m)
				out, err := f.Render(source.FromString(text), bound, m)
				if err != nil {
					log.Warn().Err(err).Str("path", path).Msg("batch: render failed")
					continue
				}

				fmt.Printf("--- %s ---\n%s\n", path, out.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&language, "lang", "l", "", "language for lexing (auto-detected if empty)")
	return cmd
}
