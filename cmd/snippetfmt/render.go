package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xonecas/snippetfmt/internal/astspan"
	"github.com/xonecas/snippetfmt/internal/config"
	"github.com/xonecas/snippetfmt/internal/format"
	"github.com/xonecas/snippetfmt/internal/highlight"
	"github.com/xonecas/snippetfmt/internal/imageout"
	"github.com/xonecas/snippetfmt/internal/lexsource"
	"github.com/xonecas/snippetfmt/internal/manifest"
	"github.com/xonecas/snippetfmt/internal/rendercache"
	"github.com/xonecas/snippetfmt/internal/source"
	"github.com/xonecas/snippetfmt/internal/span"
	"github.com/xonecas/snippetfmt/internal/style"
	"github.com/xonecas/snippetfmt/internal/typeset"
)

func newRenderCmd() *cobra.Command {
	var (
		manifestPath string
		pngPath      string
		language     string
		viewbox      int
		noLineNums   bool
		fontPath     string
		astSpans     bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render an annotated snippet from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderID := uuid.New().String()
			log.Info().Str("render_id", renderID).Msg("starting render")

			text, err := readInput(args)
			if err != nil {
				return err
			}

			cfg := loadConfig()
			m, err := loadMetric(fontPath)
			if err != nil {
				return err
			}

			f := format.New()
			f.SetShowLineNumbers(!noLineNums && cfg.Render.ShowLineNumbersOrDefault())
			f.SetShortcut(cfg.Render.ShortcutOrDefault())
			f.SetLabelSearchCap(cfg.Render.LabelSearchCapOrDefault())
			switch {
			case viewbox > 0:
				f.SetViewboxRadius(viewbox)
			case cfg.Render.ViewboxRadius > 0:
				f.SetViewboxRadius(cfg.Render.ViewboxRadius)
			case terminalWidth(0) > 0 && terminalWidth(0) < 100:
				// A narrow terminal can't usefully show long files without
				// scrolling anyway; default to a tighter viewbox than "show
				// everything" so long renders stay glanceable.
				f.SetViewboxRadius(terminalWidth(0) / 20)
			default:
				f.ShowAllLines()
			}

			highlights, err := collectHighlights(manifestPath, text, language, m)
			if err != nil {
				return err
			}
			if astSpans && len(args) > 0 {
				nodeHighlights, err := astSpanHighlights(cmd.Context(), args[0], text)
				if err != nil {
					return err
				}
				highlights = append(highlights, nodeHighlights...)
			}
			for _, h := range highlights {
				f.AddHighlight(h.Span, h.Label, h.Style)
			}

			cache := openRenderCache(cfg)
			defer cache.Close()
			fingerprint := rendercache.Fingerprint(text, highlights)
			if cached, ok := cache.Get(fingerprint); ok && pngPath == "" {
				fmt.Print(cached)
				return nil
			}

			bound := span.OfString([]rune(text), m)
			out, err := f.Render(source.FromString(text), bound, m)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}

			if pngPath != "" {
				file, err := os.Create(pngPath)
				if err != nil {
					return fmt.Errorf("render: create %s: %w", pngPath, err)
				}
				defer file.Close()
				return imageout.Render(file, out.Grids())
			}

			text2 := out.String()
			cache.Set(fingerprint, text2)
			fmt.Print(text2)
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML highlight manifest path")
	cmd.Flags().StringVar(&pngPath, "png", "", "write a PNG instead of ANSI text")
	cmd.Flags().StringVarP(&language, "lang", "l", "", "language for auto-highlight lexing (auto-detected if empty)")
	cmd.Flags().IntVar(&viewbox, "viewbox", 0, "elision radius, overrides config (0 uses the configured radius, else a terminal-width default, else shows all lines)")
	cmd.Flags().BoolVar(&noLineNums, "no-line-numbers", false, "hide the line-number gutter")
	cmd.Flags().StringVar(&fontPath, "font", "", "TTF font file to measure character widths from (default: fixed-width columns)")
	cmd.Flags().BoolVar(&astSpans, "ast-spans", false, "highlight every named AST node (requires a file argument in a supported language)")
	return cmd
}

// loadMetric returns span.NewDefaultMetric's fixed-width columns, or a
// typeset.Metric measuring real glyph advances from fontPath when one is
// given.
func loadMetric(fontPath string) (span.Metric, error) {
	if fontPath == "" {
		return span.NewDefaultMetric(), nil
	}
	file, err := os.Open(fontPath)
	if err != nil {
		return nil, fmt.Errorf("render: open font %s: %w", fontPath, err)
	}
	defer file.Close()
	m, err := typeset.New(file)
	if err != nil {
		return nil, fmt.Errorf("render: load font %s: %w", fontPath, err)
	}
	return m, nil
}

// astSpanHighlights parses path with astspan and turns every named AST node
// into a Note-styled highlight labeled with the node's kind, for --ast-spans.
func astSpanHighlights(ctx context.Context, path, text string) ([]highlight.Highlight, error) {
	ext := filepath.Ext(path)
	if !astspan.Supported(ext) {
		return nil, fmt.Errorf("render: --ast-spans: no grammar for %q", ext)
	}
	nodes, err := astspan.Parse(ctx, ext, []byte(text))
	if err != nil {
		return nil, fmt.Errorf("render: --ast-spans: %w", err)
	}
	highlights := make([]highlight.Highlight, 0, len(nodes))
	for _, n := range nodes {
		highlights = append(highlights, highlight.Highlight{
			Span:  n.Loc.Span(),
			Label: n.Kind,
			Style: style.NoteStyle,
		})
	}
	return highlights, nil
}

// collectHighlights prefers a manifest over auto-detected lexer
// highlights; when both are absent it falls back to lexsource so `render`
// without flags still produces something annotated.
func collectHighlights(manifestPath, text, language string, m span.Metric) ([]highlight.Highlight, error) {
	if manifestPath != "" {
		data, err := os.ReadFile(manifestPath)
		if err != nil {
			return nil, fmt.Errorf("render: read manifest: %w", err)
		}
		return manifest.Load(data, m)
	}

	lx, err := lexsource.New(text, language)
	if err != nil {
		return nil, err
	}
	return lx.Highlights(), nil
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("render: read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(filepath.Clean(args[0]))
	if err != nil {
		return "", fmt.Errorf("render: read %s: %w", args[0], err)
	}
	return string(data), nil
}

func openRenderCache(cfg *config.Config) *rendercache.Cache {
	path := cfg.Cache.SQLitePath
	if path == "" {
		if dir, err := config.EnsureDataDir(); err == nil {
			path = filepath.Join(dir, "rendercache.db")
		}
	}
	ttl := time.Duration(cfg.Cache.CacheTTLOrDefault()) * time.Hour
	c, err := rendercache.Open(path, cfg.Cache.MemoryEntriesOrDefault(), ttl)
	if err != nil {
		log.Warn().Err(err).Msg("render cache unavailable, continuing without it")
		return nil
	}
	return c
}
