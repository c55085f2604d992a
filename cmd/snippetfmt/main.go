// Command snippetfmt renders annotated source snippets from the command
// line: a file (or stdin) plus a highlight manifest or auto-detected
// lexer highlights, to ANSI text or PNG.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/x/term"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xonecas/snippetfmt/internal/config"
)

func main() {
	setupLogging()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "snippetfmt",
		Short: "Render annotated source-code snippets",
	}
	root.AddCommand(newRenderCmd())
	root.AddCommand(newDiffCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newBatchCmd())
	return root
}

// setupLogging configures zerolog the way cmd/symb/main.go's
// setupFileLogging does: a console writer when stderr is a terminal
// (grounded on term detection used elsewhere in the teacher's stack),
// structured JSON otherwise.
func setupLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if term.IsTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
}

// terminalWidth returns the current stdout width, or fallback when stdout
// isn't a terminal — grounded on MacroPower-niceyaml/cmd/nyaml/validate.go's
// term.IsTerminal+term.GetSize pairing.
func terminalWidth(fallback int) int {
	if !term.IsTerminal(os.Stdout.Fd()) {
		return fallback
	}
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

func loadConfig() *config.Config {
	path := ""
	if dataDir, err := config.DataDir(); err == nil {
		candidate := filepath.Join(dataDir, "config.toml")
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load config, using defaults")
		cfg = &config.Config{}
	}
	return cfg
}
