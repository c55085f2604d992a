// Package lexsource wraps a chroma lexer as a source.CharSource and derives
// a Highlight per token from the same tokenization pass (SPEC_FULL.md §3.2).
package lexsource

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/snippetfmt/internal/highlight"
	"github.com/xonecas/snippetfmt/internal/source"
	"github.com/xonecas/snippetfmt/internal/span"
	"github.com/xonecas/snippetfmt/internal/style"
)

// Source is a source.CharSource over text, additionally exposing the
// highlight set discovered by tokenizing it.
type Source struct {
	runes []rune
	pos   int

	highlights []highlight.Highlight
}

// New tokenizes text with the chroma lexer named by language (falling back
// to lexers.Analyse when language is empty) and builds one Highlight per
// token that styleFor maps to a style (error, keyword, string literal and
// comment tokens); other tokens get no highlight — grounded on
// internal/treesitter/parser.go's "parse once, derive a flat list" shape.
func New(text, language string) (*Source, error) {
	lexer := lexerFor(language, text)
	iter, err := lexer.Tokenise(nil, text)
	if err != nil {
		return nil, fmt.Errorf("lexsource: tokenise: %w", err)
	}

	s := &Source{runes: []rune(text)}
	m := span.NewDefaultMetric()
	pos := span.Position{}

	for _, tok := range iter.Tokens() {
		start := pos
		for _, c := range tok.Value {
			pos = pos.Next(c, m)
		}
		if sty, ok := styleFor(tok.Type); ok {
			sp, err := span.New(start, prevPosition(start, pos, tok.Value, m), pos)
			if err != nil {
				log.Warn().Err(err).Str("token", tok.Value).Msg("lexsource: dropping malformed token span")
				continue
			}
			s.highlights = append(s.highlights, highlight.Highlight{Span: sp, Style: sty})
		}
	}

	return s, nil
}

func lexerFor(language, text string) chroma.Lexer {
	var lexer chroma.Lexer
	if language != "" {
		lexer = lexers.Get(language)
	}
	if lexer == nil {
		lexer = lexers.Analyse(text)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// prevPosition recovers the token's Last position by replaying every rune
// of value except the final one from start under m, since chroma tokens
// don't carry per-rune positions. end is not used.
func prevPosition(start, end span.Position, value string, m span.Metric) span.Position {
	runes := []rune(value)
	if len(runes) == 0 {
		return start
	}
	pos := start
	for i := 0; i < len(runes)-1; i++ {
		pos = pos.Next(runes[i], m)
	}
	return pos
}

// styleFor maps a chroma token category to a highlight.Style, mirroring
// SPEC_FULL.md §3.2's "Keyword -> Note, Error token type -> Error" rule.
func styleFor(t chroma.TokenType) (style.Style, bool) {
	switch {
	case t == chroma.Error:
		return style.ErrorStyle, true
	case t.InCategory(chroma.Keyword):
		return style.NoteStyle, true
	case t.InCategory(chroma.LiteralString):
		return style.HelpStyle, true
	case t.InCategory(chroma.Comment):
		return style.WarningStyle, true
	default:
		return style.Style{}, false
	}
}

// Next implements source.CharSource.
func (s *Source) Next() (rune, error) {
	if s.pos >= len(s.runes) {
		return 0, io.EOF
	}
	r := s.runes[s.pos]
	s.pos++
	return r, nil
}

// Highlights returns the highlights discovered during tokenization, in
// span order (chroma emits tokens front to back, so no re-sort is needed).
func (s *Source) Highlights() []highlight.Highlight {
	return s.highlights
}

var _ source.CharSource = (*Source)(nil)
