package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xonecas/snippetfmt/internal/span"
	"github.com/xonecas/snippetfmt/internal/style"
)

func TestLoadValidManifest(t *testing.T) {
	doc := `
highlights:
  - start_line: 0
    start_column: 0
    last_line: 0
    last_column: 3
    label: "a binding"
    kind: note
`
	m := span.NewDefaultMetric()
	hs, err := Load([]byte(doc), m)
	require.NoError(t, err)
	require.Len(t, hs, 1)
	assert.Equal(t, "a binding", hs[0].Label)
	assert.Equal(t, style.Note, hs[0].Style.Kind())
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	doc := `
highlights:
  - start_line: 0
    start_column: 0
    last_line: 0
    last_column: 1
    kind: bogus
`
	m := span.NewDefaultMetric()
	_, err := Load([]byte(doc), m)
	assert.Error(t, err)
}

func TestLoadRejectsMissingRequiredField(t *testing.T) {
	doc := `
highlights:
  - start_line: 0
    start_column: 0
    kind: note
`
	m := span.NewDefaultMetric()
	_, err := Load([]byte(doc), m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")
}

func TestLoadEmptyManifest(t *testing.T) {
	m := span.NewDefaultMetric()
	hs, err := Load([]byte("highlights: []\n"), m)
	require.NoError(t, err)
	assert.Empty(t, hs)
}
