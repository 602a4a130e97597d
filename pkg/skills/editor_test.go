package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTechnicalEditor(t *testing.T) *Editor {
	t.Helper()
	return NewEditor(NewDefaultCatalog(), CategoryTechnical)
}

func TestEditor_CommaCommitsToken(t *testing.T) {
	e := newTechnicalEditor(t)

	e.Input("React")
	e.CommaPressed()

	assert.Equal(t, "React, ", e.Buffer())
	assert.Empty(t, e.Suggestions(), "comma closes suggestions")
}

func TestEditor_CommaSkipsDuplicateAndNormalizes(t *testing.T) {
	e := newTechnicalEditor(t)

	e.Input("React, react")
	e.CommaPressed()
	assert.Equal(t, "React, ", e.Buffer(), "duplicate trailing token dropped")

	e.Input("React, ")
	e.CommaPressed()
	assert.Equal(t, "React, ", e.Buffer(), "empty active token just normalizes")
}

func TestEditor_CommaOnEmptyBuffer(t *testing.T) {
	e := newTechnicalEditor(t)

	e.Input("")
	e.CommaPressed()
	assert.Equal(t, "", e.Buffer())
}

func TestEditor_EnterCommitsActiveToken(t *testing.T) {
	e := newTechnicalEditor(t)

	e.Input("Python, Ja")
	e.EnterPressed()

	assert.Equal(t, "Python, Ja", e.Buffer())
	assert.Empty(t, e.Suggestions())
}

func TestEditor_EnterWithDuplicateCommitsFirstSuggestion(t *testing.T) {
	e := newTechnicalEditor(t)

	// Active token "Go" duplicates an existing token; the catalog's first
	// match for "go" that is not already entered is "Golang".
	e.Input("Go, Go")
	suggestions := e.Suggestions()
	require.NotEmpty(t, suggestions)
	require.Equal(t, "Golang", suggestions[0])

	e.EnterPressed()
	assert.Equal(t, "Go, Golang", e.Buffer())
	assert.Empty(t, e.Suggestions())
}

func TestEditor_EnterWithNothingToCommit(t *testing.T) {
	e := newTechnicalEditor(t)

	e.Input("Python, ")
	e.EnterPressed()
	assert.Equal(t, "Python, ", e.Buffer(), "nothing committed, buffer untouched")
}

func TestEditor_SelectReplacesActiveToken(t *testing.T) {
	e := newTechnicalEditor(t)

	e.Input("Python, Ja")
	e.Select("JavaScript")
	assert.Equal(t, "Python, JavaScript", e.Buffer())

	// Empty active token: selection appends.
	e.Input("Python, JavaScript, ")
	e.Select("Go")
	assert.Equal(t, "Python, JavaScript, Go", e.Buffer())
}

func TestEditor_EscapeClosesWithoutTouchingBuffer(t *testing.T) {
	e := newTechnicalEditor(t)

	e.Input("Py")
	require.NotEmpty(t, e.Suggestions())

	e.EscapePressed()
	assert.Equal(t, "Py", e.Buffer())
	assert.Empty(t, e.Suggestions())
}

func TestEditor_BlurAndFocus(t *testing.T) {
	e := newTechnicalEditor(t)

	e.Input("Py")
	require.NotEmpty(t, e.Suggestions())

	e.Blur()
	assert.Empty(t, e.Suggestions())

	e.Focus()
	assert.NotEmpty(t, e.Suggestions(), "focus reopens when active token has candidates")

	// A selection in flight suppresses the blur-driven close.
	e.BeginSelect()
	e.Blur()
	assert.NotEmpty(t, e.Suggestions())
	e.Select("Python")
	assert.Equal(t, "Python", e.Buffer())
}

func TestEditor_FocusWithEmptyActiveToken(t *testing.T) {
	e := newTechnicalEditor(t)

	e.Input("Python, ")
	e.Blur()
	e.Focus()
	assert.Empty(t, e.Suggestions(), "no reopen on empty active token")
}

func TestEditor_VisibleOpenRequiresCandidates(t *testing.T) {
	e := newTechnicalEditor(t)

	// Open flag is set by Input, but a token with no catalog match shows
	// nothing.
	e.Input("zzzzzz")
	assert.Empty(t, e.Suggestions())
}
