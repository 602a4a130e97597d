package skills

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_RequiresAllCategories(t *testing.T) {
	_, err := NewCatalog(map[Category][]string{
		CategoryTechnical: {"Go"},
		CategorySoft:      {"Teamwork"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "languages")
}

func TestSuggest_EmptyActiveToken(t *testing.T) {
	c := NewDefaultCatalog()

	assert.Nil(t, c.Suggest("", CategoryTechnical))
	assert.Nil(t, c.Suggest("Python, ", CategoryTechnical), "trailing separator means empty active token")
	assert.Nil(t, c.Suggest("Python,   ", CategoryTechnical))
}

func TestSuggest_UnknownCategory(t *testing.T) {
	c := NewDefaultCatalog()
	assert.Nil(t, c.Suggest("Py", Category("design")))
}

func TestSuggest_SubstringMatchExcludesEntered(t *testing.T) {
	c := NewDefaultCatalog()

	got := c.Suggest("Python, Ja", CategoryTechnical)
	assert.Contains(t, got, "Java")
	assert.Contains(t, got, "JavaScript")
	assert.NotContains(t, got, "Python", "already-entered tokens are excluded")
}

func TestSuggest_DedupeIsCaseInsensitive(t *testing.T) {
	c := NewDefaultCatalog()

	got := c.Suggest("JAVA, ja", CategoryTechnical)
	assert.NotContains(t, got, "Java")
	assert.Contains(t, got, "JavaScript")
}

func TestSuggest_NeverReturnsEnteredToken(t *testing.T) {
	c := NewDefaultCatalog()

	buffer := "Python, Java, Go, pyt"
	entered := Tokens(buffer)
	for _, s := range c.Suggest(buffer, CategoryTechnical) {
		assert.False(t, containsFold(entered, s), "suggestion %q already entered", s)
	}
}

func TestSuggest_CapAndOrder(t *testing.T) {
	c := NewDefaultCatalog()

	// "a" matches far more than ten technical candidates.
	got := c.Suggest("a", CategoryTechnical)
	require.Len(t, got, MaxSuggestions)

	// Catalog order is preserved: each result appears after the previous
	// one in the source list.
	last := -1
	for _, s := range got {
		idx := indexOf(technicalSkills, s)
		require.Greater(t, idx, last, "catalog order not preserved at %q", s)
		last = idx
	}
}

func TestSuggest_MatchIsCaseInsensitive(t *testing.T) {
	c := NewDefaultCatalog()

	assert.Contains(t, c.Suggest("engl", CategoryLanguages), "English")
	assert.Contains(t, c.Suggest("ENGL", CategoryLanguages), "English")
}

func TestTokens(t *testing.T) {
	assert.Empty(t, Tokens(""))
	assert.Equal(t, []string{"Go", "Rust"}, Tokens(" Go , Rust "))
	assert.Equal(t, []string{"Go"}, Tokens("Go, , ,"))
}

func TestActiveToken(t *testing.T) {
	assert.Equal(t, "Ja", ActiveToken("Python, Ja"))
	assert.Equal(t, "", ActiveToken("Python, "))
	assert.Equal(t, "Python", ActiveToken("Python"))
	assert.Equal(t, "", ActiveToken(""))
}

func indexOf(list []string, want string) int {
	for i, s := range list {
		if strings.EqualFold(s, want) {
			return i
		}
	}
	return -1
}
