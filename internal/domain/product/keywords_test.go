package product

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitKeywordInput(t *testing.T) {
	assert.Equal(t, []string{"rice", "basmati"}, SplitKeywordInput(" rice , basmati ,, "))
	assert.Nil(t, SplitKeywordInput("  ,  ,"))
}

func TestAppendKeywordWholeMode(t *testing.T) {
	out := AppendKeyword([]string{"rice"}, "atta", KeywordModeWhole)
	assert.Equal(t, []string{"rice", "atta"}, out)

	// duplicates are suppressed, first occurrence wins
	out = AppendKeyword(out, "rice", KeywordModeWhole)
	assert.Equal(t, []string{"rice", "atta"}, out)
}

func TestAppendKeywordPrefixMode(t *testing.T) {
	out := AppendKeyword(nil, "atta", KeywordModePrefix)
	assert.Equal(t, []string{"a", "at", "att", "atta"}, out)

	// overlapping prefixes from a second entry collapse into the set
	out = AppendKeyword(out, "ata", KeywordModePrefix)
	assert.Equal(t, []string{"a", "at", "att", "atta", "ata"}, out)
}

func TestAppendKeywordIgnoresBlank(t *testing.T) {
	existing := []string{"rice"}
	assert.Equal(t, existing, AppendKeyword(existing, "   ", KeywordModeWhole))
}

func TestNewIDShape(t *testing.T) {
	id := NewID()
	assert.True(t, strings.HasPrefix(id, "PRD"))
	assert.Equal(t, id, strings.ToUpper(id))
	assert.Greater(t, len(id), 3+idRandomChars)
}
