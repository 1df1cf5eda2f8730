package source

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Build APIs in Go.", stripHTML("<p>Build <b>APIs</b> in Go.</p>", 0))
	assert.Equal(t, "ab", stripHTML("  <div>abcdef</div>  ", 2))
}

func TestStripHTML_TruncatesOnRuneBoundary(t *testing.T) {
	// "₹" is three bytes; a byte-index cut at 4 would land inside it
	s := "ab" + strings.Repeat("₹", 10)

	got := stripHTML(s, 4)

	assert.Equal(t, "ab", got)
	assert.True(t, utf8.ValidString(got))

	got = stripHTML(s, 5)
	assert.Equal(t, "ab₹", got)
	assert.True(t, utf8.ValidString(got))
}

func TestMatchesBoardKeywords(t *testing.T) {
	assert.True(t, matchesBoardKeywords("Senior Backend Developer"))
	assert.True(t, matchesBoardKeywords("Machine Learning Intern"))
	assert.False(t, matchesBoardKeywords("Account Executive"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Western Digital", displayName("western-digital"))
	assert.Equal(t, "Ramp", displayName("ramp"))
}
