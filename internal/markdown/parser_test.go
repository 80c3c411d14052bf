package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserHTML(t *testing.T) {
	p := NewParser()

	html, err := p.HTML("# Your Life Scores\n\n| Area | Score |\n|---|---|\n| Career | 8/10 |\n\n- ~~old~~ new")
	require.NoError(t, err)

	assert.Contains(t, html, `<h1 id="your-life-scores">Your Life Scores</h1>`)
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<td>Career</td>")
	assert.Contains(t, html, "<del>old</del>")
}
