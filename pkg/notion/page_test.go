package notion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageProperty(t *testing.T) {
	p := Page{
		ID: "page-1",
		Properties: json.RawMessage(`{
			"Due Date": {"date": {"start": "2025-10-06"}},
			"Q4. Status": {"formula": {"type": "string", "string": "on track"}}
		}`),
	}

	t.Run("plain name", func(t *testing.T) {
		assert.Equal(t, "2025-10-06", p.Property("Due Date").Get("date.start").String())
	})

	t.Run("name containing path metacharacters", func(t *testing.T) {
		got := p.Property("Q4. Status").Get("formula.string").String()
		assert.Equal(t, "on track", got)
	})

	t.Run("absent property", func(t *testing.T) {
		assert.False(t, p.Property("Nope").Exists())
	})
}

func TestEscapePath(t *testing.T) {
	assert.Equal(t, `Due Date`, EscapePath("Due Date"))
	assert.Equal(t, `Q4\. Status`, EscapePath("Q4. Status"))
	assert.Equal(t, `a\*b\?c\|d`, EscapePath("a*b?c|d"))
}
