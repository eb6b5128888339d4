package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func parseProp(t *testing.T, raw string) Result {
	t.Helper()
	return Parse(gjson.Parse(raw))
}

func TestParse(t *testing.T) {
	t.Run("number result", func(t *testing.T) {
		r := parseProp(t, `{"type":"formula","formula":{"type":"number","number":2025}}`)
		assert.Equal(t, Number, r.Kind())
		n, ok := r.Number()
		assert.True(t, ok)
		assert.Equal(t, 2025.0, n)
	})

	t.Run("string result", func(t *testing.T) {
		r := parseProp(t, `{"type":"formula","formula":{"type":"string","string":"October"}}`)
		assert.Equal(t, Text, r.Kind())
		s, ok := r.Text()
		assert.True(t, ok)
		assert.Equal(t, "October", s)
	})

	t.Run("null number is empty", func(t *testing.T) {
		r := parseProp(t, `{"type":"formula","formula":{"type":"number","number":null}}`)
		assert.Equal(t, Empty, r.Kind())
	})

	t.Run("empty string is empty", func(t *testing.T) {
		r := parseProp(t, `{"type":"formula","formula":{"type":"string","string":""}}`)
		assert.Equal(t, Empty, r.Kind())
	})

	t.Run("null string is empty", func(t *testing.T) {
		r := parseProp(t, `{"type":"formula","formula":{"type":"string","string":null}}`)
		assert.Equal(t, Empty, r.Kind())
	})

	t.Run("other result types are empty", func(t *testing.T) {
		r := parseProp(t, `{"type":"formula","formula":{"type":"date","date":{"start":"2025-10-06"}}}`)
		assert.Equal(t, Empty, r.Kind())
	})

	t.Run("missing formula is empty", func(t *testing.T) {
		r := parseProp(t, `{"type":"rich_text","rich_text":[]}`)
		assert.Equal(t, Empty, r.Kind())
	})

	t.Run("absent property is empty", func(t *testing.T) {
		r := Parse(gjson.Result{})
		assert.Equal(t, Empty, r.Kind())
	})
}

func TestAsText(t *testing.T) {
	t.Run("text passes through", func(t *testing.T) {
		s, ok := parseProp(t, `{"formula":{"type":"string","string":"41"}}`).AsText()
		assert.True(t, ok)
		assert.Equal(t, "41", s)
	})

	t.Run("whole number renders without decimals", func(t *testing.T) {
		s, ok := parseProp(t, `{"formula":{"type":"number","number":41}}`).AsText()
		assert.True(t, ok)
		assert.Equal(t, "41", s)
	})

	t.Run("fractional number keeps its fraction", func(t *testing.T) {
		s, ok := parseProp(t, `{"formula":{"type":"number","number":41.5}}`).AsText()
		assert.True(t, ok)
		assert.Equal(t, "41.5", s)
	})

	t.Run("empty yields nothing", func(t *testing.T) {
		_, ok := Result{}.AsText()
		assert.False(t, ok)
	})
}
