package notion

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// Page is a record returned by a database query. Properties stays raw
// because property shapes vary by schema; callers navigate it with
// Property and the formula package.
type Page struct {
	ID         string          `json:"id"`
	Properties json.RawMessage `json:"properties"`
}

// Property returns the raw value of the named property. Property names
// come from user-defined schemas, so path metacharacters are escaped
// before lookup.
func (p Page) Property(name string) gjson.Result {
	return gjson.GetBytes(p.Properties, EscapePath(name))
}

// EscapePath escapes a property name for use as a single gjson/sjson
// path component.
func EscapePath(name string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`.`, `\.`,
		`*`, `\*`,
		`?`, `\?`,
		`|`, `\|`,
	)
	return r.Replace(name)
}
