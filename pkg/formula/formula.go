// Package formula narrows heterogeneous formula property results into a
// small set of typed values. Formula properties can change declared type
// when a schema is edited, so callers state which shapes they accept.
package formula

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// Kind identifies the shape of a formula result.
type Kind int

const (
	Empty Kind = iota
	Number
	Text
)

// Result is a formula property result: a number, a non-empty string, or
// nothing.
type Result struct {
	kind Kind
	num  float64
	text string
}

// Parse reads the formula result out of a raw property value, as
// returned by Page.Property.
func Parse(prop gjson.Result) Result {
	f := prop.Get("formula")
	switch f.Get("type").String() {
	case "number":
		n := f.Get("number")
		if !n.Exists() || n.Type == gjson.Null {
			return Result{}
		}
		return Result{kind: Number, num: n.Float()}
	case "string":
		s := f.Get("string")
		if s.Type != gjson.String || s.String() == "" {
			return Result{}
		}
		return Result{kind: Text, text: s.String()}
	default:
		return Result{}
	}
}

func (r Result) Kind() Kind {
	return r.kind
}

// Number returns the numeric value, and whether the result was numeric.
func (r Result) Number() (float64, bool) {
	return r.num, r.kind == Number
}

// Text returns the string value, and whether the result was textual.
func (r Result) Text() (string, bool) {
	return r.text, r.kind == Text
}

// AsText returns the result rendered as text: textual results as-is,
// numeric results in their shortest decimal form (41 -> "41"). The
// second return is false for empty results.
func (r Result) AsText() (string, bool) {
	switch r.kind {
	case Text:
		return r.text, true
	case Number:
		return strconv.FormatFloat(r.num, 'f', -1, 64), true
	default:
		return "", false
	}
}
