// Package extract pulls the derived calendar fields off a task page.
package extract

import (
	"errors"

	"github.com/harrisonrobin/linka/pkg/config"
	"github.com/harrisonrobin/linka/pkg/formula"
	"github.com/harrisonrobin/linka/pkg/notion"
)

// ErrMissingFields indicates a task lacks one or more of the derived
// calendar fields. Extraction is all-or-nothing; a partial result is
// never returned.
var ErrMissingFields = errors.New("task is missing required calendar fields")

// Fields are the calendar coordinates of a task, used to resolve its
// weekly and monthly rollup pages.
type Fields struct {
	Year  int
	Week  string
	Month string
}

// FieldsOf extracts (year, week, month) from a task page.
//
// Year must be a numeric formula; week accepts a numeric or textual
// formula, with numbers rendered as text ("41"); month must be a
// non-empty textual formula. Week tolerates both shapes because formula
// properties change declared type when their expression is edited.
func FieldsOf(page notion.Page, props *config.Properties) (Fields, error) {
	year, ok := formula.Parse(page.Property(props.TaskYear)).Number()
	if !ok || int(year) == 0 {
		return Fields{}, ErrMissingFields
	}

	week, ok := formula.Parse(page.Property(props.TaskWeekNumber)).AsText()
	if !ok {
		return Fields{}, ErrMissingFields
	}

	month, ok := formula.Parse(page.Property(props.TaskMonth)).Text()
	if !ok {
		return Fields{}, ErrMissingFields
	}

	return Fields{Year: int(year), Week: week, Month: month}, nil
}

// Title returns the task's display title, or a placeholder when the
// title property is empty.
func Title(page notion.Page, props *config.Properties) string {
	title := page.Property(props.TaskTitle).Get("title.0.plain_text").String()
	if title == "" {
		return "Untitled Task"
	}
	return title
}
