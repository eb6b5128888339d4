package notion

import "time"

// Filter is a compound query filter sent to a database query endpoint.
// Conditions under And must all hold.
type Filter struct {
	And []Condition `json:"and,omitempty"`
}

// Condition is a single predicate in a filter tree. Exactly one of the
// typed predicate fields is set; Property names the page property it
// applies to, except for timestamp conditions which use Timestamp.
type Condition struct {
	Property       string             `json:"property,omitempty"`
	Timestamp      string             `json:"timestamp,omitempty"`
	Title          *TextCondition     `json:"title,omitempty"`
	Number         *NumberCondition   `json:"number,omitempty"`
	Date           *DateCondition     `json:"date,omitempty"`
	Relation       *RelationCondition `json:"relation,omitempty"`
	LastEditedTime *TimeCondition     `json:"last_edited_time,omitempty"`
}

type TextCondition struct {
	Equals string `json:"equals"`
}

type NumberCondition struct {
	Equals int `json:"equals"`
}

type DateCondition struct {
	IsNotEmpty bool `json:"is_not_empty,omitempty"`
}

type RelationCondition struct {
	IsEmpty bool `json:"is_empty,omitempty"`
}

type TimeCondition struct {
	OnOrAfter string `json:"on_or_after"`
}

// And combines conditions into a compound filter.
func And(conds ...Condition) Filter {
	return Filter{And: conds}
}

// TitleEquals matches pages whose title property equals value exactly.
func TitleEquals(property, value string) Condition {
	return Condition{Property: property, Title: &TextCondition{Equals: value}}
}

// NumberEquals matches pages whose number property equals value exactly.
func NumberEquals(property string, value int) Condition {
	return Condition{Property: property, Number: &NumberCondition{Equals: value}}
}

// DateNotEmpty matches pages whose date property has any value.
func DateNotEmpty(property string) Condition {
	return Condition{Property: property, Date: &DateCondition{IsNotEmpty: true}}
}

// RelationEmpty matches pages whose relation property holds no references.
func RelationEmpty(property string) Condition {
	return Condition{Property: property, Relation: &RelationCondition{IsEmpty: true}}
}

// EditedOnOrAfter matches pages last edited at or after t.
func EditedOnOrAfter(t time.Time) Condition {
	return Condition{
		Timestamp:      "last_edited_time",
		LastEditedTime: &TimeCondition{OnOrAfter: t.UTC().Format(time.RFC3339)},
	}
}
