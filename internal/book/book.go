// Package book implements the collection store: an ordered list of book
// records persisted as a single JSON array.
package book

import (
	"fmt"
	"strings"
)

// Book is one entry in the collection. The JSON keys are the on-disk format.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   string `json:"year"`
	Genre  string `json:"genre"`
	Read   bool   `json:"read"`
}

// Status returns "Read" or "Unread".
func (b Book) Status() string {
	if b.Read {
		return "Read"
	}

	return "Unread"
}

// String renders the book the way list and search output show it,
// e.g. "Dune by Herbert (1965) - SciFi - Read".
func (b Book) String() string {
	return fmt.Sprintf("%s by %s (%s) - %s - %s", b.Title, b.Author, b.Year, b.Genre, b.Status())
}

// missingFields returns the names of required fields that are empty.
// Presence only: whitespace counts as a value.
func (b Book) missingFields() []string {
	var missing []string

	if b.Title == "" {
		missing = append(missing, "title")
	}

	if b.Author == "" {
		missing = append(missing, "author")
	}

	if b.Year == "" {
		missing = append(missing, "year")
	}

	return missing
}

func titleMatches(b Book, title string) bool {
	return strings.EqualFold(b.Title, title)
}

// Field selects what a search is meant to look at.
type Field string

// Search fields.
const (
	FieldTitle  Field = "title"
	FieldAuthor Field = "author"
)

// ParseField parses a search field name, case-insensitively.
func ParseField(s string) (Field, error) {
	switch Field(strings.ToLower(s)) {
	case FieldTitle:
		return FieldTitle, nil
	case FieldAuthor:
		return FieldAuthor, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidField, s)
	}
}

// Changes holds replacement values for Update. Empty strings keep the
// current value. Read has no such option and is always applied.
type Changes struct {
	Title  string
	Author string
	Year   string
	Genre  string
	Read   bool
}

func (c Changes) apply(b Book) Book {
	if c.Title != "" {
		b.Title = c.Title
	}

	if c.Author != "" {
		b.Author = c.Author
	}

	if c.Year != "" {
		b.Year = c.Year
	}

	if c.Genre != "" {
		b.Genre = c.Genre
	}

	b.Read = c.Read

	return b
}

// Progress is the read-progress statistic.
type Progress struct {
	Total   int
	Read    int
	Percent float64
}

// PercentString formats Percent with two decimals, e.g. "42.00%".
func (p Progress) PercentString() string {
	return fmt.Sprintf("%.2f%%", p.Percent)
}
