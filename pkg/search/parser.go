package search

import (
	"regexp"
	"strings"
)

// FieldType represents the type of field being searched
type FieldType string

const (
	FieldTag        FieldType = "tag"
	FieldCategory   FieldType = "category"
	FieldDifficulty FieldType = "difficulty"
	FieldName       FieldType = "name"
	FieldIngredient FieldType = "ingredient"
)

// Condition represents a single search condition
type Condition struct {
	Field  FieldType
	Value  string
	Negate bool
}

// Query represents a parsed search query. Free text terms match the
// recipe name and description; field conditions narrow the result.
type Query struct {
	Terms      []string
	Conditions []Condition
	Raw        string
}

// Empty reports whether the query filters anything at all.
func (q *Query) Empty() bool {
	return len(q.Terms) == 0 && len(q.Conditions) == 0
}

// Parser handles parsing of search queries
type Parser struct {
	fieldPattern  *regexp.Regexp
	quotedPattern *regexp.Regexp
}

// NewParser creates a new search query parser
func NewParser() *Parser {
	return &Parser{
		fieldPattern:  regexp.MustCompile(`^(-?)(\w+):(.+)$`),
		quotedPattern: regexp.MustCompile(`^"([^"]*)"$`),
	}
}

// Parse parses a query string like `chicken tag:weeknight -category:dessert`.
// Unknown field prefixes are treated as free text rather than rejected, so
// typing in the search bar never errors mid-keystroke.
func (p *Parser) Parse(input string) *Query {
	query := &Query{Raw: input}

	for _, token := range tokenize(input) {
		if m := p.fieldPattern.FindStringSubmatch(token); m != nil {
			field, ok := knownField(m[2])
			if ok {
				query.Conditions = append(query.Conditions, Condition{
					Field:  field,
					Value:  strings.ToLower(p.unquote(m[3])),
					Negate: m[1] == "-",
				})
				continue
			}
		}
		query.Terms = append(query.Terms, strings.ToLower(p.unquote(token)))
	}

	return query
}

func (p *Parser) unquote(s string) string {
	if m := p.quotedPattern.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}

func knownField(name string) (FieldType, bool) {
	switch strings.ToLower(name) {
	case "tag":
		return FieldTag, true
	case "category":
		return FieldCategory, true
	case "difficulty":
		return FieldDifficulty, true
	case "name":
		return FieldName, true
	case "ingredient":
		return FieldIngredient, true
	}
	return "", false
}

// tokenize splits on whitespace but keeps quoted phrases together,
// including phrases after a field prefix (tag:"make ahead").
func tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false

	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == ' ' && !inQuotes:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}
