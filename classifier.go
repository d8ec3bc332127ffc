package sigedit

import (
	"iter"
	"regexp"
	"strings"
)

// FieldRule classifies a candidate text as a field type.
type FieldRule struct {
	Type    FieldType
	Label   string
	Pattern *regexp.Regexp

	// Single limits the rule to one element per signature. Once claimed,
	// later matching texts fall through to the next rule.
	Single bool
}

// spaces lists, for use inside a character class, the whitespace that
// signature text is written with. Unlike \s it includes no-break and other
// Unicode spaces.
const spaces = `\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

// DefaultFieldRules returns the field rules in priority order:
// name, title, email, phone, website.
//
// Name is Single. Every text takes the first rule it matches, except that
// once a name has been claimed, later name-shaped texts are tested against
// the remaining rules and usually become titles.
func DefaultFieldRules() []FieldRule {
	return []FieldRule{
		{Type: FieldName, Label: "Full Name", Pattern: regexp.MustCompile(`^[A-Za-z` + spaces + `]{2,40}$`), Single: true},
		{Type: FieldTitle, Label: "Job Title", Pattern: regexp.MustCompile(`^[A-Za-z\-,&` + spaces + `]{3,50}$`)},
		{Type: FieldEmail, Label: "Email Address", Pattern: regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)},
		{Type: FieldPhone, Label: "Phone Number", Pattern: regexp.MustCompile(`^\+?[\d\-()` + spaces + `]{10,20}$`)},
		{Type: FieldWebsite, Label: "Website", Pattern: regexp.MustCompile(`^(https?://)?(www\.)?([A-Za-z0-9-]+\.)+[A-Za-z]{2,}(?:[/?#:]\S*)?$`)},
	}
}

// Classifier turns candidate texts into elements using an ordered rule list.
type Classifier struct {
	Rules []FieldRule
}

// NewClassifier returns a Classifier using DefaultFieldRules.
func NewClassifier() *Classifier {
	return &Classifier{Rules: DefaultFieldRules()}
}

// Classify consumes spans in order and returns one element per distinct
// text value that matches a rule. IDs are assigned sequentially from 1.
//
// The duplicate guard compares values across all types: a text already
// claimed by one rule is never claimed again by another.
func (c *Classifier) Classify(spans iter.Seq[TextSpan]) []Element {
	var elements []Element
	seen := make(map[string]bool)
	claimed := make(map[FieldType]bool)

	for span := range spans {
		if seen[span.Text] {
			continue
		}
		rule, ok := c.match(span.Text, claimed)
		if !ok {
			continue
		}
		seen[span.Text] = true
		claimed[rule.Type] = true
		elements = append(elements, Element{
			ID:         len(elements) + 1,
			Type:       rule.Type,
			Label:      rule.Label,
			Value:      span.Text,
			Locator:    span.Locator,
			Validation: rule.Type,
		})
	}
	return elements
}

func (c *Classifier) match(text string, claimed map[FieldType]bool) (FieldRule, bool) {
	for _, rule := range c.Rules {
		if rule.Single && claimed[rule.Type] {
			continue
		}
		if rule.Pattern.MatchString(text) {
			return rule, true
		}
	}
	return FieldRule{}, false
}

// ValidateField reports whether value is acceptable for the given field
// type. Types without a pattern accept any value.
func (c *Classifier) ValidateField(typ FieldType, value string) bool {
	switch typ {
	case FieldEmail, FieldPhone, FieldWebsite:
	default:
		return true
	}
	for _, rule := range c.Rules {
		if rule.Type == typ {
			return rule.Pattern.MatchString(strings.TrimSpace(value))
		}
	}
	return true
}
