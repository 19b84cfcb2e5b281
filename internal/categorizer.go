package internal

import "strings"

// CategoryOther is assigned when no rule keyword matches the description.
const CategoryOther = "Other"

// CategoryRule maps a category name to the keywords that select it. Matching
// is substring containment on the lowercased description, not token matching.
type CategoryRule struct {
	Name     string
	Keywords []string
}

// DefaultCategoryRules is the built-in category table. Order matters: the
// first rule with a matching keyword wins, so Transport stays ahead of
// Entertainment (a description like "bus to the cinema" is Transport) and of
// Bills ("gasoline" must not hit Bills' "gas").
var DefaultCategoryRules = []CategoryRule{
	{Name: "Food", Keywords: []string{"store", "cafe", "restaurant", "groceries", "snack"}},
	{Name: "Transport", Keywords: []string{"taxi", "metro", "bus", "gasoline", "transport"}},
	{Name: "Entertainment", Keywords: []string{"cinema", "theater", "club", "concert", "entertainment"}},
	{Name: "Bills", Keywords: []string{"internet", "electricity", "water", "gas", "utilities"}},
}

// Categorizer assigns spending categories by scanning an ordered rule table.
// The table is fixed at construction and never mutated afterwards, so a single
// Categorizer may be shared freely.
type Categorizer struct {
	rules []CategoryRule
}

// NewCategorizer builds a categorizer from the given rules, preserving their
// order. Keywords are lowercased once up front. A nil or empty rule set falls
// back to DefaultCategoryRules.
func NewCategorizer(rules []CategoryRule) *Categorizer {
	if len(rules) == 0 {
		rules = DefaultCategoryRules
	}
	c := &Categorizer{rules: make([]CategoryRule, len(rules))}
	for i, rule := range rules {
		keywords := make([]string, len(rule.Keywords))
		for j, kw := range rule.Keywords {
			keywords[j] = strings.ToLower(kw)
		}
		c.rules[i] = CategoryRule{Name: rule.Name, Keywords: keywords}
	}
	return c
}

// Categorize returns the name of the first rule with a keyword contained in
// the lowercased description, or CategoryOther when nothing matches. It never
// fails: any input, including the empty string, yields exactly one category.
func (c *Categorizer) Categorize(description string) string {
	text := strings.ToLower(description)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(text, keyword) {
				return rule.Name
			}
		}
	}
	return CategoryOther
}

// Categories lists the rule names in declaration order, with CategoryOther
// appended last.
func (c *Categorizer) Categories() []string {
	names := make([]string, 0, len(c.rules)+1)
	for _, rule := range c.rules {
		names = append(names, rule.Name)
	}
	return append(names, CategoryOther)
}
