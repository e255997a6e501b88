package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Category identifies one of the two tracked kinds of work.
type Category string

const (
	CategoryA Category = "manuscript"
	CategoryB Category = "grant"
)

// Categories lists both categories in rendering order (lower-left first).
var Categories = [2]Category{CategoryA, CategoryB}

var (
	ErrUnknownCategory     = errors.New("unknown category")
	ErrUnclassifiedProject = errors.New("project matches no category range")
)

// ParseCategory accepts the short (a, b) and long (manuscript, grant) forms.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", string(CategoryA):
		return CategoryA, nil
	case "b", string(CategoryB):
		return CategoryB, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownCategory)
	}
}

func (c Category) Valid() bool {
	return c == CategoryA || c == CategoryB
}

// CategoryRule assigns every project whose ID falls in [MinProject, MaxProject]
// to Category.
type CategoryRule struct {
	Category   Category
	Label      string
	MinProject int
	MaxProject int
	Palette    string
}

func (r CategoryRule) Contains(projectID int) bool {
	return projectID >= r.MinProject && projectID <= r.MaxProject
}

// CategoryRules holds one rule per category.
type CategoryRules [2]CategoryRule

// DefaultCategoryRules mirrors the historical project numbering:
// 1-999 are manuscripts, 1001-1999 are grant applications.
func DefaultCategoryRules() CategoryRules {
	return CategoryRules{
		{Category: CategoryA, Label: "Manuscript Hours", MinProject: 1, MaxProject: 999, Palette: "Blues"},
		{Category: CategoryB, Label: "Grant Hours", MinProject: 1001, MaxProject: 1999, Palette: "Greens"},
	}
}

// Classify returns the category owning projectID, or false when no rule matches.
func (rs CategoryRules) Classify(projectID int) (Category, bool) {
	for _, r := range rs {
		if r.Contains(projectID) {
			return r.Category, true
		}
	}
	return "", false
}

// Resolve fills in r.Category from its project when it is not already set.
func (rs CategoryRules) Resolve(r *TimeRecord) error {
	if r.Category != "" {
		return nil
	}
	c, ok := rs.Classify(r.ProjectID)
	if !ok {
		return fmt.Errorf("project %d: %w", r.ProjectID, ErrUnclassifiedProject)
	}
	r.Category = c
	return nil
}

// Rule returns the rule for c. It panics on an invalid category.
func (rs CategoryRules) Rule(c Category) CategoryRule {
	for _, r := range rs {
		if r.Category == c {
			return r
		}
	}
	panic(fmt.Sprintf("no rule for category %q", c))
}
