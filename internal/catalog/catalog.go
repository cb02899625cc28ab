// Package catalog is the read-only tool palette: categories of node
// templates loaded from TOML, plus the drag payload that carries a
// template from the palette to the canvas.
package catalog

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/wesen/studio/internal/apperr"
)

var typeTagPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("typetag", validTypeTag); err != nil {
		panic("catalog: registering typetag validation: " + err.Error())
	}
	return v
}

func validTypeTag(fl validator.FieldLevel) bool {
	return typeTagPattern.MatchString(fl.Field().String())
}

// Catalog holds all known templates grouped by category.
type Catalog struct {
	categories []Category
	byType     map[string]Template
}

// New validates categories and builds a catalog. Categories sharing a
// label are merged in first-seen order. When a type tag appears more than
// once, the last definition wins and takes the place of the earlier one.
func New(categories []Category) (*Catalog, error) {
	for _, c := range categories {
		if err := validate.Struct(c); err != nil {
			return nil, apperr.NewValidation("category %q: %v", c.Label, err)
		}
	}

	type slot struct{ cat, idx int }
	var merged []Category
	labelIdx := make(map[string]int)
	last := make(map[string]slot)

	for _, c := range categories {
		ci, ok := labelIdx[c.Label]
		if !ok {
			ci = len(merged)
			labelIdx[c.Label] = ci
			merged = append(merged, Category{Label: c.Label})
		}
		for _, t := range c.Templates {
			t.Category = c.Label
			merged[ci].Templates = append(merged[ci].Templates, t)
			last[t.Type] = slot{ci, len(merged[ci].Templates) - 1}
		}
	}

	cat := &Catalog{byType: make(map[string]Template, len(last))}
	for ci, c := range merged {
		out := Category{Label: c.Label}
		for i, t := range c.Templates {
			if last[t.Type] != (slot{ci, i}) {
				continue
			}
			out.Templates = append(out.Templates, t)
			cat.byType[t.Type] = t
		}
		if len(out.Templates) > 0 {
			cat.categories = append(cat.categories, out)
		}
	}
	return cat, nil
}

// Categories returns the categories in palette order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Templates returns every template in palette order.
func (c *Catalog) Templates() []Template {
	var all []Template
	for _, cat := range c.categories {
		all = append(all, cat.Templates...)
	}
	return all
}

// Lookup returns the template with the given type tag.
func (c *Catalog) Lookup(typeTag string) (Template, bool) {
	t, ok := c.byType[typeTag]
	return t, ok
}

// IsInline reports whether nodes of this type are configured in the
// side-panel inspector.
func (c *Catalog) IsInline(typeTag string) bool {
	return c.byType[typeTag].Inline
}

// Filter returns the categories restricted to templates whose name, type
// or description contains query (case-insensitive). An empty query
// returns everything.
func (c *Catalog) Filter(query string) []Category {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.categories
	}
	var result []Category
	for _, cat := range c.categories {
		var hits []Template
		for _, t := range cat.Templates {
			if matches(t, q) {
				hits = append(hits, t)
			}
		}
		if len(hits) > 0 {
			result = append(result, Category{Label: cat.Label, Templates: hits})
		}
	}
	return result
}

func matches(t Template, q string) bool {
	return strings.Contains(strings.ToLower(t.Name), q) ||
		strings.Contains(t.Type, q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}
