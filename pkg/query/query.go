// Package query filters resource sets and grouped resource sets by text,
// category and provenance type. Filtering is pure: same inputs always yield
// the same output, in input order.
package query

import (
	"strings"

	"github.com/trojanworks/resourcehub/pkg/resource"
)

// All is the sentinel parameter value meaning "no filter on this dimension".
const All = "all"

// Params carries the active search criteria. Criteria compose with AND;
// an empty Query or an All Category/Type is a no-op on its dimension.
type Params struct {
	Query    string
	Category string
	Type     string
}

// Active reports whether any criterion would narrow the result.
func (p Params) Active() bool {
	return p.Query != "" ||
		(p.Category != "" && p.Category != All) ||
		(p.Type != "" && p.Type != All)
}

func (p Params) matchesText(r resource.Resource) bool {
	if p.Query == "" {
		return true
	}
	q := strings.ToLower(p.Query)
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Description), q)
}

func (p Params) matchesCategory(category string) bool {
	if p.Category == "" || p.Category == All {
		return true
	}
	return strings.EqualFold(category, p.Category)
}

func (p Params) matchesType(r resource.Resource) bool {
	if p.Type == "" || p.Type == All {
		return true
	}
	return string(r.Type) == p.Type
}

// Filter returns the resources matching all active criteria, preserving
// input order.
func Filter(resources []resource.Resource, p Params) []resource.Resource {
	filtered := make([]resource.Resource, 0, len(resources))
	for _, r := range resources {
		if p.matchesText(r) && p.matchesCategory(r.Category) && p.matchesType(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FilterGroups applies the criteria to grouped resources. The category
// criterion selects whole groups by key; the text and type criteria narrow
// items inside the remaining groups. Groups left empty are dropped.
func FilterGroups(groups []resource.Group, p Params) []resource.Group {
	filtered := make([]resource.Group, 0, len(groups))
	for _, g := range groups {
		if !p.matchesCategory(g.Key) {
			continue
		}
		items := make([]resource.Resource, 0, len(g.Items))
		for _, r := range g.Items {
			if p.matchesText(r) && p.matchesType(r) {
				items = append(items, r)
			}
		}
		if len(items) == 0 {
			continue
		}
		filtered = append(filtered, resource.Group{Key: g.Key, Items: items})
	}
	return filtered
}
