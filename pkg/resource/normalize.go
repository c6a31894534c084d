package resource

import (
	"strings"

	"github.com/trojanworks/resourcehub/internal/utils"
)

// schema maps canonical fields to the column/property names one upstream
// source uses for them. An empty upstream name means the source never
// carries that field.
type schema struct {
	name           string
	description    string
	link           string
	category       string
	eligibility    string
	importantDates string
	stage          string
	parentItem     string
	subItem        string
}

// internalSchema matches the campus resource export ("Category" grouping).
var internalSchema = schema{
	name:           "Name",
	description:    "Description",
	link:           "Link",
	category:       "Category",
	eligibility:    "Eligibility",
	importantDates: "Important Dates",
	stage:          "Stage",
	parentItem:     "Parent item",
	subItem:        "Sub-item",
}

// externalSchema matches the external resource export ("Resource Type"
// grouping, fewer descriptive columns).
var externalSchema = schema{
	name:        "Name",
	description: "Description",
	link:        "Link",
	category:    "Resource Type",
}

func schemaFor(kind SourceKind) schema {
	if kind == External {
		return externalSchema
	}
	return internalSchema
}

// urlMarkers flag names that are really URLs typo'd into the name column.
// Best-effort heuristic: it can reject a legitimately named resource that
// happens to contain one of these substrings.
var urlMarkers = []string{"http", "www.", ".com", ".org", ".edu"}

func nameLooksLikeURL(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range urlMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Normalize maps one raw field-mapping into a canonical Resource. The
// second return value is false when the record is rejected: missing
// grouping key, missing name, or a URL-looking name.
func Normalize(raw map[string]string, kind SourceKind) (Resource, bool) {
	s := schemaFor(kind)

	category := strings.TrimSpace(raw[s.category])
	if category == "" {
		return Resource{}, false
	}

	name := strings.TrimSpace(raw[s.name])
	if name == "" || nameLooksLikeURL(name) {
		return Resource{}, false
	}

	r := Resource{
		Name:        name,
		Description: raw[s.description],
		Link:        raw[s.link],
		Category:    category,
		Type:        kind,
	}
	if r.Link == "" {
		r.Link = "#"
	}
	if s.eligibility != "" {
		r.Eligibility = raw[s.eligibility]
	}
	if s.importantDates != "" {
		r.ImportantDates = raw[s.importantDates]
	}
	if s.stage != "" {
		r.Stage = raw[s.stage]
	}
	if s.parentItem != "" {
		r.ParentItem = raw[s.parentItem]
	}
	if s.subItem != "" {
		r.SubItem = raw[s.subItem]
	}
	return r, true
}

// NormalizeAll normalizes a batch of raw records, preserving input order.
// Rejected records are dropped, not errors: a row with no grouping key or a
// URL-shaped name is a normal outcome of these exports.
func NormalizeAll(raws []map[string]string, kind SourceKind) []Resource {
	resources := make([]Resource, 0, len(raws))
	for _, raw := range raws {
		r, ok := Normalize(raw, kind)
		if !ok {
			utils.Log.Debugf("skipping %s record: %q", kind, raw[schemaFor(kind).name])
			continue
		}
		resources = append(resources, r)
	}
	return resources
}
