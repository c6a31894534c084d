// Package resource defines the canonical resource record shared by every
// source adapter and view, plus normalization and grouping over it.
package resource

import (
	"fmt"
	"log"
	"strings"
)

// SourceKind tags a resource with the source that produced it. It is
// assigned at normalization time and never present in upstream data.
type SourceKind string

const (
	Internal SourceKind = "internal"
	External SourceKind = "external"
)

// Resource is the canonical record used uniformly across the system
// regardless of which upstream source produced it.
//
// Name doubles as the identity key for favorites and keyed iteration.
// Uniqueness is not enforced upstream, so duplicate names collapse under
// any identity-keyed operation.
type Resource struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Link        string     `json:"link"`
	Category    string     `json:"category"`
	Type        SourceKind `json:"type"`

	// Optional descriptive fields, carried through opaquely when the
	// upstream source provides them.
	Eligibility    string `json:"eligibility,omitempty"`
	ImportantDates string `json:"importantDates,omitempty"`
	Stage          string `json:"stage,omitempty"`
	ParentItem     string `json:"parentItem,omitempty"`
	SubItem        string `json:"subItem,omitempty"`
}

// Group is an ordered set of resources sharing one grouping key.
type Group struct {
	Key   string     `json:"key"`
	Items []Resource `json:"items"`
}

// PrintResources prints resources one per line, with the fields selected by
// outputFlags joined by delimiter. Valid flags: n (name), d (description),
// c (category), l (link), t (type).
func PrintResources(resources []Resource, outputFlags string, delimiter string) {
	lines := ""
	for _, r := range resources {
		line := createLine(r, outputFlags, delimiter)
		if len(line) > 0 {
			lines += line + "\n"
		}
	}

	lines = strings.TrimSuffix(lines, "\n")

	if len(lines) > 0 {
		fmt.Println(lines)
	}
}

func createLine(r Resource, outputFlags, delimiter string) string {
	var line string
	for _, f := range outputFlags {
		switch f {
		case 'n':
			line += r.Name + delimiter
		case 'd':
			line += r.Description + delimiter
		case 'c':
			line += r.Category + delimiter
		case 'l':
			line += r.Link + delimiter
		case 't':
			line += string(r.Type) + delimiter
		default:
			log.Fatal("Invalid print flag")
		}
	}
	return strings.TrimSuffix(line, delimiter)
}
