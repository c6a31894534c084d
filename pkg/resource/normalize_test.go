package resource

import "testing"

func TestNormalizeDropsRows(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]string
		kind SourceKind
	}{
		{
			name: "missing category",
			raw:  map[string]string{"Category": "", "Name": "Bad Row"},
			kind: Internal,
		},
		{
			name: "missing name",
			raw:  map[string]string{"Category": "Funding", "Name": ""},
			kind: Internal,
		},
		{
			name: "url in name field",
			raw:  map[string]string{"Category": "Funding", "Name": "www.spam.com", "Description": "x"},
			kind: Internal,
		},
		{
			name: "http in name",
			raw:  map[string]string{"Category": "Funding", "Name": "see https://grants.example"},
			kind: Internal,
		},
		{
			name: "edu domain in name",
			raw:  map[string]string{"Category": "Funding", "Name": "apply.usc.edu startup fund"},
			kind: Internal,
		},
		{
			name: "missing resource type on external source",
			raw:  map[string]string{"Resource Type": "", "Name": "Acme Grant"},
			kind: External,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Normalize(tt.raw, tt.kind); ok {
				t.Fatalf("expected record to be dropped")
			}
		})
	}
}

func TestNormalizeInternalSchema(t *testing.T) {
	raw := map[string]string{
		"Category":        "Funding",
		"Name":            "Acme Grant",
		"Description":     "desc",
		"Link":            "https://grants.example/acme",
		"Eligibility":     "Students",
		"Important Dates": "March 1",
		"Stage":           "Idea",
		"Parent item":     "Grants",
		"Sub-item":        "Seed",
	}

	r, ok := Normalize(raw, Internal)
	if !ok {
		t.Fatal("expected record to normalize")
	}
	if r.Name != "Acme Grant" || r.Category != "Funding" || r.Type != Internal {
		t.Fatalf("unexpected canonical fields: %+v", r)
	}
	if r.Eligibility != "Students" || r.ImportantDates != "March 1" || r.Stage != "Idea" {
		t.Fatalf("optional fields not carried through: %+v", r)
	}
	if r.ParentItem != "Grants" || r.SubItem != "Seed" {
		t.Fatalf("hierarchy fields not carried through: %+v", r)
	}
}

func TestNormalizeExternalSchema(t *testing.T) {
	raw := map[string]string{
		"Resource Type": "Accelerators",
		"Name":          "Beta Fund",
		"Description":   "grant program",
	}

	r, ok := Normalize(raw, External)
	if !ok {
		t.Fatal("expected record to normalize")
	}
	if r.Category != "Accelerators" {
		t.Fatalf("expected Resource Type to map to category, got %q", r.Category)
	}
	if r.Type != External {
		t.Fatalf("expected external provenance, got %q", r.Type)
	}
	if r.Link != "#" {
		t.Fatalf("expected missing link to default to #, got %q", r.Link)
	}
}

func TestNormalizeAllScenario(t *testing.T) {
	raws := []map[string]string{
		{"Category": "Funding", "Name": "Acme Grant", "Description": "desc"},
		{"Category": "", "Name": "Bad Row"},
		{"Category": "Funding", "Name": "www.spam.com", "Description": "x"},
	}

	resources := NormalizeAll(raws, Internal)
	if len(resources) != 1 {
		t.Fatalf("expected 1 resource, got %d: %v", len(resources), resources)
	}
	if resources[0].Name != "Acme Grant" {
		t.Fatalf("expected Acme Grant, got %q", resources[0].Name)
	}

	groups := GroupByCategory(resources)
	if len(groups) != 1 || groups[0].Key != "Funding" || len(groups[0].Items) != 1 {
		t.Fatalf("expected one Funding group with one item, got %v", groups)
	}
}

func TestNormalizeAllPreservesOrder(t *testing.T) {
	raws := []map[string]string{
		{"Category": "A", "Name": "First"},
		{"Category": "B", "Name": "Second"},
		{"Category": "A", "Name": "Third"},
	}

	resources := NormalizeAll(raws, Internal)
	if len(resources) != 3 {
		t.Fatalf("expected 3 resources, got %d", len(resources))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if resources[i].Name != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, resources[i].Name)
		}
	}
}

func TestNoNormalizedNameLooksLikeURL(t *testing.T) {
	raws := []map[string]string{
		{"Category": "A", "Name": "Fine Name"},
		{"Category": "A", "Name": "startups.com guide"},
		{"Category": "A", "Name": "WWW.LOUD.NET"},
		{"Category": "A", "Name": "nonprofit .org helper"},
		{"Category": "A", "Name": "Another Fine Name"},
	}

	for _, r := range NormalizeAll(raws, Internal) {
		if nameLooksLikeURL(r.Name) {
			t.Fatalf("normalized output contains URL-like name %q", r.Name)
		}
	}
}
