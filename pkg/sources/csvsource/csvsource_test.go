package csvsource

import (
	"errors"
	"strings"
	"testing"

	"github.com/trojanworks/resourcehub/pkg/sources"
)

func TestParseHeaderMapping(t *testing.T) {
	doc := "Category,Name,Description,Link\n" +
		"Funding,Acme Grant,desc,https://grants.example/acme\n" +
		"Mentorship,Mentor Match,advice,\n"

	records, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["Name"] != "Acme Grant" || records[0]["Category"] != "Funding" {
		t.Fatalf("unexpected first record: %v", records[0])
	}
	if records[1]["Link"] != "" {
		t.Fatalf("empty cell must map to empty string, got %q", records[1]["Link"])
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	doc := "Category,Name\n\nFunding,Acme Grant\n\n\nFunding,Beta Fund\n"

	records, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestParseStripsBOM(t *testing.T) {
	doc := "\ufeffCategory,Name\nFunding,Acme Grant\n"

	records, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if records[0]["Category"] != "Funding" {
		t.Fatalf("BOM not stripped from header, record: %v", records[0])
	}
}

func TestParseColumnMismatchFailsWholeParse(t *testing.T) {
	doc := "Category,Name\nFunding,Acme Grant\nFunding,Beta Fund,extra\n"

	_, err := Parse(strings.NewReader(doc))
	if err == nil {
		t.Fatal("expected whole-document parse failure")
	}
	if !errors.Is(err, sources.ErrParseFailure) {
		t.Fatalf("expected ErrParseFailure, got %v", err)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	records, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %v", records)
	}
}
