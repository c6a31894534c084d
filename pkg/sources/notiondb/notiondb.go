// Package notiondb adapts a Notion database to raw records by querying it
// with a provenance filter and flattening the typed property values.
package notiondb

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
	"github.com/trojanworks/resourcehub/pkg/resource"
	"github.com/trojanworks/resourcehub/pkg/sources"
	"github.com/trojanworks/resourcehub/pkg/webclient"
)

const (
	apiBase       = "https://api.notion.com/v1"
	notionVersion = "2022-06-28"
	// The API caps page_size at 100. Follow-up pagination is deliberately
	// not performed; the directory serves the first page only.
	pageSize = 100
)

type Source struct {
	name        string
	token       string
	databaseID  string
	filterValue string
	kind        resource.SourceKind
	client      *retryablehttp.Client
}

// New builds an adapter that queries databaseID for records whose "Type"
// select property equals filterValue (e.g. "External").
func New(name, token, databaseID, filterValue string, kind resource.SourceKind, client *retryablehttp.Client) *Source {
	return &Source{
		name:        name,
		token:       token,
		databaseID:  databaseID,
		filterValue: filterValue,
		kind:        kind,
		client:      client,
	}
}

func (s *Source) Name() string { return s.name }

func (s *Source) Kind() resource.SourceKind { return s.kind }

func (s *Source) Fetch(ctx context.Context) ([]sources.RawRecord, error) {
	body := fmt.Sprintf(
		`{"page_size":%d,"filter":{"property":"Type","select":{"equals":"%s"}}}`,
		pageSize, s.filterValue,
	)

	res, err := webclient.Send(ctx, s.client, &webclient.Request{
		Method: "POST",
		URL:    apiBase + "/databases/" + s.databaseID + "/query",
		Body:   body,
		Headers: []webclient.Header{
			{Name: "Authorization", Value: "Bearer " + s.token},
			{Name: "Notion-Version", Value: notionVersion},
			{Name: "Content-Type", Value: "application/json"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sources.ErrSourceUnavailable, err)
	}
	if res.StatusCode != 200 {
		return nil, fmt.Errorf("%w: unexpected status %d", sources.ErrSourceUnavailable, res.StatusCode)
	}

	return ParseRecords(res.BodyString)
}

// ParseRecords flattens a database query response into raw records keyed by
// property name. Records whose title property is empty are discarded here:
// without a display name the record cannot be keyed downstream.
func ParseRecords(body string) ([]sources.RawRecord, error) {
	results := gjson.Get(body, "results")
	if !results.Exists() {
		return nil, fmt.Errorf("%w: response has no results array", sources.ErrParseFailure)
	}

	var records []sources.RawRecord
	for _, page := range results.Array() {
		record := make(sources.RawRecord)
		hasTitle := false

		page.Get("properties").ForEach(func(key, prop gjson.Result) bool {
			value := propertyValue(prop)
			record[key.Str] = value
			if prop.Get("type").Str == "title" && strings.TrimSpace(value) != "" {
				hasTitle = true
			}
			return true
		})

		if !hasTitle {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// propertyValue extracts a plain string from one typed property value.
// Unknown property types flatten to "".
func propertyValue(prop gjson.Result) string {
	switch prop.Get("type").Str {
	case "title":
		return joinPlainText(prop.Get("title"))
	case "rich_text":
		return joinPlainText(prop.Get("rich_text"))
	case "select":
		return prop.Get("select.name").Str
	case "url":
		return prop.Get("url").Str
	case "date":
		return prop.Get("date.start").Str
	}
	return ""
}

func joinPlainText(fragments gjson.Result) string {
	var b strings.Builder
	for _, fragment := range fragments.Array() {
		b.WriteString(fragment.Get("plain_text").Str)
	}
	return b.String()
}
