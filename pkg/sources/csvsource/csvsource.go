// Package csvsource adapts a hosted CSV export (header row + data rows)
// into raw records.
package csvsource

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/trojanworks/resourcehub/pkg/resource"
	"github.com/trojanworks/resourcehub/pkg/sources"
	"github.com/trojanworks/resourcehub/pkg/webclient"
)

type Source struct {
	name   string
	url    string
	kind   resource.SourceKind
	client *retryablehttp.Client
}

func New(name, url string, kind resource.SourceKind, client *retryablehttp.Client) *Source {
	return &Source{name: name, url: url, kind: kind, client: client}
}

func (s *Source) Name() string { return s.name }

func (s *Source) Kind() resource.SourceKind { return s.kind }

// Fetch downloads the export and parses the whole document. A transport
// error or non-200 status is a source failure; a malformed document is a
// parse failure. Either way the request fails as a unit, matching the
// upstream exporter's all-or-nothing behavior.
func (s *Source) Fetch(ctx context.Context) ([]sources.RawRecord, error) {
	res, err := webclient.Send(ctx, s.client, &webclient.Request{
		Method: "GET",
		URL:    s.url,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sources.ErrSourceUnavailable, err)
	}
	if res.StatusCode != 200 {
		return nil, fmt.Errorf("%w: unexpected status %d", sources.ErrSourceUnavailable, res.StatusCode)
	}
	return Parse(strings.NewReader(res.BodyString))
}

// Parse reads a CSV document with a header row into raw records. Blank
// lines are skipped by the reader; a column-count mismatch fails the whole
// parse rather than dropping the row.
func Parse(r io.Reader) ([]sources.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sources.ErrParseFailure, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var records []sources.RawRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", sources.ErrParseFailure, err)
		}

		record := make(sources.RawRecord, len(header))
		for i, col := range header {
			record[col] = row[i]
		}
		records = append(records, record)
	}
	return records, nil
}
