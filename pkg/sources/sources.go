// Package sources defines the adapter contract every upstream resource
// source implements, and the fan-out fetch that merges them.
package sources

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/trojanworks/resourcehub/pkg/resource"
)

// RawRecord is one upstream row or record as a field-name to field-value
// mapping, using the source's own key names. Values may be empty.
type RawRecord map[string]string

var (
	// ErrSourceUnavailable covers network and transport failures fetching
	// raw data from one source.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrParseFailure covers a malformed upstream payload. The whole batch
	// fails: per-row recovery is deliberately not attempted.
	ErrParseFailure = errors.New("malformed source payload")
)

// Source adapts one upstream system into an ordered sequence of raw
// field-mappings.
type Source interface {
	Name() string
	Kind() resource.SourceKind
	Fetch(ctx context.Context) ([]RawRecord, error)
}

// FetchNormalized fetches one source and normalizes its records, preserving
// upstream row order.
func FetchNormalized(ctx context.Context, src Source) ([]resource.Resource, error) {
	raws, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", src.Name(), err)
	}
	rawMaps := make([]map[string]string, len(raws))
	for i, r := range raws {
		rawMaps[i] = r
	}
	return resource.NormalizeAll(rawMaps, src.Kind()), nil
}

// FetchAll fetches every source concurrently and concatenates the
// normalized results in the order the sources were given. There is no
// partial merge: if any source fails, the whole fetch fails with that
// source's error.
func FetchAll(ctx context.Context, srcs ...Source) ([]resource.Resource, error) {
	results := make([][]resource.Resource, len(srcs))
	errs := make([]error, len(srcs))

	var wg sync.WaitGroup
	for i, src := range srcs {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			results[i], errs[i] = FetchNormalized(ctx, src)
		}(i, src)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	var all []resource.Resource
	for _, rs := range results {
		all = append(all, rs...)
	}
	return all, nil
}
