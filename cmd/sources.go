package cmd

import (
	"fmt"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/spf13/viper"
	"github.com/trojanworks/resourcehub/pkg/resource"
	"github.com/trojanworks/resourcehub/pkg/sources"
	"github.com/trojanworks/resourcehub/pkg/sources/csvsource"
	"github.com/trojanworks/resourcehub/pkg/sources/notiondb"
	"github.com/trojanworks/resourcehub/pkg/webclient"
)

// httpClient builds the shared retrying client, honoring --proxy.
func httpClient() *retryablehttp.Client {
	proxy, _ := rootCmd.PersistentFlags().GetString("proxy")
	return webclient.New(proxy)
}

// internalSource is always the campus CSV export.
func internalSource(client *retryablehttp.Client) (sources.Source, error) {
	url := viper.GetString("sources.internal.url")
	if url == "" {
		return nil, fmt.Errorf("sources.internal.url is not configured")
	}
	return csvsource.New("internal", url, resource.Internal, client), nil
}

// externalSource is either a second CSV export or a Notion database,
// depending on sources.external.kind.
func externalSource(client *retryablehttp.Client) (sources.Source, error) {
	switch kind := viper.GetString("sources.external.kind"); kind {
	case "csv":
		url := viper.GetString("sources.external.url")
		if url == "" {
			return nil, fmt.Errorf("sources.external.url is not configured")
		}
		return csvsource.New("external", url, resource.External, client), nil
	case "notion":
		token := viper.GetString("notion.token")
		database := viper.GetString("notion.database")
		if token == "" || database == "" {
			return nil, fmt.Errorf("notion.token and notion.database must be configured")
		}
		filter := viper.GetString("notion.filter")
		return notiondb.New("external", token, database, filter, resource.External, client), nil
	default:
		return nil, fmt.Errorf("unknown sources.external.kind: %s", kind)
	}
}

func allSources(client *retryablehttp.Client) ([]sources.Source, error) {
	internal, err := internalSource(client)
	if err != nil {
		return nil, err
	}
	external, err := externalSource(client)
	if err != nil {
		return nil, err
	}
	return []sources.Source{internal, external}, nil
}
