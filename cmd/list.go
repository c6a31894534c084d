package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trojanworks/resourcehub/pkg/query"
	"github.com/trojanworks/resourcehub/pkg/resource"
	"github.com/trojanworks/resourcehub/pkg/sources"
)

// listCmd fetches and prints normalized resources.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetch and print resources from the configured sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceName, _ := cmd.Flags().GetString("source")
		outputFlags, _ := cmd.Flags().GetString("output")
		delimiter, _ := cmd.Flags().GetString("delimiter")
		q, _ := cmd.Flags().GetString("query")
		category, _ := cmd.Flags().GetString("category")
		typeFilter, _ := cmd.Flags().GetString("type")

		client := httpClient()
		ctx := context.Background()

		var resources []resource.Resource
		switch sourceName {
		case "internal":
			src, err := internalSource(client)
			if err != nil {
				return err
			}
			resources, err = sources.FetchNormalized(ctx, src)
			if err != nil {
				return err
			}
		case "external":
			src, err := externalSource(client)
			if err != nil {
				return err
			}
			resources, err = sources.FetchNormalized(ctx, src)
			if err != nil {
				return err
			}
		case "all":
			srcs, err := allSources(client)
			if err != nil {
				return err
			}
			resources, err = sources.FetchAll(ctx, srcs...)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("invalid source: %s (expected internal, external or all)", sourceName)
		}

		resources = query.Filter(resources, query.Params{
			Query:    q,
			Category: category,
			Type:     typeFilter,
		})

		resource.PrintResources(resources, outputFlags, delimiter)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("source", "s", "all", "Source to fetch: internal, external or all")
	listCmd.Flags().StringP("output", "o", "nc", "Fields to print: n (name), d (description), c (category), l (link), t (type)")
	listCmd.Flags().StringP("delimiter", "d", ", ", "Field delimiter")
	listCmd.Flags().StringP("query", "q", "", "Case-insensitive text filter on name and description")
	listCmd.Flags().StringP("category", "c", query.All, "Category filter (\"all\" for no filter)")
	listCmd.Flags().StringP("type", "t", query.All, "Provenance type filter: internal, external or \"all\"")
}
