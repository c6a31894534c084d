package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/trojanworks/resourcehub/pkg/resource"
	"github.com/trojanworks/resourcehub/pkg/sources"
	"github.com/weppos/publicsuffix-go/publicsuffix"
)

// statsCmd prints counts per category and per registered link domain.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print statistics about the resources in the configured sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		srcs, err := allSources(httpClient())
		if err != nil {
			return err
		}
		resources, err := sources.FetchAll(context.Background(), srcs...)
		if err != nil {
			return err
		}

		if len(resources) == 0 {
			fmt.Println("No resources found.")
			return nil
		}

		groups := resource.GroupByCategory(resources)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "CATEGORY\tRESOURCES\t")
		for _, g := range groups {
			fmt.Fprintf(w, "%s\t%d\t\n", g.Key, len(g.Items))
		}
		fmt.Fprintln(w, " \t \t")
		fmt.Fprintf(w, "TOTAL\t%d\t\n", len(resources))
		w.Flush()

		domains := countLinkDomains(resources)
		if len(domains) == 0 {
			return nil
		}

		fmt.Println()
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "LINK DOMAIN\tRESOURCES\t")
		for _, d := range domains {
			fmt.Fprintf(w, "%s\t%d\t\n", d.domain, d.count)
		}
		w.Flush()

		return nil
	},
}

type domainCount struct {
	domain string
	count  int
}

// countLinkDomains tallies resources by the registered domain of their
// link. Placeholder and unparsable links are skipped.
func countLinkDomains(resources []resource.Resource) []domainCount {
	counts := make(map[string]int)
	for _, r := range resources {
		if r.Link == "" || r.Link == "#" {
			continue
		}
		u, err := url.Parse(r.Link)
		if err != nil || u.Hostname() == "" {
			continue
		}
		domain, err := publicsuffix.Domain(u.Hostname())
		if err != nil {
			continue
		}
		counts[domain]++
	}

	result := make([]domainCount, 0, len(counts))
	for domain, count := range counts {
		result = append(result, domainCount{domain: domain, count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].count != result[j].count {
			return result[i].count > result[j].count
		}
		return result[i].domain < result[j].domain
	})
	return result
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
