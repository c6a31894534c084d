package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"github.com/trojanworks/resourcehub/internal/utils"
	"github.com/trojanworks/resourcehub/pkg/resource"
	"github.com/trojanworks/resourcehub/pkg/sources"
	"github.com/trojanworks/resourcehub/pkg/webclient"
)

// checkCmd fetches every resource link and reports status and page title,
// for spotting dead or relocated resources in the upstream exports.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check every resource link and report dead ones",
	RunE: func(cmd *cobra.Command, args []string) error {
		concurrency, _ := cmd.Flags().GetInt("concurrency")

		client := httpClient()
		srcs, err := allSources(client)
		if err != nil {
			return err
		}
		resources, err := sources.FetchAll(context.Background(), srcs...)
		if err != nil {
			return err
		}

		p := make(chan resource.Resource, concurrency)
		processGroup := new(sync.WaitGroup)
		processGroup.Add(concurrency)

		var mu sync.Mutex
		dead := 0

		for i := 0; i < concurrency; i++ {
			go func() {
				defer processGroup.Done()
				for r := range p {
					res, err := webclient.Send(context.Background(), client, &webclient.Request{
						Method: "GET",
						URL:    r.Link,
					})
					if err != nil {
						utils.Log.Warnf("DEAD %s (%s): %v", r.Name, r.Link, err)
						mu.Lock()
						dead++
						mu.Unlock()
						continue
					}
					if res.StatusCode >= 400 {
						utils.Log.Warnf("DEAD %s (%s): status %d", r.Name, r.Link, res.StatusCode)
						mu.Lock()
						dead++
						mu.Unlock()
						continue
					}

					title := webclient.PageTitle(res.BodyString)
					utils.Log.Infof("OK %s (%s) [%d] %s", r.Name, r.Link, res.StatusCode, title)
				}
			}()
		}

		checked := 0
		for _, r := range resources {
			if r.Link == "" || r.Link == "#" {
				continue
			}
			checked++
			p <- r
		}
		close(p)
		processGroup.Wait()

		fmt.Printf("Checked %d links, %d dead\n", checked, dead)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().IntP("concurrency", "n", 5, "Number of concurrent link checks")
}
