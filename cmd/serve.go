package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trojanworks/resourcehub/internal/server"
	"github.com/trojanworks/resourcehub/pkg/favorites"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the resource directory API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := httpClient()
		internal, err := internalSource(client)
		if err != nil {
			return err
		}
		external, err := externalSource(client)
		if err != nil {
			return err
		}

		db, err := favorites.Open(viper.GetString("favorites.dbpath"))
		if err != nil {
			return err
		}
		defer db.Close()

		listenAddr, _ := cmd.Flags().GetString("listen")
		if listenAddr == "" {
			listenAddr = viper.GetString("server.listen")
		}

		srv := server.New(
			internal,
			external,
			favorites.NewOverlay(db),
			viper.GetString("server.username"),
			viper.GetString("server.password"),
		)
		return srv.Start(listenAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", "", "HTTP listen address (default from config, :8080)")
}
