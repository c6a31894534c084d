package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trojanworks/resourcehub/pkg/favorites"
)

// favCmd represents the favorites command group.
var favCmd = &cobra.Command{
	Use:   "fav",
	Short: "Manage the favorite resources set",
}

func openOverlay() (*favorites.Overlay, *favorites.DB, error) {
	db, err := favorites.Open(viper.GetString("favorites.dbpath"))
	if err != nil {
		return nil, nil, err
	}
	return favorites.NewOverlay(db), db, nil
}

var favListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print favorite resource names in insertion order",
	RunE: func(cmd *cobra.Command, args []string) error {
		overlay, db, err := openOverlay()
		if err != nil {
			return err
		}
		defer db.Close()

		names, err := overlay.Names(context.Background())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var favToggleCmd = &cobra.Command{
	Use:   "toggle <name>",
	Short: "Toggle a resource in or out of the favorites set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		overlay, db, err := openOverlay()
		if err != nil {
			return err
		}
		defer db.Close()

		fav, err := overlay.Toggle(context.Background(), args[0])
		if err != nil {
			return err
		}
		if fav {
			fmt.Printf("Added %q to favorites\n", args[0])
		} else {
			fmt.Printf("Removed %q from favorites\n", args[0])
		}
		return nil
	},
}

var favClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every favorite",
	RunE: func(cmd *cobra.Command, args []string) error {
		overlay, db, err := openOverlay()
		if err != nil {
			return err
		}
		defer db.Close()

		names, err := overlay.Names(context.Background())
		if err != nil {
			return err
		}
		if err := db.Write(context.Background(), nil); err != nil {
			return err
		}
		fmt.Printf("Removed %d favorites\n", len(names))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(favCmd)
	favCmd.AddCommand(favListCmd)
	favCmd.AddCommand(favToggleCmd)
	favCmd.AddCommand(favClearCmd)
}
