package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// storesCmd represents the stores command
var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "List stores near a zip code",
	Long:  "Looks up store locations near a postal code so you can pick a location ID for the process command.",
	Run: func(cmd *cobra.Command, args []string) {
		zip, _ := cmd.Flags().GetString("zip")
		if zip == "" {
			log.Fatal("Please provide a zip code (-z flag)")
		}

		cfg := loadConfig()
		catalog := newCatalog(cfg)

		stores, err := catalog.FindStores(context.Background(), zip)
		if err != nil {
			log.Fatalf("Failed to look up stores: %v", err)
		}
		if len(stores) == 0 {
			fmt.Printf("No stores found near %s\n", zip)
			return
		}

		for _, store := range stores {
			fmt.Printf("%s  %s  %s\n", store.LocationID, store.Name, store.Address)
		}
	},
}

func init() {
	rootCmd.AddCommand(storesCmd)
	storesCmd.Flags().StringP("zip", "z", "", "Zip code to search near")
}
