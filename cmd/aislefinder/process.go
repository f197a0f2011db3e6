package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aislefinder/backend/internal/usecase"
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Resolve a grocery list file into a shopping route",
	Long: `Reads a grocery list (one item per line, list markup allowed),
resolves each item against the store catalog, and prints the route
grouped by aisle or category.`,
	Run: func(cmd *cobra.Command, args []string) {
		filePath, _ := cmd.Flags().GetString("file")
		format, _ := cmd.Flags().GetString("format")
		locationID, _ := cmd.Flags().GetString("location")

		if filePath == "" {
			log.Fatal("Please provide a grocery list file (-f flag)")
		}

		mode, err := usecase.ParseRouteMode(format)
		if err != nil {
			log.Fatalf("Bad output format: %v", err)
		}

		file, err := os.Open(filePath)
		if err != nil {
			log.Fatalf("Failed to open %s: %v", filePath, err)
		}
		defer file.Close()

		items, err := usecase.ParseList(file)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", filePath, err)
		}
		if len(items) == 0 {
			log.Fatalf("No items found in %s", filePath)
		}

		cfg := loadConfig()
		catalog := newCatalog(cfg)
		resolver := newResolver(cfg, catalog)

		resolved, err := resolver.ResolveAt(context.Background(), items, locationID)
		if err != nil {
			log.Fatalf("Failed to resolve list: %v", err)
		}

		fmt.Print(usecase.FormatRoute(resolved, mode))
	},
}

func init() {
	rootCmd.AddCommand(processCmd)
	processCmd.Flags().StringP("file", "f", "", "Grocery list file, one item per line")
	processCmd.Flags().StringP("format", "o", "", "Output format: aisle or category (default aisle)")
	processCmd.Flags().StringP("location", "s", "", "Store location ID (overrides configuration)")
}
