package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/outfit-curator/internal/fixtures"
	"github.com/jonathan/outfit-curator/internal/form"
	"github.com/jonathan/outfit-curator/internal/types"
	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter an inventory for an occasion",
	Long:  "Asks the recommendation service which inventory items suit the occasion and weather, and prints them as a JSON array.",
	Args:  cobra.NoArgs,
	RunE:  runFilter,
}

var (
	filterOccasion      string
	filterWeather       string
	filterInventoryFile string
	filterStrict        bool
)

func init() {
	filterCmd.Flags().StringVar(&filterOccasion, "occasion", string(types.OccasionCasual), "Occasion type")
	filterCmd.Flags().StringVar(&filterWeather, "weather", string(types.WeatherMild), "Weather")
	filterCmd.Flags().StringVarP(&filterInventoryFile, "inventory", "i", "", `Path to inventory JSON array, or "-" for stdin (default: sample inventory)`)
	filterCmd.Flags().BoolVar(&filterStrict, "strict", false, "Validate inventory items against the inventory schema")

	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, _ []string) error {
	text, err := readInventory(cmd, filterInventoryFile)
	if err != nil {
		return err
	}

	inventory, err := form.ParseInventory(text, strictInventory(cmd, filterStrict))
	if err != nil {
		return err
	}

	client, err := newRecommenderClient(nil)
	if err != nil {
		return err
	}

	items, err := client.FilterInventory(cmd.Context(), &types.FilterInventoryRequest{
		Inventory: inventory,
		UserInfo:  fixtures.DemoUser(),
		Occasion:  fixtures.Occasion(types.OccasionType(filterOccasion), types.WeatherType(filterWeather)),
	})
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(items); err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}
	return nil
}
