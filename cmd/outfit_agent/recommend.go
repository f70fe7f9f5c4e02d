package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jonathan/outfit-curator/internal/form"
	"github.com/jonathan/outfit-curator/internal/rendering"
	"github.com/jonathan/outfit-curator/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Request outfit recommendations",
	Long: `Sends an inventory, occasion and weather to the recommendation service and prints the outfits.

The inventory defaults to the sample inventory; use --inventory to read a JSON array from a file or "-" for stdin.`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

var (
	recommendOccasion         string
	recommendWeather          string
	recommendMaxOutfits       string
	recommendConsiderPrevious bool
	recommendInventoryFile    string
	recommendStrict           bool
	recommendJSON             bool
)

func init() {
	recommendCmd.Flags().StringVar(&recommendOccasion, "occasion", string(types.OccasionCasual), "Occasion type (casual, business_casual, formal, sporty, evening, beach, party)")
	recommendCmd.Flags().StringVar(&recommendWeather, "weather", string(types.WeatherMild), "Weather (mild, warm, hot, cool, cold, rainy, snowy)")
	recommendCmd.Flags().StringVar(&recommendMaxOutfits, "max-outfits", strconv.Itoa(form.DefaultMaxOutfits), "Maximum number of outfits to request")
	recommendCmd.Flags().BoolVar(&recommendConsiderPrevious, "consider-previous", true, "Ask the service to consider previously worn outfits")
	recommendCmd.Flags().StringVarP(&recommendInventoryFile, "inventory", "i", "", `Path to inventory JSON array, or "-" for stdin (default: sample inventory)`)
	recommendCmd.Flags().BoolVar(&recommendStrict, "strict", false, "Validate inventory items against the inventory schema")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "Print the result as JSON")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	inventoryText, err := readInventory(cmd, recommendInventoryFile)
	if err != nil {
		return err
	}

	state := form.State{
		OccasionType:     recommendOccasion,
		Weather:          recommendWeather,
		MaxOutfits:       recommendMaxOutfits,
		ConsiderPrevious: recommendConsiderPrevious,
		InventoryText:    inventoryText,
	}

	result, submitErr := recommend(cmd, state)
	if err := printResult(cmd, result); err != nil {
		return err
	}
	return submitErr
}

// recommend builds the request and calls the service once. The returned
// result always describes the outcome, including failures.
func recommend(cmd *cobra.Command, state form.State) (*rendering.Result, error) {
	req, err := form.BuildRequest(state, &form.Options{StrictInventory: strictInventory(cmd, recommendStrict)})
	if err != nil {
		return rendering.ErrorResult(err), err
	}

	client, err := newRecommenderClient(nil)
	if err != nil {
		return rendering.ErrorResult(err), err
	}

	appLogger.Debug("requesting recommendations",
		zap.String("base_url", client.BaseURL()),
		zap.String("occasion", state.OccasionType),
		zap.String("weather", state.Weather),
		zap.Int("max_outfits", req.MaxOutfits),
		zap.Int("inventory_items", len(req.Inventory)),
	)

	outfits, err := client.Recommend(cmd.Context(), req)
	if err != nil {
		return rendering.ErrorResult(err), err
	}
	return rendering.RenderOutfits(outfits), nil
}

func printResult(cmd *cobra.Command, result *rendering.Result) error {
	out := cmd.OutOrStdout()

	if recommendJSON {
		encoder := json.NewEncoder(out)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	}

	text, err := rendering.RenderText(result)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, text)
	return err
}
