package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var healthJSON bool

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the recommendation service",
	Long:  "Queries the health endpoint of the configured recommendation service.",
	Args:  cobra.NoArgs,
	RunE:  runHealth,
}

func init() {
	healthCmd.Flags().BoolVar(&healthJSON, "json", false, "Print the raw health response as JSON")
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, _ []string) error {
	client, err := newRecommenderClient(nil)
	if err != nil {
		return err
	}

	status, err := client.Health(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if healthJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(status)
	}

	fmt.Fprintf(out, "%s: %s", client.BaseURL(), status.Status)
	if status.Version != "" {
		fmt.Fprintf(out, " (version %s)", status.Version)
	}
	fmt.Fprintln(out)
	return nil
}
