package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jonathan/outfit-curator/internal/fixtures"
	"github.com/spf13/cobra"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Print the sample inventory",
	Long:  "Prints the sample clothing inventory the form is pre-filled with, as a JSON array.",
	Args:  cobra.NoArgs,
	RunE:  runInventory,
}

func init() {
	rootCmd.AddCommand(inventoryCmd)
}

func runInventory(cmd *cobra.Command, _ []string) error {
	text, err := fixtures.InventoryJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

// readInventory returns the inventory text from path, stdin for "-", or the
// sample inventory when path is empty.
func readInventory(cmd *cobra.Command, path string) (string, error) {
	switch path {
	case "":
		return fixtures.InventoryJSON()
	case "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read inventory from stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read inventory file %s: %w", path, err)
		}
		return string(data), nil
	}
}

// strictInventory reports whether schema validation applies to a command run.
func strictInventory(cmd *cobra.Command, flagValue bool) bool {
	if cmd.Flags().Changed("strict") {
		return flagValue
	}
	return appConfig.Form.StrictInventory
}
