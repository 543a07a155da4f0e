// Package main is the entry point for the rpg-forge server and its client commands
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-forge/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-forge",
	Short: "Balanced D&D 5e encounter generation",
	Long: `rpg-forge generates combat encounters with a language model, checks them against the
5e XP budget for the party, and regenerates them until they balance.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.EncounterCmd)
}
