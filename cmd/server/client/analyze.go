package client

import (
	"context"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/rpg-forge/internal/api/v1alpha1"
)

var (
	analyzeParty      string
	analyzeDifficulty int
)

var analyzeCmd = &cobra.Command{
	Use:     "analyze",
	Short:   "Show the XP budget and composition hints for a party",
	Example: `  rpg-forge encounter analyze --party Rogue:3,Wizard:3`,
	RunE: func(_ *cobra.Command, _ []string) error {
		party, err := parseParty(analyzeParty)
		if err != nil {
			return err
		}
		return call(func(ctx context.Context, client apiv1alpha1.EncounterServiceClient) (any, error) {
			return client.AnalyzeParty(ctx, &apiv1alpha1.AnalyzePartyRequest{
				PartyMembers: party,
				Difficulty:   analyzeDifficulty,
			})
		})
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeParty, "party", "", "Roster as Class:level pairs, comma separated (required)")
	analyzeCmd.Flags().IntVar(&analyzeDifficulty, "difficulty", 0, "Tier to size the target range for (Challenging when zero)")
	_ = analyzeCmd.MarkFlagRequired("party")
}
