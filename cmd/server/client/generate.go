package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/rpg-forge/internal/api/v1alpha1"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
)

var (
	generateParty      string
	generateDifficulty int
	generateRegion     string
	generateTheme      string
	generateRequest    string
	generateTags       []string
	generateTextOnly   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a balanced encounter",
	Example: `  rpg-forge encounter generate --party Fighter:5,Wizard:5,Cleric:5,Rogue:5 --difficulty 3 \
    --region "Sword Coast" --theme "smugglers"`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateParty, "party", "", "Roster as Class:level pairs, comma separated (required)")
	generateCmd.Flags().IntVar(&generateDifficulty, "difficulty", 3, "1 Easy, 2 Moderate, 3 Challenging, 4 Hard, 5 Deadly")
	generateCmd.Flags().StringVar(&generateRegion, "region", "", "Where the encounter takes place")
	generateCmd.Flags().StringVar(&generateTheme, "theme", "", "Theme or creature type to lean on")
	generateCmd.Flags().StringVar(&generateRequest, "request", "", "Anything else the encounter should include")
	generateCmd.Flags().StringSliceVar(&generateTags, "tags", nil, "Tags to store with the encounter")
	generateCmd.Flags().BoolVar(&generateTextOnly, "text", false, "Print only the encounter text")
	_ = generateCmd.MarkFlagRequired("party")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	party, err := parseParty(generateParty)
	if err != nil {
		return err
	}

	req := &apiv1alpha1.GenerateEncounterRequest{
		PartyMembers:    party,
		Difficulty:      generateDifficulty,
		Region:          generateRegion,
		Theme:           generateTheme,
		SpecificRequest: generateRequest,
		Tags:            generateTags,
	}

	if !generateTextOnly {
		return call(func(ctx context.Context, client apiv1alpha1.EncounterServiceClient) (any, error) {
			return client.GenerateEncounter(ctx, req)
		})
	}

	client, cleanup, err := createEncounterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GenerateEncounter(ctx, req)
	if err != nil {
		return errors.FromGRPCError(err)
	}
	fmt.Fprintln(os.Stderr, "encounter", resp.ID, resp.Outcome)
	fmt.Println(resp.EncounterText)
	return nil
}
