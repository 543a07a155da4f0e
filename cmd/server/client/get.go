package client

import (
	"context"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/rpg-forge/internal/api/v1alpha1"
)

var getCmd = &cobra.Command{
	Use:   "get <encounter-id>",
	Short: "Show a stored encounter",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(func(ctx context.Context, client apiv1alpha1.EncounterServiceClient) (any, error) {
			return client.GetEncounter(ctx, &apiv1alpha1.GetEncounterRequest{ID: args[0]})
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <encounter-id>",
	Short: "Delete a stored encounter",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(func(ctx context.Context, client apiv1alpha1.EncounterServiceClient) (any, error) {
			return client.DeleteEncounter(ctx, &apiv1alpha1.DeleteEncounterRequest{ID: args[0]})
		})
	},
}

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored encounters, newest first",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call(func(ctx context.Context, client apiv1alpha1.EncounterServiceClient) (any, error) {
			return client.ListEncounters(ctx, &apiv1alpha1.ListEncountersRequest{Limit: listLimit})
		})
	},
}

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum encounters to return (server default when zero)")
}
