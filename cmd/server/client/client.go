// Package client provides commands that call a running rpg-forge server over gRPC
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	apiv1alpha1 "github.com/KirkDiggler/rpg-forge/internal/api/v1alpha1"
	"github.com/KirkDiggler/rpg-forge/internal/errors"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// EncounterCmd is the root command for all client commands
var EncounterCmd = &cobra.Command{
	Use:   "encounter",
	Short: "Call the encounter service",
	Long:  `Encounter commands make real gRPC requests against a running rpg-forge server.`,
}

func init() {
	EncounterCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	EncounterCmd.PersistentFlags().DurationVar(&timeout, "timeout", 3*time.Minute, "Request timeout")

	EncounterCmd.AddCommand(generateCmd)
	EncounterCmd.AddCommand(getCmd)
	EncounterCmd.AddCommand(listCmd)
	EncounterCmd.AddCommand(deleteCmd)
	EncounterCmd.AddCommand(analyzeCmd)
}

// createEncounterClient creates an encounter service client
func createEncounterClient() (apiv1alpha1.EncounterServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return apiv1alpha1.NewEncounterServiceClient(conn), cleanup, nil
}

// call runs fn against a fresh client with the request timeout applied
func call(fn func(ctx context.Context, client apiv1alpha1.EncounterServiceClient) (any, error)) error {
	client, cleanup, err := createEncounterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := fn(ctx, client)
	if err != nil {
		return errors.FromGRPCError(err)
	}
	return printJSON(resp)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseParty reads a roster written as "Fighter:5,Wizard:5,Cleric:4"
func parseParty(raw string) ([]apiv1alpha1.PartyMember, error) {
	var party []apiv1alpha1.PartyMember
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		className, levelText, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, errors.InvalidArgumentf("party member %q must look like Class:level", entry)
		}
		level, err := strconv.Atoi(strings.TrimSpace(levelText))
		if err != nil {
			return nil, errors.InvalidArgumentf("party member %q has a non-numeric level", entry)
		}
		party = append(party, apiv1alpha1.PartyMember{
			ClassName: strings.TrimSpace(className),
			Level:     level,
		})
	}
	if len(party) == 0 {
		return nil, errors.InvalidArgument("party is required")
	}
	return party, nil
}
