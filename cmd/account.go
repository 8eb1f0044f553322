package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/lolapi/region"
	"github.com/s0up4200/lolapi/riot"
)

// accountCmd groups the account-v1 lookups
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Look up Riot accounts",
}

var accountPUUIDCmd = &cobra.Command{
	Use:   "puuid <puuid>",
	Short: "Look up an account by PUUID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return fetchAndRender(cmd, accountHost, func(ctx context.Context, p region.Platform) (*riot.Account, error) {
			return client.AccountByPUUID(ctx, p, args[0])
		}, printAccount)
	},
}

var accountRiotIDCmd = &cobra.Command{
	Use:   "riot-id <gameName#tagLine>",
	Short: "Look up an account by Riot ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gameName, tagLine, err := splitRiotID(args[0])
		if err != nil {
			return err
		}
		return fetchAndRender(cmd, accountHost, func(ctx context.Context, p region.Platform) (*riot.Account, error) {
			return client.AccountByRiotID(ctx, p, gameName, tagLine)
		}, printAccount)
	},
}

func init() {
	accountCmd.AddCommand(accountPUUIDCmd)
	accountCmd.AddCommand(accountRiotIDCmd)
}

// splitRiotID splits "gameName#tagLine" at the last '#'.
func splitRiotID(id string) (string, string, error) {
	i := strings.LastIndex(id, "#")
	if i <= 0 || i == len(id)-1 {
		return "", "", fmt.Errorf("invalid Riot ID %q (expected gameName#tagLine)", id)
	}
	return id[:i], id[i+1:], nil
}
