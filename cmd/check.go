package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/s0up4200/lolapi/riot"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the API key against the platform status endpoint",
	Long: `Call the status endpoint of the target platform to confirm that the
configured API key is accepted and the platform is reachable.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, err := targetPlatform()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Checking API key against %s (%s)...\n", p, p.Routing())

	status, err := call(cmd.Context(), platformHost(p), func(ctx context.Context) (*riot.PlatformData, error) {
		return client.PlatformStatus(ctx, p)
	})
	switch {
	case riot.IsUnauthorized(err):
		return fmt.Errorf("API key rejected: %w", err)
	case err != nil:
		return fmt.Errorf("platform unavailable: %w", err)
	}

	fmt.Fprintln(out, "✓ API key accepted")
	return render(out, status, func(w io.Writer) { printStatus(w, status) })
}
