// This file implements the health command for provider readiness checks.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kairohq/kairo-agents/core/providers"
)

var healthJSON bool

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Report which providers have usable credentials",
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)

	healthCmd.Flags().BoolVar(&healthJSON, "json", false, "Output as JSON")
}

func runHealth(cmd *cobra.Command, args []string) error {
	resolver, err := newResolver()
	if err != nil {
		return err
	}

	health := resolver.HealthCheck(providers.Credentials{})

	if healthJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(health)
	}

	w := cmd.OutOrStdout()
	outputProviderStatus(w, "anthropic", health.Anthropic)
	outputProviderStatus(w, "google", health.Google)
	outputProviderStatus(w, "azure", health.Azure)
	return nil
}

func outputProviderStatus(w io.Writer, name string, healthy bool) {
	if healthy {
		fmt.Fprintf(w, "%-12s %sok%s\n", name, colorGreen, colorReset)
		return
	}
	fmt.Fprintf(w, "%-12s %sno credentials%s\n", name, colorGray, colorReset)
}
