// Package cmd provides CLI commands for the Kairo application.
// This file implements the agents command for listing the registry.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kairohq/kairo-agents/agents"
)

var agentsJSON bool

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List the available specialist agents",
	RunE:  runAgents,
}

func init() {
	rootCmd.AddCommand(agentsCmd)

	agentsCmd.Flags().BoolVar(&agentsJSON, "json", false, "Output as JSON")
}

type agentOutput struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

func runAgents(cmd *cobra.Command, args []string) error {
	ids := agents.ListAvailable()

	if agentsJSON {
		out := make([]agentOutput, 0, len(ids))
		for _, id := range ids {
			out = append(out, agentOutput{ID: id, Description: agents.Describe(id)})
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	return outputAgentList(cmd.OutOrStdout(), ids)
}

func outputAgentList(w io.Writer, ids []string) error {
	for _, id := range ids {
		fmt.Fprintf(w, "%-20s %s\n", id, agents.Describe(id))
	}
	return nil
}
