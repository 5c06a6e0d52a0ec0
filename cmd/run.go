// This file implements the run command for single-shot agent execution.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kairohq/kairo-agents/agents"
	"github.com/kairohq/kairo-agents/core/agent"
)

// RunDefaultTimeout bounds a single agent execution.
const RunDefaultTimeout = 2 * time.Minute

var (
	runSettingsPath string
	runModel        string
	runPrompt       string
	runJSON         bool
)

var runCmd = &cobra.Command{
	Use:   "run <agent-id> <message>",
	Short: "Run a single agent request",
	Long: `Run one specialist agent against a message and print its response.

Examples:
  kairo run design-agent "improve the hero section layout"
  kairo run frontend-agent --model claude-3-5-sonnet-20241022 "add a dark mode toggle"
  kairo run content-agent --settings kairo.yaml --json "draft SEO metadata"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runSettingsPath, "settings", "s", "", "Path to a project settings YAML file")
	runCmd.Flags().StringVarP(&runModel, "model", "m", "", "Model identifier override")
	runCmd.Flags().StringVar(&runPrompt, "prompt", "", "Custom instructions appended to the system prompt")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "Output the response as JSON")
}

func runRun(cmd *cobra.Command, args []string) error {
	agentID := args[0]
	message := strings.Join(args[1:], " ")

	if !agents.IsAvailable(agentID) {
		return fmt.Errorf("unknown agent %q; run 'kairo agents' for the list", agentID)
	}

	settings, err := loadSettings(runSettingsPath)
	if err != nil {
		return err
	}
	resolver, err := newResolver()
	if err != nil {
		return err
	}

	// A settings file may not mention the agent; the CLI enables it for
	// the single run so ad-hoc invocations work out of the box.
	if !contains(settings.EnabledAgents, agentID) {
		settings.EnabledAgents = append(settings.EnabledAgents, agentID)
	}

	actx := agent.Context{
		ProjectSettings: settings,
		AgentConfig: agent.Config{
			ID:           agentID,
			Model:        resolveModel(agentID, settings),
			CustomPrompt: runPrompt,
			Enabled:      true,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), RunDefaultTimeout)
	defer cancel()

	runner := agent.NewRunner(resolver, slog.Default())
	resp, err := agents.Execute(ctx, runner, agentID, actx, message)
	if err != nil {
		return err
	}

	if runJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(resp)
	}
	return outputResponse(cmd.OutOrStdout(), resp)
}

// resolveModel picks the model for a run: the explicit flag, then the
// project's per-agent assignment, then empty for resolver defaults.
func resolveModel(agentID string, settings agent.ProjectSettings) string {
	if runModel != "" {
		return runModel
	}
	return settings.AgentModels[agentID]
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

func outputResponse(w io.Writer, resp *agent.Response) error {
	fmt.Fprintln(w, resp.Response)

	if len(resp.ActionItems) > 0 {
		fmt.Fprintf(w, "\n%sAction Items%s\n", colorBold, colorReset)
		for _, item := range resp.ActionItems {
			fmt.Fprintf(w, "  %s[%s]%s %s\n", colorCyan, item.Type, colorReset, item.Description)
		}
	}

	if len(resp.NextSteps) > 0 {
		fmt.Fprintf(w, "\n%sNext Steps%s\n", colorBold, colorReset)
		for _, step := range resp.NextSteps {
			fmt.Fprintf(w, "  - %s\n", step)
		}
	}

	if len(resp.CollaborationRequests) > 0 {
		fmt.Fprintf(w, "\n%sCollaboration Requests%s\n", colorBold, colorReset)
		for _, req := range resp.CollaborationRequests {
			fmt.Fprintf(w, "  %s%s%s (%s): %s\n", colorYellow, req.TargetAgent, colorReset, req.Priority, req.Context)
		}
	}

	return nil
}
