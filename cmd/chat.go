// This file implements the chat command, which streams a coordinated
// orchestration response to the terminal.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kairohq/kairo-agents/core/orchestrator"
	"github.com/kairohq/kairo-agents/core/providers"
)

// ChatDefaultTimeout bounds one orchestration turn.
const ChatDefaultTimeout = 5 * time.Minute

var chatSettingsPath string

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Ask the orchestration agent to coordinate a response",
	Long: `Send a message to the Main Orchestration Agent, which plans which
specialist agents should handle the request and streams its answer.

Examples:
  kairo chat "redesign the landing page and make it load faster"
  kairo chat --settings kairo.yaml "add localized pricing pages"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringVarP(&chatSettingsPath, "settings", "s", "", "Path to a project settings YAML file")
}

func runChat(cmd *cobra.Command, args []string) error {
	message := strings.Join(args, " ")

	settings, err := loadSettings(chatSettingsPath)
	if err != nil {
		return err
	}
	resolver, err := newResolver()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), ChatDefaultTimeout)
	defer cancel()

	out := cmd.OutOrStdout()
	o := orchestrator.New(resolver, slog.Default())

	err = o.Stream(ctx, settings, []providers.Message{
		{Role: providers.RoleUser, Content: message},
	}, func(chunk *providers.StreamChunk) error {
		if chunk.Type == providers.ChunkTypeText {
			fmt.Fprint(out, chunk.Text)
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	return nil
}
