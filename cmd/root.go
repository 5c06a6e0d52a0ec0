package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kairohq/kairo-agents/core/agent"
	"github.com/kairohq/kairo-agents/core/config"
	"github.com/kairohq/kairo-agents/core/providers"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   "kairo",
	Short: "Kairo - A multi-agent development platform",
	Long:  `Kairo coordinates specialized AI agents to help you build and improve your projects.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if rootVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")
}

func Execute() error {
	return rootCmd.Execute()
}

// newResolver builds the process resolver from environment and
// credentials-file defaults.
func newResolver() (*providers.Resolver, error) {
	creds, err := config.LoadCredentials()
	if err != nil {
		return nil, err
	}
	return providers.NewResolver(providers.Config{
		Defaults:      creds,
		AzureEndpoint: config.AzureEndpoint(),
		Models:        providers.DefaultModelTable(),
	}), nil
}

// loadSettings reads project settings from path, or returns defaults
// when no path was given.
func loadSettings(path string) (agent.ProjectSettings, error) {
	if path == "" {
		return config.ApplyDefaults(agent.ProjectSettings{}), nil
	}
	return config.LoadProjectSettings(path)
}
