package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kairohq/kairo-agents/core/agent"
)

// LoadProjectSettings reads project settings from a YAML file and
// fills in defaults for the fields orchestration depends on.
func LoadProjectSettings(path string) (agent.ProjectSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return agent.ProjectSettings{}, fmt.Errorf("read project settings: %w", err)
	}

	var settings agent.ProjectSettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return agent.ProjectSettings{}, fmt.Errorf("parse project settings %s: %w", path, err)
	}

	return ApplyDefaults(settings), nil
}

// ApplyDefaults fills the settings fields that have documented
// fallbacks when left unset.
func ApplyDefaults(settings agent.ProjectSettings) agent.ProjectSettings {
	if settings.ProjectType == "" {
		settings.ProjectType = agent.ProjectTypeWebApp
	}
	if settings.OrchestrationMode == "" {
		settings.OrchestrationMode = agent.OrchestrationIntelligent
	}
	return settings
}
