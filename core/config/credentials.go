// Package config loads process-level configuration: provider
// credentials from the environment or the user's credentials file, and
// project settings from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kairohq/kairo-agents/core/providers"
)

var providerEnvKeys = map[providers.ProviderType]string{
	providers.ProviderTypeAnthropic: "ANTHROPIC_API_KEY",
	providers.ProviderTypeOpenAI:    "OPENAI_API_KEY",
	providers.ProviderTypeGoogle:    "GOOGLE_API_KEY",
	providers.ProviderTypeAzure:     "AZURE_OPENAI_API_KEY",
}

const azureEndpointEnv = "AZURE_OPENAI_ENDPOINT"

type credentialsFile struct {
	Credentials map[string]string `yaml:"credentials"`
}

// DefaultCredentialsPath locates the user's credentials file.
func DefaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kairo", "credentials.yaml")
}

// LoadCredentials builds the process-wide default credential bundle.
// Environment variables win over the credentials file; missing entries
// stay empty and surface later as auth errors at call time.
func LoadCredentials() (providers.Credentials, error) {
	fromFile, err := readCredentialsFile(DefaultCredentialsPath())
	if err != nil {
		return providers.Credentials{}, err
	}

	resolve := func(p providers.ProviderType) string {
		if key := os.Getenv(providerEnvKeys[p]); key != "" {
			return key
		}
		return fromFile[string(p)]
	}

	return providers.Credentials{
		Anthropic: resolve(providers.ProviderTypeAnthropic),
		OpenAI:    resolve(providers.ProviderTypeOpenAI),
		Google:    resolve(providers.ProviderTypeGoogle),
		Azure:     resolve(providers.ProviderTypeAzure),
	}, nil
}

// AzureEndpoint returns the Azure OpenAI endpoint, empty when unset.
func AzureEndpoint() string {
	return os.Getenv(azureEndpointEnv)
}

func readCredentialsFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	var file credentialsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse credentials file %s: %w", path, err)
	}

	return file.Credentials, nil
}
