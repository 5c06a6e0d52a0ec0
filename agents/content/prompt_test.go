package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairohq/kairo-agents/core/agent"
)

func TestSpec(t *testing.T) {
	spec := Spec()

	require.Equal(t, "content-agent", spec.ID)
	require.NotEmpty(t, spec.BasePrompt)
	assert.Contains(t, spec.Keywords, "cms")
}

func TestContextualPromptIncludesCMSInstance(t *testing.T) {
	got := ContextualPrompt(agent.ProjectSettings{
		ProjectType:     agent.ProjectTypeWebApp,
		CMSInstanceGUID: "abc-123",
	})

	assert.Contains(t, got, "## Agility CMS Configuration")
	assert.Contains(t, got, "Instance GUID: abc-123")
	assert.Contains(t, got, "## Web App Content Focus")
}

func TestContextualPromptWithoutCMSInstance(t *testing.T) {
	got := ContextualPrompt(agent.ProjectSettings{ProjectType: agent.ProjectTypeMobileApp})

	assert.NotContains(t, got, "Agility CMS Configuration")
	assert.Contains(t, got, "## Mobile App Content Focus")
}
