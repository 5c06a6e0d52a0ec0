package design

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairohq/kairo-agents/core/agent"
)

func TestSpec(t *testing.T) {
	spec := Spec()

	require.Equal(t, "design-agent", spec.ID)
	require.NotEmpty(t, spec.BasePrompt)
	require.NotEmpty(t, spec.Keywords)
	assert.Contains(t, strings.ToLower(spec.EnhancementSuffix), "design")
}

func TestContextualPromptByProjectType(t *testing.T) {
	web := ContextualPrompt(agent.ProjectSettings{ProjectType: agent.ProjectTypeWebApp})
	assert.Contains(t, web, "Web App Design Focus")
	assert.Contains(t, web, "Responsive breakpoints")

	mobile := ContextualPrompt(agent.ProjectSettings{ProjectType: agent.ProjectTypeMobileApp})
	assert.Contains(t, mobile, "Mobile App Design Focus")
	assert.Contains(t, mobile, "Touch-friendly interfaces")

	assert.Empty(t, ContextualPrompt(agent.ProjectSettings{}))
}
