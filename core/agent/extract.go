package agent

import (
	"regexp"
	"strings"
)

// The bracket-tag mini-protocol embedded in provider responses. A tag's
// free-text body runs to the next '[' or end of input, so bodies cannot
// themselves contain a literal '[' — a known protocol limitation, kept
// as-is.
var (
	actionPattern    = regexp.MustCompile(`\[ACTION:([^\]]+)\]([^\[]*)`)
	collabPattern    = regexp.MustCompile(`\[COLLABORATE:([^\]]+)\]([^\[]*)`)
	nextStepsPattern = regexp.MustCompile(`## Next Steps\n((?:- .+\n?)+)`)
)

// ExtractActionItems scans response text for [ACTION:type] tags. The tag
// type is lower-cased with spaces folded to underscores; the body is
// trimmed. Tags with an empty body are discarded. Returns nil when
// nothing matches.
func ExtractActionItems(response string) []ActionItem {
	var items []ActionItem

	for _, match := range actionPattern.FindAllStringSubmatch(response, -1) {
		if match[1] == "" || match[2] == "" {
			continue
		}
		items = append(items, ActionItem{
			Type:        ActionType(strings.ReplaceAll(strings.ToLower(match[1]), " ", "_")),
			Description: strings.TrimSpace(match[2]),
			Details:     map[string]string{},
		})
	}

	return items
}

// ExtractNextSteps pulls the optional "## Next Steps" block: one string
// per "- " line, prefix stripped and trimmed. Returns nil when the
// heading is absent.
func ExtractNextSteps(response string) []string {
	match := nextStepsPattern.FindStringSubmatch(response)
	if match == nil {
		return nil
	}

	var steps []string
	for _, line := range strings.Split(match[1], "\n") {
		if !strings.HasPrefix(line, "- ") {
			continue
		}
		steps = append(steps, strings.TrimSpace(line[2:]))
	}

	return steps
}

// ExtractCollaborationRequests scans for [COLLABORATE:agent-id] tags.
// Priority is always medium; the protocol carries no priority signal.
// Returns nil when nothing matches.
func ExtractCollaborationRequests(response string) []CollaborationRequest {
	var requests []CollaborationRequest

	for _, match := range collabPattern.FindAllStringSubmatch(response, -1) {
		if match[1] == "" || match[2] == "" {
			continue
		}
		requests = append(requests, CollaborationRequest{
			TargetAgent: strings.TrimSpace(match[1]),
			Context:     strings.TrimSpace(match[2]),
			Priority:    PriorityMedium,
		})
	}

	return requests
}
