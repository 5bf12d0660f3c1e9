package agent

import (
	"strings"
	"unicode"

	"github.com/Manny2706/servicehire/internal/model/convo"
)

// knownPlatforms are matched case-insensitively as substrings of the answer;
// the stored value is the capitalized canonical name.
var knownPlatforms = []string{"youtube", "instagram", "tiktok"}

// extractSlot reads the user message as the answer to the currently requested
// field. Validation is silent-reject: an invalid answer leaves the slot empty
// and the interview controller re-asks the same field next turn. There is no
// retry cap; the conversation simply keeps asking.
func extractSlot(state convo.State) convo.State {
	text := strings.TrimSpace(state.UserMessage)

	switch state.RequestedField {
	case convo.FieldEmail:
		if strings.Contains(text, "@") && strings.Contains(text, ".") {
			state.Email = text
		}
	case convo.FieldPlatform:
		if platform, ok := matchPlatform(text); ok {
			state.Platform = platform
		}
	case convo.FieldName:
		if isAlphabetic(text) {
			state.Name = text
		}
	}

	return state
}

func matchPlatform(text string) (string, bool) {
	lowered := strings.ToLower(text)
	for _, platform := range knownPlatforms {
		if strings.Contains(lowered, platform) {
			return strings.ToUpper(platform[:1]) + platform[1:], true
		}
	}
	return "", false
}

// isAlphabetic reports whether text contains letters and spaces only, with at
// least one letter.
func isAlphabetic(text string) bool {
	seenLetter := false
	for _, r := range text {
		if r == ' ' {
			continue
		}
		if !unicode.IsLetter(r) {
			return false
		}
		seenLetter = true
	}
	return seenLetter
}
