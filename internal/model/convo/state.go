package convo

import "strings"

// Intent is the coarse classification of a user message, constrained to a
// fixed label set.
type Intent string

const (
	IntentUnset      Intent = ""
	IntentGreeting   Intent = "greeting"
	IntentPricing    Intent = "pricing"
	IntentHighIntent Intent = "high_intent"
	IntentUnknown    Intent = "unknown"
)

// ParseIntent normalizes raw classifier output to a known intent. Anything
// outside the label set maps to IntentUnknown, so free-form model output can
// never leak an arbitrary string into state.
func ParseIntent(raw string) Intent {
	switch normalized := Intent(strings.ToLower(strings.TrimSpace(raw))); normalized {
	case IntentGreeting, IntentPricing, IntentHighIntent:
		return normalized
	default:
		return IntentUnknown
	}
}

// Field names a lead slot the agent can solicit from the user.
type Field string

const (
	FieldNone     Field = ""
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPlatform Field = "platform"
)

// SlotOrder is the fixed priority in which missing slots are requested:
// a user who volunteers an email before a name is still asked for the name
// first.
var SlotOrder = []Field{FieldName, FieldEmail, FieldPlatform}

// State is the per-session dialog record threaded through each turn. It is
// passed by value: a turn takes the previous state and returns the next one,
// and nothing survives a captured lead.
type State struct {
	UserMessage    string `json:"userMessage"`
	Intent         Intent `json:"intent"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Platform       string `json:"platform"`
	RequestedField Field  `json:"requestedField"`
	Response       string `json:"response"`
}

// Slot returns the value currently stored for the named field.
func (s State) Slot(f Field) string {
	switch f {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	case FieldPlatform:
		return s.Platform
	default:
		return ""
	}
}

// MissingSlots lists unfilled slots in request priority order.
func (s State) MissingSlots() []Field {
	var missing []Field
	for _, f := range SlotOrder {
		if s.Slot(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// InterviewInProgress reports whether any lead slot is still unfilled. The
// classifier stability rule and the router share this single predicate.
func (s State) InterviewInProgress() bool {
	return len(s.MissingSlots()) > 0
}
