package agent

import (
	"context"
	"log"

	"github.com/Manny2706/servicehire/internal/model/convo"
)

// intentLabels is the fixed label set handed to the classifier. The
// descriptions double as the label definitions in the classification prompt.
var intentLabels = []Label{
	{Name: "greeting", Description: "casual hellos and small talk"},
	{Name: "pricing", Description: "questions about pricing, plans, plan details or costs"},
	{Name: "high_intent", Description: "strong interest in buying or signing up for the service, mentioning the Basic or Pro plan by name, or a bare numeric choice such as 1 or 2"},
	{Name: "unknown", Description: "anything that fits none of the above"},
}

// classifyIntent updates state.Intent from the latest user message.
//
// Two rules keep routing stable against a noisy classifier. An open interview
// pins the intent at high_intent, so a mid-interview answer like "jane@x.com"
// is never reclassified away. And an "unknown" result never overwrites an
// intent that is already set: once a real intent is established, a single
// ambiguous turn cannot silently downgrade it.
func (a *Agent) classifyIntent(ctx context.Context, state convo.State) convo.State {
	if state.Intent == convo.IntentHighIntent && state.InterviewInProgress() {
		return state
	}

	raw, err := a.provider.Classify(ctx, state.UserMessage, intentLabels)
	if err != nil {
		log.Printf("[agent] classify failed, treating turn as unknown: %v", err)
		raw = string(convo.IntentUnknown)
	}

	intent := convo.ParseIntent(raw)
	if intent == convo.IntentUnknown && state.Intent != convo.IntentUnset {
		return state
	}

	state.Intent = intent
	return state
}
