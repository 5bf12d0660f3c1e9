// Package agent implements the lead-qualification dialog core: intent
// routing, slot-filling interviews and lead finalization. It is pure dialog
// logic; the language model, knowledge base and lead sink are collaborators
// injected behind small interfaces.
package agent

import (
	"context"

	"github.com/Manny2706/servicehire/internal/knowledge"
	"github.com/Manny2706/servicehire/internal/model/convo"
	"github.com/Manny2706/servicehire/internal/model/lead"
)

// Label is one entry of the fixed classification label set.
type Label struct {
	Name        string
	Description string
}

// Provider is the language capability behind classification and response
// generation. Implementations may return arbitrary text from Classify; the
// agent post-validates it against the label set.
type Provider interface {
	Classify(ctx context.Context, text string, labels []Label) (string, error)
	Generate(ctx context.Context, prompt string) (string, error)
}

// KnowledgeBase resolves plan facts for grounded pricing answers.
type KnowledgeBase interface {
	Plan(name string) (knowledge.Plan, bool)
}

// Sink durably records a completed lead.
type Sink interface {
	Record(ctx context.Context, l lead.Lead) error
}

// Agent runs one conversation turn at a time over an explicitly passed
// session state. It holds no per-session state of its own, so a single Agent
// serves any number of independent sessions.
type Agent struct {
	provider Provider
	plans    KnowledgeBase
	sink     Sink
}

// New wires the dialog core to its collaborators.
func New(provider Provider, plans KnowledgeBase, sink Sink) *Agent {
	return &Agent{
		provider: provider,
		plans:    plans,
		sink:     sink,
	}
}

// Turn runs one request/response cycle: classify the message, route it, then
// execute exactly one response-producing branch. The input state is the
// previous turn's output; the returned state carries the reply in Response.
//
// On error the partially advanced state is returned alongside: a classified
// intent or captured slot is still valid, and the next turn resumes from it.
func (a *Agent) Turn(ctx context.Context, state convo.State, userMessage string) (convo.State, error) {
	state.UserMessage = userMessage

	// A completed interview whose lead is not yet durably recorded retries
	// the sink before anything else. This state only persists after a sink
	// failure; normal completion resets the session within the same turn.
	if state.Intent == convo.IntentHighIntent && !state.InterviewInProgress() {
		return a.askOrFinalize(ctx, state)
	}

	state = a.classifyIntent(ctx, state)

	switch route(state) {
	case stepExtract:
		// Fixed edge: every extraction attempt is followed by an
		// ask-or-finalize step in the same turn.
		state = extractSlot(state)
		return a.askOrFinalize(ctx, state)
	case stepKnowledge:
		return a.answerFromKnowledge(ctx, state)
	case stepGreeting:
		return a.greet(ctx, state)
	default:
		return state, nil
	}
}
