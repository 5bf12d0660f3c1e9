package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/Manny2706/servicehire/internal/model/convo"
)

// answerFromKnowledge responds to pricing questions grounded on stored plan
// facts only. Guarded on intent so a misroute cannot fabricate an answer.
func (a *Agent) answerFromKnowledge(ctx context.Context, state convo.State) (convo.State, error) {
	if state.Intent != convo.IntentPricing {
		return state, nil
	}

	basic, ok := a.plans.Plan("Basic")
	if !ok {
		return state, fmt.Errorf("knowledge base has no %q plan", "Basic")
	}
	pro, ok := a.plans.Plan("Pro")
	if !ok {
		return state, fmt.Errorf("knowledge base has no %q plan", "Pro")
	}

	reply, err := a.provider.Generate(ctx, fmt.Sprintf(pricingAnswerPrompt, basic.Facts, pro.Facts, state.UserMessage))
	if err != nil {
		return state, fmt.Errorf("generate pricing answer: %w", err)
	}

	state.Response = strings.TrimSpace(reply)
	return state, nil
}

// greet produces the open-ended greeting/fallback response. It never touches
// slot fields.
func (a *Agent) greet(ctx context.Context, state convo.State) (convo.State, error) {
	reply, err := a.provider.Generate(ctx, greetingPrompt)
	if err != nil {
		return state, fmt.Errorf("generate greeting: %w", err)
	}

	state.Response = strings.TrimSpace(reply)
	return state, nil
}
