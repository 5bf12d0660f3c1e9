package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Manny2706/servicehire/internal/model/convo"
	"github.com/Manny2706/servicehire/internal/model/lead"
)

// askOrFinalize either requests the highest-priority missing slot or, when
// all slots are filled, records the lead and resets the session.
func (a *Agent) askOrFinalize(ctx context.Context, state convo.State) (convo.State, error) {
	missing := state.MissingSlots()
	if len(missing) > 0 {
		field := missing[0]
		state.RequestedField = field

		ask, err := a.provider.Generate(ctx, fmt.Sprintf(askFieldPrompt, field))
		if err != nil {
			return state, fmt.Errorf("generate %s request: %w", field, err)
		}
		state.Response = strings.TrimSpace(ask)
		return state, nil
	}

	captured := lead.Lead{
		Name:     state.Name,
		Email:    state.Email,
		Platform: state.Platform,
	}
	if err := a.sink.Record(ctx, captured); err != nil {
		// Keep the collected details so the next turn retries the sink
		// instead of losing the interview.
		log.Printf("[agent] lead record failed, keeping collected details: %v", err)
		state.RequestedField = convo.FieldNone
		state.Response = fmt.Sprintf("Thanks %s! We hit a snag saving your details, but we have them and will retry in a moment.", state.Name)
		return state, nil
	}

	log.Printf("[agent] lead captured: %s, %s, %s", captured.Name, captured.Email, captured.Platform)

	// Full reset: nothing in the session survives a captured lead.
	return convo.State{
		Response: fmt.Sprintf("Thanks %s! Your details have been captured successfully. We will reach out to you soon. Have a great day!", captured.Name),
	}, nil
}
