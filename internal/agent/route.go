package agent

import "github.com/Manny2706/servicehire/internal/model/convo"

type step int

const (
	stepGreeting step = iota
	stepKnowledge
	stepExtract
	stepEnd
)

// route decides the branch for the current turn. Rule order is authoritative:
// an open interview wins over everything else.
func route(s convo.State) step {
	switch {
	case s.Intent == convo.IntentHighIntent && s.InterviewInProgress():
		return stepExtract
	case s.Intent == convo.IntentPricing:
		return stepKnowledge
	case s.Intent == convo.IntentGreeting || s.Intent == convo.IntentUnknown:
		return stepGreeting
	default:
		return stepEnd
	}
}
