package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Manny2706/servicehire/internal/knowledge"
	"github.com/Manny2706/servicehire/internal/model/convo"
	"github.com/Manny2706/servicehire/internal/model/lead"
)

// fakeProvider returns scripted classification labels (one per call) and a
// canned generation reply, recording everything it is asked.
type fakeProvider struct {
	labels      []string
	classifyErr error
	generateErr error
	classified  []string
	prompts     []string
}

func (f *fakeProvider) Classify(_ context.Context, text string, _ []Label) (string, error) {
	f.classified = append(f.classified, text)
	if f.classifyErr != nil {
		return "", f.classifyErr
	}
	if len(f.labels) == 0 {
		return "unknown", nil
	}
	label := f.labels[0]
	f.labels = f.labels[1:]
	return label, nil
}

func (f *fakeProvider) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.generateErr != nil {
		return "", f.generateErr
	}
	return "generated reply", nil
}

type recordingSink struct {
	err   error
	leads []lead.Lead
}

func (s *recordingSink) Record(_ context.Context, l lead.Lead) error {
	if s.err != nil {
		return s.err
	}
	s.leads = append(s.leads, l)
	return nil
}

func newTestAgent(labels ...string) (*Agent, *fakeProvider, *recordingSink) {
	provider := &fakeProvider{labels: labels}
	sink := &recordingSink{}
	ag := New(provider, knowledge.NewMemoryStore(knowledge.Seed()), sink)
	return ag, provider, sink
}

func TestGreetingTurn(t *testing.T) {
	ag, _, _ := newTestAgent("greeting")

	state, err := ag.Turn(context.Background(), convo.State{}, "hi")
	if err != nil {
		t.Fatalf("Turn err: %v", err)
	}

	if state.Intent != convo.IntentGreeting {
		t.Fatalf("unexpected intent: %q", state.Intent)
	}
	if state.Response == "" {
		t.Fatal("expected a greeting response")
	}
	if state.Name != "" || state.Email != "" || state.Platform != "" {
		t.Fatalf("slots must stay empty, got %q %q %q", state.Name, state.Email, state.Platform)
	}
}

func TestPricingTurnGroundedOnPlanFacts(t *testing.T) {
	ag, provider, _ := newTestAgent("pricing")

	state, err := ag.Turn(context.Background(), convo.State{}, "what's your pricing?")
	if err != nil {
		t.Fatalf("Turn err: %v", err)
	}

	if state.Intent != convo.IntentPricing {
		t.Fatalf("unexpected intent: %q", state.Intent)
	}
	if state.Response == "" {
		t.Fatal("expected a pricing response")
	}
	if len(provider.prompts) != 1 {
		t.Fatalf("expected 1 generation, got %d", len(provider.prompts))
	}

	prompt := provider.prompts[0]
	plans := knowledge.NewMemoryStore(knowledge.Seed())
	basic, _ := plans.Plan("Basic")
	pro, _ := plans.Plan("Pro")
	for _, want := range []string{basic.Facts, pro.Facts, "what's your pricing?"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("pricing prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestHighIntentStartsInterviewWithName(t *testing.T) {
	ag, _, sink := newTestAgent("high_intent")

	state, err := ag.Turn(context.Background(), convo.State{}, "I want the pro plan")
	if err != nil {
		t.Fatalf("Turn err: %v", err)
	}

	if state.RequestedField != convo.FieldName {
		t.Fatalf("expected name to be requested first, got %q", state.RequestedField)
	}
	if state.Response == "" {
		t.Fatal("expected an ask response")
	}
	if len(sink.leads) != 0 {
		t.Fatalf("sink must not be invoked yet, got %d leads", len(sink.leads))
	}
}

func TestInterviewFieldPriority(t *testing.T) {
	// A user who supplied email before name is still asked for name next.
	ag, _, _ := newTestAgent("high_intent")

	state, err := ag.Turn(context.Background(), convo.State{Email: "jane@x.com"}, "sign me up")
	if err != nil {
		t.Fatalf("Turn err: %v", err)
	}

	if state.RequestedField != convo.FieldName {
		t.Fatalf("expected name to be requested, got %q", state.RequestedField)
	}
}

func TestFullLeadCaptureFlow(t *testing.T) {
	ag, provider, sink := newTestAgent("high_intent")
	ctx := context.Background()

	state, err := ag.Turn(ctx, convo.State{}, "I want the pro plan")
	if err != nil {
		t.Fatalf("turn 1 err: %v", err)
	}
	if state.RequestedField != convo.FieldName {
		t.Fatalf("turn 1: expected name request, got %q", state.RequestedField)
	}

	state, err = ag.Turn(ctx, state, "John Smith")
	if err != nil {
		t.Fatalf("turn 2 err: %v", err)
	}
	if state.Name != "John Smith" {
		t.Fatalf("turn 2: name not captured, got %q", state.Name)
	}
	if state.RequestedField != convo.FieldEmail {
		t.Fatalf("turn 2: expected email request, got %q", state.RequestedField)
	}

	state, err = ag.Turn(ctx, state, "john@example.com")
	if err != nil {
		t.Fatalf("turn 3 err: %v", err)
	}
	if state.Email != "john@example.com" {
		t.Fatalf("turn 3: email not captured, got %q", state.Email)
	}
	if state.RequestedField != convo.FieldPlatform {
		t.Fatalf("turn 3: expected platform request, got %q", state.RequestedField)
	}

	state, err = ag.Turn(ctx, state, "youtube")
	if err != nil {
		t.Fatalf("turn 4 err: %v", err)
	}

	if len(sink.leads) != 1 {
		t.Fatalf("expected exactly one recorded lead, got %d", len(sink.leads))
	}
	captured := sink.leads[0]
	if captured.Name != "John Smith" || captured.Email != "john@example.com" || captured.Platform != "Youtube" {
		t.Fatalf("unexpected lead: %+v", captured)
	}

	// Full reset, except the thank-you referencing the captured name.
	if !strings.Contains(state.Response, "John Smith") {
		t.Fatalf("thank-you must reference the name, got %q", state.Response)
	}
	if state.Intent != convo.IntentUnset || state.Name != "" || state.Email != "" ||
		state.Platform != "" || state.RequestedField != convo.FieldNone {
		t.Fatalf("state not reset after capture: %+v", state)
	}

	// Stability: only the opening message was classified; mid-interview
	// answers must never reach the classifier.
	if len(provider.classified) != 1 {
		t.Fatalf("expected 1 classification, got %d: %v", len(provider.classified), provider.classified)
	}
}

func TestInvalidEmailReAskedWithoutStateChange(t *testing.T) {
	ag, _, _ := newTestAgent()
	ctx := context.Background()

	start := convo.State{
		Intent:         convo.IntentHighIntent,
		Name:           "John Smith",
		RequestedField: convo.FieldEmail,
	}

	first, err := ag.Turn(ctx, start, "not an email")
	if err != nil {
		t.Fatalf("turn err: %v", err)
	}
	if first.Email != "" {
		t.Fatalf("invalid email must be rejected, got %q", first.Email)
	}
	if first.RequestedField != convo.FieldEmail {
		t.Fatalf("expected identical re-ask, got %q", first.RequestedField)
	}

	second, err := ag.Turn(ctx, first, "still not an email")
	if err != nil {
		t.Fatalf("turn err: %v", err)
	}
	if second.Email != "" || second.RequestedField != convo.FieldEmail {
		t.Fatalf("repeated invalid answer must leave state unchanged: %+v", second)
	}
}

func TestUnknownNeverOverwritesEstablishedIntent(t *testing.T) {
	ag, provider, _ := newTestAgent("pricing", "unknown")
	ctx := context.Background()

	state, err := ag.Turn(ctx, convo.State{}, "how much is the pro plan?")
	if err != nil {
		t.Fatalf("turn 1 err: %v", err)
	}
	if state.Intent != convo.IntentPricing {
		t.Fatalf("turn 1: unexpected intent %q", state.Intent)
	}

	state, err = ag.Turn(ctx, state, "hmmm")
	if err != nil {
		t.Fatalf("turn 2 err: %v", err)
	}
	if state.Intent != convo.IntentPricing {
		t.Fatalf("unknown must not downgrade intent, got %q", state.Intent)
	}
	// Still routed by the retained pricing intent.
	if len(provider.prompts) != 2 {
		t.Fatalf("expected 2 generations, got %d", len(provider.prompts))
	}
}

func TestClassifyFailureDegradesToUnknown(t *testing.T) {
	ag, provider, _ := newTestAgent()
	provider.classifyErr = errors.New("provider unavailable")

	state, err := ag.Turn(context.Background(), convo.State{}, "hello?")
	if err != nil {
		t.Fatalf("Turn err: %v", err)
	}

	if state.Intent != convo.IntentUnknown {
		t.Fatalf("expected unknown intent, got %q", state.Intent)
	}
	if state.Response == "" {
		t.Fatal("expected a fallback greeting response")
	}
}

func TestUnrecognizedLabelNormalizesToUnknown(t *testing.T) {
	ag, _, _ := newTestAgent("purchase_interest")

	state, err := ag.Turn(context.Background(), convo.State{}, "I'd like to buy")
	if err != nil {
		t.Fatalf("Turn err: %v", err)
	}

	if state.Intent != convo.IntentUnknown {
		t.Fatalf("expected unknown intent for out-of-set label, got %q", state.Intent)
	}
}

func TestSinkFailureKeepsCollectedDetailsAndRetries(t *testing.T) {
	ag, provider, sink := newTestAgent()
	sink.err = errors.New("crm unavailable")
	ctx := context.Background()

	state := convo.State{
		Intent:         convo.IntentHighIntent,
		Name:           "John Smith",
		Email:          "john@example.com",
		RequestedField: convo.FieldPlatform,
	}

	state, err := ag.Turn(ctx, state, "tiktok")
	if err != nil {
		t.Fatalf("turn err: %v", err)
	}

	if state.Name == "" || state.Email == "" || state.Platform == "" {
		t.Fatalf("collected details must survive a sink failure: %+v", state)
	}
	if strings.Contains(state.Response, "captured successfully") {
		t.Fatalf("failure response must not claim success: %q", state.Response)
	}
	if len(sink.leads) != 0 {
		t.Fatalf("no lead should be recorded yet, got %d", len(sink.leads))
	}

	// Next turn retries the sink without reclassifying the message.
	sink.err = nil
	state, err = ag.Turn(ctx, state, "did it work?")
	if err != nil {
		t.Fatalf("retry turn err: %v", err)
	}

	if len(sink.leads) != 1 {
		t.Fatalf("expected the retry to record the lead, got %d", len(sink.leads))
	}
	if sink.leads[0].Platform != "Tiktok" {
		t.Fatalf("unexpected platform: %q", sink.leads[0].Platform)
	}
	if state.Intent != convo.IntentUnset || state.Name != "" {
		t.Fatalf("state not reset after successful retry: %+v", state)
	}
	if len(provider.classified) != 0 {
		t.Fatalf("retry path must skip classification, got %v", provider.classified)
	}
}

func TestGenerationFailurePropagatesWithValidState(t *testing.T) {
	ag, provider, _ := newTestAgent("high_intent")
	provider.generateErr = errors.New("provider unavailable")

	state, err := ag.Turn(context.Background(), convo.State{}, "I want to sign up")
	if err == nil {
		t.Fatal("expected a turn error")
	}

	// The partially advanced state is still valid and resumable: the next
	// successful turn re-asks the same field.
	if state.Intent != convo.IntentHighIntent {
		t.Fatalf("classified intent must be retained, got %q", state.Intent)
	}
	if state.RequestedField != convo.FieldName {
		t.Fatalf("requested field must be retained, got %q", state.RequestedField)
	}
}

func TestPlatformAnswerCanonicalized(t *testing.T) {
	ag, _, _ := newTestAgent()

	state := convo.State{
		Intent:         convo.IntentHighIntent,
		Name:           "Jane",
		RequestedField: convo.FieldPlatform,
	}

	state, err := ag.Turn(context.Background(), state, "I mostly post on TikTok")
	if err != nil {
		t.Fatalf("Turn err: %v", err)
	}

	if state.Platform != "Tiktok" {
		t.Fatalf("expected canonicalized platform, got %q", state.Platform)
	}
}
