// Package convo manages conversation sessions and serializes agent turns.
package convo

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Manny2706/servicehire/internal/model/convo"
)

var ErrSessionNotFound = errors.New("session not found")

// apologyResponse is surfaced when a turn fails; the session itself stays
// valid and resumable.
const apologyResponse = "Sorry, something went wrong on our side. Could you say that again?"

// Agent runs one dialog turn. Satisfied by *agent.Agent.
type Agent interface {
	Turn(ctx context.Context, state convo.State, userMessage string) (convo.State, error)
}

// session pairs a state with its own lock: turns within a session are
// processed one at a time, sessions never share state.
type session struct {
	mu         sync.Mutex
	info       convo.Session
	state      convo.State
	transcript []convo.Message
}

// Service owns the per-session dialog states and drives the agent.
type Service struct {
	mu       sync.RWMutex
	agent    Agent
	sessions map[string]*session
}

// NewService bootstraps the in-memory session registry.
func NewService(agent Agent) *Service {
	return &Service{
		agent:    agent,
		sessions: make(map[string]*session),
	}
}

// CreateSession provisions an anonymous session with a fresh dialog state.
func (s *Service) CreateSession(_ context.Context) (convo.Session, error) {
	info := convo.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[info.ID] = &session{info: info}
	s.mu.Unlock()

	return info, nil
}

// GetSession retrieves session metadata by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (convo.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return convo.Session{}, ErrSessionNotFound
	}
	return sess.info, nil
}

// HandleMessage runs one agent turn for the session and returns the reply.
// A failed turn yields a generic apology; the state advanced so far (intent,
// captured slots, requested field) is kept so the next turn can resume.
func (s *Service) HandleMessage(ctx context.Context, sessionID, userMessage string) (string, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return "", ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	next, err := s.agent.Turn(ctx, sess.state, userMessage)
	reply := next.Response
	if err != nil {
		log.Printf("[convo] turn failed for session=%s: %v", sessionID, err)
		reply = apologyResponse
	}
	sess.state = next

	now := time.Now().UTC()
	sess.transcript = append(sess.transcript,
		convo.Message{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			Sender:    "user",
			Content:   userMessage,
			CreatedAt: now,
		},
		convo.Message{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			Sender:    "agent",
			Content:   reply,
			Intent:    string(next.Intent),
			CreatedAt: now,
		},
	)

	return reply, nil
}

// Transcript returns the stored messages for the session.
func (s *Service) Transcript(_ context.Context, sessionID string) ([]convo.Message, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	copied := make([]convo.Message, len(sess.transcript))
	copy(copied, sess.transcript)
	return copied, nil
}
