package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Plan holds the retrievable facts for one subscription tier. Facts is a
// free-form blob of grounded pricing information; the agent quotes it to the
// model verbatim and instructs it not to elaborate.
type Plan struct {
	Name  string `json:"name"`
	Facts string `json:"facts"`
}

// Store exposes plan fact retrieval for the agent and HTTP handlers.
type Store interface {
	Plan(name string) (Plan, bool)
	List() []Plan
}

// MemoryStore implements Store with an in-memory slice, suitable for a static
// knowledge base loaded once at startup.
type MemoryStore struct {
	items []Plan
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied plans.
func NewMemoryStore(items []Plan) *MemoryStore {
	return &MemoryStore{items: append([]Plan(nil), items...)}
}

// Plan looks up a plan by name, case-insensitively.
func (s *MemoryStore) Plan(name string) (Plan, bool) {
	for _, item := range s.items {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}
	return Plan{}, false
}

// List returns the configured plan list.
func (s *MemoryStore) List() []Plan {
	return append([]Plan(nil), s.items...)
}

// Seed provides the default pricing facts used when no knowledge file is
// configured.
func Seed() []Plan {
	return []Plan{
		{
			Name:  "Basic",
			Facts: "$29/month. One connected social channel, scheduled posting, weekly analytics digest, email support.",
		},
		{
			Name:  "Pro",
			Facts: "$79/month. Up to five connected channels, scheduled posting, daily analytics, audience insights, priority support.",
		},
	}
}

// knowledgeFile mirrors the on-disk layout: {"pricing": {"Basic": "...", "Pro": "..."}}.
type knowledgeFile struct {
	Pricing map[string]string `json:"pricing"`
}

// LoadFile reads plan facts from a JSON knowledge file.
func LoadFile(path string) (*MemoryStore, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}

	var parsed knowledgeFile
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse knowledge file %s: %w", path, err)
	}

	plans := make([]Plan, 0, len(parsed.Pricing))
	for name, facts := range parsed.Pricing {
		plans = append(plans, Plan{Name: name, Facts: facts})
	}
	return NewMemoryStore(plans), nil
}

// Validate checks that every required plan is present. A missing plan is a
// configuration error and should abort startup, not surface mid-conversation.
func Validate(s Store, required ...string) error {
	for _, name := range required {
		if _, ok := s.Plan(name); !ok {
			return fmt.Errorf("knowledge base is missing required plan %q", name)
		}
	}
	return nil
}
