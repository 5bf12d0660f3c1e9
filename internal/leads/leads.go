// Package leads provides the sink that durably records completed leads.
package leads

import (
	"context"

	"github.com/Manny2706/servicehire/internal/model/lead"
)

// Sink records completed leads. The agent invokes Record exactly once per
// completed interview; implementations decide durability.
type Sink interface {
	Record(ctx context.Context, l lead.Lead) error
	List(ctx context.Context) ([]lead.Lead, error)
}
