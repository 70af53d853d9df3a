package cldr

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/datagen/internal/core/ports"
)

// NodeID is the unique identifier for the CLDR source opener Graft node.
const NodeID graft.ID = "adapter.cldr"

// Opener implements ports.SourceOpener.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open creates a Source for cfg.
func (o *Opener) Open(cfg domain.SourceConfig) (ports.DataSource, error) {
	return NewSource(cfg)
}

func init() {
	graft.Register(graft.Node[ports.SourceOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceOpener, error) {
			return NewOpener(), nil
		},
	})
}
