package blob

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/datagen/internal/core/ports"
)

// NodeID is the unique identifier for the blob sink Graft node.
const NodeID graft.ID = "adapter.blob"

func init() {
	graft.Register(graft.Node[ports.BlobSink]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BlobSink, error) {
			return NewWriter(), nil
		},
	})
}
