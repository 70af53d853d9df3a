package provider

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/datagen/internal/adapters/cldr"
	"go.trai.ch/datagen/internal/core/domain"
	"go.trai.ch/datagen/internal/core/ports"
)

// NodeID is the unique identifier for the provider factory Graft node.
const NodeID graft.ID = "adapter.provider"

// Factory implements ports.ProviderFactory by opening a source per configuration.
type Factory struct {
	opener ports.SourceOpener
}

// NewFactory creates a Factory using opener for raw documents.
func NewFactory(opener ports.SourceOpener) *Factory {
	return &Factory{opener: opener}
}

// NewProvider opens the source described by cfg and wraps it in a Provider.
func (f *Factory) NewProvider(cfg domain.SourceConfig) (ports.DataProvider, error) {
	source, err := f.opener.Open(cfg)
	if err != nil {
		return nil, err
	}
	return New(source, cfg.ComputeFallback), nil
}

func init() {
	graft.Register(graft.Node[ports.ProviderFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cldr.NodeID},
		Run: func(ctx context.Context) (ports.ProviderFactory, error) {
			opener, err := graft.Dep[ports.SourceOpener](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(opener), nil
		},
	})
}
