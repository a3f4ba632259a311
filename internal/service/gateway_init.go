package service

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-transcript-keeper/internal/adapter"
)

// gatewayInitializer runs the gateway's one-time initialization at most
// once concurrently. A failed attempt leaves the gateway uninitialized so
// that the next call tries again.
type gatewayInitializer struct {
	gateway adapter.EncryptionGateway
	group   singleflight.Group
}

func newGatewayInitializer(gateway adapter.EncryptionGateway) *gatewayInitializer {
	return &gatewayInitializer{gateway: gateway}
}

func (g *gatewayInitializer) Ensure(ctx context.Context) error {
	if g.gateway.Initialized() {
		return nil
	}

	ch := g.group.DoChan("init", func() (any, error) {
		if g.gateway.Initialized() {
			return nil, nil
		}
		return nil, g.gateway.Init(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}
