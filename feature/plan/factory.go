package plan

import (
	"context"
	"fmt"
	"sync"

	"nomo-governance/core/catalog"
	"nomo-governance/core/chain"
	"nomo-governance/core/governance"
	"nomo-governance/core/network"
	"nomo-governance/core/storage"

	"go.uber.org/zap"
)

// ChainOptions configures planners built by NewChainFactory.
type ChainOptions struct {
	// Chain holds the RPC and deployment artifact settings.
	Chain chain.Config
	// Storage is required when deployments are read from a bucket.
	Storage storage.Client
	// Bucket holds the deployment artifacts.
	Bucket string
	// SkipApplied drops price-feed commands already reflected on chain.
	SkipApplied bool
}

// NewChainFactory returns a factory that reads live state over JSON-RPC.
// Deployment registries are kept per network so bucket indexes stay cached
// between plans.
func NewChainFactory(opts ChainOptions, logger *zap.Logger) PlannerFactory {
	var (
		mu         sync.Mutex
		registries = make(map[network.Network]governance.DeploymentRegistry)
	)

	registryFor := func(n network.Network) (governance.DeploymentRegistry, error) {
		mu.Lock()
		defer mu.Unlock()
		if r, ok := registries[n]; ok {
			return r, nil
		}
		r, err := chain.NewRegistry(opts.Chain, n, opts.Storage, opts.Bucket)
		if err != nil {
			return nil, err
		}
		registries[n] = r
		return r, nil
	}

	return func(ctx context.Context, cfg catalog.NetworkConfig) (*governance.Planner, func(), error) {
		registry, err := registryFor(cfg.Network)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open deployments: %w", err)
		}

		inspector, err := chain.Dial(ctx, opts.Chain, cfg.Network)
		if err != nil {
			return nil, nil, err
		}

		planner := governance.NewPlanner(cfg, inspector, registry, logger)
		planner.SkipApplied = opts.SkipApplied
		return planner, inspector.Close, nil
	}
}
