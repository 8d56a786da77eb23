package cmd

import (
	"fmt"

	"nomo-governance/core/catalog"
	"nomo-governance/core/chain"
	"nomo-governance/core/config"
	"nomo-governance/core/storage"
	"nomo-governance/feature/plan"

	"go.uber.org/zap"
)

// newPlanService wires the catalog, chain access and storage from cfg.
// Storage is only created when the deployments source or an upload needs it.
func newPlanService(cfg *config.Config, logg *zap.Logger, skipApplied, needStorage bool) (*plan.Service, error) {
	if !cfg.Chain.IsValidSource() {
		return nil, fmt.Errorf("unsupported deployments source %q", cfg.Chain.DeploymentsSource)
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	var client storage.Client
	if needStorage || cfg.Chain.DeploymentsSource == chain.SourceBucket {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	factory := plan.NewChainFactory(plan.ChainOptions{
		Chain:       cfg.Chain,
		Storage:     client,
		Bucket:      cfg.Storage.Bucket,
		SkipApplied: skipApplied,
	}, logg)

	svc := plan.NewService(cat, factory, logg, cfg.Server.PlanTimeout())
	if client != nil {
		svc.WithStorage(client, cfg.Storage.Bucket, cfg.Storage.PayloadPrefix)
	}
	return svc, nil
}
