package governance

import (
	"context"

	"nomo-governance/core/catalog"
	"nomo-governance/core/network"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

const defaultConcurrency = 8

// Planner computes the commands that move live state to the catalog's
// desired state. A Planner holds no state between runs and is safe to reuse.
type Planner struct {
	// Config is the desired state of the network being planned.
	Config catalog.NetworkConfig
	// Inspector reads live state.
	Inspector StateInspector
	// Registry resolves deployed contract addresses.
	Registry DeploymentRegistry
	// Logger receives per-decision debug logs. Nil disables logging.
	Logger *zap.Logger
	// SkipApplied drops price-feed commands whose effect the inspector reports
	// as already in place. Requires Inspector to implement AppliedChecker.
	SkipApplied bool
	// Concurrency bounds in-flight reads. Zero means a default of 8.
	Concurrency int
}

// NewPlanner returns a planner for cfg.
func NewPlanner(cfg catalog.NetworkConfig, inspector StateInspector, registry DeploymentRegistry, logger *zap.Logger) *Planner {
	return &Planner{
		Config:    cfg,
		Inspector: inspector,
		Registry:  registry,
		Logger:    logger,
	}
}

// Plan is the ordered command list of one run.
type Plan struct {
	Network  network.Network `json:"network"`
	Live     bool            `json:"live"`
	Commands []Command       `json:"commands"`
	Summary  Summary         `json:"summary"`
}

// Summary counts the commands each sub-planner contributed.
type Summary struct {
	AccessControl int `json:"access_control"`
	Ownership     int `json:"ownership"`
	PriceFeeds    int `json:"price_feeds"`
	Total         int `json:"total"`
}

// Plan runs every sub-planner and concatenates their output: access control
// grants first, then ownership acceptance, then price-feed configuration.
// Commands must be submitted in the returned order. On error no commands are
// returned.
func (p *Planner) Plan(ctx context.Context) (*Plan, error) {
	n := p.Config.Network
	if !n.IsValid() {
		return nil, configErrorf("%w: %q", network.ErrUnknown, n)
	}
	if p.Config.Addresses.Timelock == (common.Address{}) {
		return nil, configErrorf("no timelock address for %s", n)
	}

	l := p.logger().With(zap.String("network", n.String()))
	l.Info("Planning governance commands", zap.Bool("live", n.IsLive()))

	providers, err := ResolveProviders(ctx, p.Registry, p.Config)
	if err != nil {
		return nil, err
	}

	grants, err := p.PlanAccessControlGrants(ctx, TimelockOraclePermissions(p.Config.Addresses.Timelock))
	if err != nil {
		return nil, err
	}

	ownership, err := p.planOwnerships(ctx, p.Config.OwnedContracts, p.Config.Addresses.Timelock)
	if err != nil {
		return nil, err
	}

	feeds, err := p.PlanPriceFeedConfiguration(ctx, p.Config.Assets, providers)
	if err != nil {
		return nil, err
	}

	commands := make([]Command, 0, len(grants)+len(ownership)+len(feeds))
	commands = append(commands, grants...)
	commands = append(commands, ownership...)
	commands = append(commands, feeds...)

	plan := &Plan{
		Network:  n,
		Live:     n.IsLive(),
		Commands: commands,
		Summary: Summary{
			AccessControl: len(grants),
			Ownership:     len(ownership),
			PriceFeeds:    len(feeds),
			Total:         len(commands),
		},
	}

	l.Info("Plan computed",
		zap.Int("access_control", plan.Summary.AccessControl),
		zap.Int("ownership", plan.Summary.Ownership),
		zap.Int("price_feeds", plan.Summary.PriceFeeds),
		zap.Int("providers", providers.Len()),
	)

	return plan, nil
}

func (p *Planner) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

func (p *Planner) concurrency() int {
	if p.Concurrency <= 0 {
		return defaultConcurrency
	}
	return p.Concurrency
}
