package governance

import (
	"context"
	"errors"

	"nomo-governance/core/catalog"

	"go.uber.org/zap"
)

// PlanPriceFeedConfiguration returns, per asset in catalog order, the
// provider-specific configuration call (if the asset's provider is live) and
// the unconditional aggregator wiring on ResilientNomo.
func (p *Planner) PlanPriceFeedConfiguration(ctx context.Context, assets []catalog.Asset, providers *Providers) ([]Command, error) {
	if len(assets) == 0 {
		return nil, nil
	}

	resilient, ok, err := p.Registry.DeployedAddress(ctx, ContractResilientNomo)
	if err != nil {
		return nil, inspectionError("deployment "+ContractResilientNomo, err)
	}
	if !ok {
		return nil, configErrorf("%w: %s on %s", ErrMissingDeployment, ContractResilientNomo, p.Config.Network)
	}

	checker, _ := p.Inspector.(AppliedChecker)
	if p.SkipApplied && checker == nil {
		p.logger().Warn("Inspector cannot read price configuration, emitting all price-feed commands")
	}

	var commands []Command
	for _, asset := range assets {
		if !asset.PriceSource.IsValid() {
			return nil, configErrorf("asset %s references unknown price source %q", asset.Symbol, asset.PriceSource)
		}

		provider, live := providers.Get(asset.PriceSource)

		var candidates []Command
		if live {
			cmd, emit, err := p.providerCommand(provider, providers, asset)
			if err != nil {
				return nil, err
			}
			if emit {
				candidates = append(candidates, cmd)
			}
		} else {
			p.logger().Debug("Price source not deployed, wiring aggregator only",
				zap.String("asset", asset.Symbol),
				zap.String("nomo", string(asset.PriceSource)),
			)
		}

		wiring := Tuple{asset.Address, provider.Nomos, provider.EnableFlags}
		candidates = append(candidates, NewCommand(resilient, SigSetResilientTokenConfig, wiring))

		for _, cmd := range candidates {
			if p.SkipApplied && checker != nil {
				applied, err := checker.Applied(ctx, cmd)
				if err != nil {
					return nil, inspectionError("read "+cmd.Signature(), err)
				}
				if applied {
					p.logger().Debug("Configuration already applied", zap.String("command", cmd.String()))
					continue
				}
			}
			commands = append(commands, cmd)
		}
	}
	return commands, nil
}

// providerCommand dispatches on the provider kind. emit is false when the
// provider's source does not match the contract the kind requires.
func (p *Planner) providerCommand(provider Provider, providers *Providers, asset catalog.Asset) (Command, bool, error) {
	if provider.Config == nil {
		return Command{}, false, configErrorf("provider %s has no configuration builder", provider.Key)
	}

	var emit bool
	switch provider.Config.Kind() {
	case DirectPrice:
		emit = providers.isChainlinkSource(provider.Source)
	case TokenConfig:
		emit = !providers.isBinanceSource(provider.Source)
	case StalePeriod:
		emit = providers.isBinanceSource(provider.Source)
	default:
		return Command{}, false, configErrorf("provider %s has no configuration kind", provider.Key)
	}
	if !emit {
		return Command{}, false, nil
	}

	cmd, err := provider.Config.Build(provider.Source, asset)
	if err != nil {
		if errors.Is(err, ErrConfiguration) {
			return Command{}, false, err
		}
		return Command{}, false, configErrorf("%s: %v", asset.Symbol, err)
	}
	return cmd, true, nil
}
