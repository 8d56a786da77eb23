package governance

import (
	"context"
	"math/big"

	"nomo-governance/core/catalog"

	"github.com/ethereum/go-ethereum/common"
)

// Deployment names of the oracle contracts.
const (
	ContractResilientNomo  = "ResilientNomo"
	ContractChainlinkNomo  = "ChainlinkNomo"
	ContractRedStoneNomo   = "RedStoneNomo"
	ContractBinanceNomo    = "BinanceNomo"
	ContractPythNomo       = "PythNomo"
	ContractBoundValidator = "BoundValidator"
)

// DefaultStalePeriod applies to assets that do not set their own, in seconds.
const DefaultStalePeriod uint64 = 24 * 60 * 60

// Function signatures emitted by the price-feed planner.
const (
	SigSetDirectPrice          = "setDirectPrice(address,uint256)"
	SigSetFeedTokenConfig      = "setTokenConfig((address,address,uint256))"
	SigSetPythTokenConfig      = "setTokenConfig((bytes32,address,uint64))"
	SigSetMaxStalePeriod       = "setMaxStalePeriod(string,uint256)"
	SigSetResilientTokenConfig = "setTokenConfig((address,address[3],bool[3]))"
)

// ProviderKind selects which configuration call a provider needs.
type ProviderKind int

const (
	DirectPrice ProviderKind = iota + 1
	TokenConfig
	StalePeriod
)

func (k ProviderKind) String() string {
	switch k {
	case DirectPrice:
		return "direct_price"
	case TokenConfig:
		return "token_config"
	case StalePeriod:
		return "stale_period"
	default:
		return "unknown"
	}
}

// ProviderConfig builds the provider-specific configuration call of an asset.
// The concrete type fixes the provider kind.
type ProviderConfig interface {
	Kind() ProviderKind
	Build(source common.Address, asset catalog.Asset) (Command, error)
}

// DirectPriceConfig sets a literal price on the underlying source.
type DirectPriceConfig struct{}

func (DirectPriceConfig) Kind() ProviderKind { return DirectPrice }

func (DirectPriceConfig) Build(source common.Address, asset catalog.Asset) (Command, error) {
	if asset.Price == nil {
		return Command{}, configErrorf("asset %s uses a direct price but declares none", asset.Symbol)
	}
	return NewCommand(source, SigSetDirectPrice, asset.Address, new(big.Int).Set(asset.Price)), nil
}

// FeedTokenConfig wires an asset to an aggregator feed (chainlink, redstone).
type FeedTokenConfig struct {
	Feeds map[string]common.Address
}

func (FeedTokenConfig) Kind() ProviderKind { return TokenConfig }

func (c FeedTokenConfig) Build(source common.Address, asset catalog.Asset) (Command, error) {
	feed, ok := c.Feeds[asset.Symbol]
	if !ok {
		return Command{}, configErrorf("no %s feed for %s", asset.PriceSource, asset.Symbol)
	}
	cfg := Tuple{asset.Address, feed, new(big.Int).SetUint64(stalePeriod(asset))}
	return NewCommand(source, SigSetFeedTokenConfig, cfg), nil
}

// PythTokenConfig wires an asset to a pyth price id.
type PythTokenConfig struct {
	IDs map[string]common.Hash
}

func (PythTokenConfig) Kind() ProviderKind { return TokenConfig }

func (c PythTokenConfig) Build(source common.Address, asset catalog.Asset) (Command, error) {
	id, ok := c.IDs[asset.Symbol]
	if !ok {
		return Command{}, configErrorf("no pyth id for %s", asset.Symbol)
	}
	cfg := Tuple{id, asset.Address, stalePeriod(asset)}
	return NewCommand(source, SigSetPythTokenConfig, cfg), nil
}

// StalePeriodConfig sets the max stale period of a symbol-keyed source.
type StalePeriodConfig struct{}

func (StalePeriodConfig) Kind() ProviderKind { return StalePeriod }

func (StalePeriodConfig) Build(source common.Address, asset catalog.Asset) (Command, error) {
	return NewCommand(source, SigSetMaxStalePeriod, asset.Symbol, new(big.Int).SetUint64(stalePeriod(asset))), nil
}

func stalePeriod(asset catalog.Asset) uint64 {
	if asset.StalePeriod == 0 {
		return DefaultStalePeriod
	}
	return asset.StalePeriod
}

// Provider is a price source deployed on the current network.
type Provider struct {
	Key    catalog.PriceSource
	Source common.Address
	// Nomos and EnableFlags are the aggregator slots, index aligned.
	Nomos       [3]common.Address
	EnableFlags [3]bool
	Config      ProviderConfig
}

func newProvider(key catalog.PriceSource, source common.Address, cfg ProviderConfig) Provider {
	return Provider{
		Key:         key,
		Source:      source,
		Nomos:       [3]common.Address{source, {}, {}},
		EnableFlags: [3]bool{true, false, false},
		Config:      cfg,
	}
}

// Providers is the set of price sources live on one network.
type Providers struct {
	byKey     map[catalog.PriceSource]Provider
	chainlink *common.Address
	binance   *common.Address
}

// NewProviders indexes providers by key. The chainlink and binance source
// addresses are taken from the chainlink and binance entries when present.
func NewProviders(providers ...Provider) *Providers {
	p := &Providers{byKey: make(map[catalog.PriceSource]Provider, len(providers))}
	for _, provider := range providers {
		p.byKey[provider.Key] = provider
		src := provider.Source
		switch provider.Key {
		case catalog.SourceChainlink:
			p.chainlink = &src
		case catalog.SourceBinance:
			p.binance = &src
		}
	}
	return p
}

// Get returns the provider for key, if it is live.
func (p *Providers) Get(key catalog.PriceSource) (Provider, bool) {
	provider, ok := p.byKey[key]
	return provider, ok
}

// Len returns the number of live providers.
func (p *Providers) Len() int { return len(p.byKey) }

func (p *Providers) isChainlinkSource(addr common.Address) bool {
	return p.chainlink != nil && *p.chainlink == addr
}

func (p *Providers) isBinanceSource(addr common.Address) bool {
	return p.binance != nil && *p.binance == addr
}

// ResolveProviders builds the provider set from the oracle contracts recorded
// in registry. A provider whose contract was never deployed is left out.
func ResolveProviders(ctx context.Context, registry DeploymentRegistry, cfg catalog.NetworkConfig) (*Providers, error) {
	lookup := func(name string) (common.Address, bool, error) {
		addr, ok, err := registry.DeployedAddress(ctx, name)
		if err != nil {
			return common.Address{}, false, inspectionError("deployment "+name, err)
		}
		return addr, ok, nil
	}

	var providers []Provider

	chainlink, ok, err := lookup(ContractChainlinkNomo)
	if err != nil {
		return nil, err
	}
	if ok {
		providers = append(providers,
			newProvider(catalog.SourceChainlink, chainlink, FeedTokenConfig{Feeds: cfg.ChainlinkFeeds}),
			newProvider(catalog.SourceChainlinkFixed, chainlink, DirectPriceConfig{}),
		)
	}

	redstone, ok, err := lookup(ContractRedStoneNomo)
	if err != nil {
		return nil, err
	}
	if ok {
		providers = append(providers, newProvider(catalog.SourceRedStone, redstone, FeedTokenConfig{Feeds: cfg.RedStoneFeeds}))
	}

	binance, ok, err := lookup(ContractBinanceNomo)
	if err != nil {
		return nil, err
	}
	if ok {
		providers = append(providers, newProvider(catalog.SourceBinance, binance, StalePeriodConfig{}))
	}

	pyth, ok, err := lookup(ContractPythNomo)
	if err != nil {
		return nil, err
	}
	if ok {
		providers = append(providers, newProvider(catalog.SourcePyth, pyth, PythTokenConfig{IDs: cfg.PythIDs}))
	}

	return NewProviders(providers...), nil
}
