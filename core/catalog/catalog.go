package catalog

import (
	"errors"
	"fmt"
	"math/big"
	"sort"

	"nomo-governance/core/network"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrInvalid is returned when a catalog file fails validation.
	ErrInvalid = errors.New("invalid catalog")
	// ErrNetworkNotConfigured is returned by For when the catalog has no entry
	// for the requested network.
	ErrNetworkNotConfigured = errors.New("network not configured")
)

// PriceSource is the key an asset uses to reference its provider.
type PriceSource string

const (
	SourceChainlink      PriceSource = "chainlink"
	SourceChainlinkFixed PriceSource = "chainlinkFixed"
	SourceRedStone       PriceSource = "redstone"
	SourceBinance        PriceSource = "binance"
	SourcePyth           PriceSource = "pyth"
)

// PriceSources returns the closed set of provider keys.
func PriceSources() []PriceSource {
	return []PriceSource{SourceChainlink, SourceChainlinkFixed, SourceRedStone, SourceBinance, SourcePyth}
}

// IsValid reports whether s is a known provider key.
func (s PriceSource) IsValid() bool {
	for _, known := range PriceSources() {
		if s == known {
			return true
		}
	}
	return false
}

// Asset is one tradable asset and the provider that prices it.
type Asset struct {
	Symbol      string
	Address     common.Address
	PriceSource PriceSource
	// Price is the literal price for direct-price providers. Nil when unset.
	Price *big.Int
	// StalePeriod in seconds. Zero means the provider default applies.
	StalePeriod uint64
}

// AddressBook holds the preconfigured (not deployed by this project)
// addresses of a network.
type AddressBook struct {
	ACM          common.Address
	Timelock     common.Address
	VBNB         common.Address
	WBNB         common.Address
	VAI          common.Address
	PythOracle   common.Address
	SIDRegistry  common.Address
	FeedRegistry common.Address
}

// NetworkConfig is the full desired configuration of one network.
type NetworkConfig struct {
	Network   network.Network
	Addresses AddressBook
	// ChainlinkFeeds and RedStoneFeeds map asset symbols to aggregator feeds.
	ChainlinkFeeds map[string]common.Address
	RedStoneFeeds  map[string]common.Address
	// PythIDs maps asset symbols to pyth price ids.
	PythIDs map[string]common.Hash
	Assets  []Asset
	// OwnedContracts lists the deployments whose ownership the timelock accepts.
	OwnedContracts []string
}

// DefaultOwnedContracts is used when a network does not list its own.
var DefaultOwnedContracts = []string{
	"ResilientNomo",
	"ChainlinkNomo",
	"RedStoneNomo",
	"BoundValidator",
	"BinanceNomo",
}

// NomosToDeploy returns the provider keys referenced by at least one asset,
// sorted.
func (c NetworkConfig) NomosToDeploy() []PriceSource {
	seen := make(map[PriceSource]struct{})
	for _, asset := range c.Assets {
		seen[asset.PriceSource] = struct{}{}
	}
	out := make([]PriceSource, 0, len(seen))
	for key := range seen {
		out = append(out, key)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Catalog is the set of configured networks.
type Catalog struct {
	networks map[network.Network]NetworkConfig
}

// New builds a catalog from already-validated configurations.
func New(configs ...NetworkConfig) *Catalog {
	c := &Catalog{networks: make(map[network.Network]NetworkConfig, len(configs))}
	for _, cfg := range configs {
		c.networks[cfg.Network] = cfg
	}
	return c
}

// For returns the configuration that applies to n. The returned config keeps
// n as its identity even when it is borrowed from another network.
func (c *Catalog) For(n network.Network) (NetworkConfig, error) {
	if !n.IsValid() {
		return NetworkConfig{}, fmt.Errorf("%w: %q", network.ErrUnknown, n)
	}
	cfg, ok := c.networks[n.ConfigKey()]
	if !ok {
		return NetworkConfig{}, fmt.Errorf("%w: %s", ErrNetworkNotConfigured, n.ConfigKey())
	}
	cfg.Network = n
	if len(cfg.OwnedContracts) == 0 {
		cfg.OwnedContracts = DefaultOwnedContracts
	}
	return cfg, nil
}

// Networks returns the configured networks, sorted.
func (c *Catalog) Networks() []network.Network {
	out := make([]network.Network, 0, len(c.networks))
	for n := range c.networks {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
