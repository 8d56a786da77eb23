package catalog

import (
	"fmt"
	"math/big"
	"os"

	"nomo-governance/core/network"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

type fileCatalog struct {
	Networks map[string]fileNetwork `yaml:"networks"`
}

type fileNetwork struct {
	Addresses      map[string]string            `yaml:"addresses"`
	Feeds          map[string]map[string]string `yaml:"feeds"`
	PythIDs        map[string]string            `yaml:"pythIds"`
	OwnedContracts []string                     `yaml:"ownedContracts"`
	Assets         []fileAsset                  `yaml:"assets"`
}

type fileAsset struct {
	Token       string `yaml:"token"`
	Address     string `yaml:"address"`
	Nomo        string `yaml:"nomo"`
	Price       string `yaml:"price"`
	StalePeriod uint64 `yaml:"stalePeriod"`
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, error) {
	var raw fileCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	configs := make([]NetworkConfig, 0, len(raw.Networks))
	for name, fn := range raw.Networks {
		n, err := network.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		if n == network.Hardhat {
			return nil, fmt.Errorf("%w: %s borrows the %s configuration and cannot be declared", ErrInvalid, n, n.ConfigKey())
		}
		cfg, err := fn.toConfig(n)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, n, err)
		}
		configs = append(configs, cfg)
	}

	return New(configs...), nil
}

func (fn fileNetwork) toConfig(n network.Network) (NetworkConfig, error) {
	cfg := NetworkConfig{
		Network:        n,
		ChainlinkFeeds: map[string]common.Address{},
		RedStoneFeeds:  map[string]common.Address{},
		PythIDs:        map[string]common.Hash{},
		OwnedContracts: fn.OwnedContracts,
	}

	book, err := parseAddressBook(fn.Addresses)
	if err != nil {
		return cfg, err
	}
	cfg.Addresses = book

	for provider, feeds := range fn.Feeds {
		var target map[string]common.Address
		switch PriceSource(provider) {
		case SourceChainlink:
			target = cfg.ChainlinkFeeds
		case SourceRedStone:
			target = cfg.RedStoneFeeds
		default:
			return cfg, fmt.Errorf("feeds: unsupported provider %q", provider)
		}
		for symbol, value := range feeds {
			addr, err := parseAddress(value)
			if err != nil {
				return cfg, fmt.Errorf("feeds.%s.%s: %w", provider, symbol, err)
			}
			target[symbol] = addr
		}
	}

	for symbol, value := range fn.PythIDs {
		b := common.FromHex(value)
		if len(b) != common.HashLength {
			return cfg, fmt.Errorf("pythIds.%s: expected %d bytes, got %d", symbol, common.HashLength, len(b))
		}
		cfg.PythIDs[symbol] = common.BytesToHash(b)
	}

	seen := make(map[string]struct{}, len(fn.Assets))
	for i, fa := range fn.Assets {
		asset, err := fa.toAsset()
		if err != nil {
			return cfg, fmt.Errorf("assets[%d]: %w", i, err)
		}
		if _, dup := seen[asset.Symbol]; dup {
			return cfg, fmt.Errorf("assets[%d]: duplicate token %q", i, asset.Symbol)
		}
		seen[asset.Symbol] = struct{}{}
		cfg.Assets = append(cfg.Assets, asset)
	}

	return cfg, nil
}

func (fa fileAsset) toAsset() (Asset, error) {
	if fa.Token == "" {
		return Asset{}, fmt.Errorf("token is required")
	}
	addr, err := parseAddress(fa.Address)
	if err != nil {
		return Asset{}, fmt.Errorf("%s: address: %w", fa.Token, err)
	}
	source := PriceSource(fa.Nomo)
	if !source.IsValid() {
		return Asset{}, fmt.Errorf("%s: unknown nomo %q", fa.Token, fa.Nomo)
	}

	asset := Asset{
		Symbol:      fa.Token,
		Address:     addr,
		PriceSource: source,
		StalePeriod: fa.StalePeriod,
	}
	if fa.Price != "" {
		price, ok := new(big.Int).SetString(fa.Price, 10)
		if !ok || price.Sign() < 0 {
			return Asset{}, fmt.Errorf("%s: invalid price %q", fa.Token, fa.Price)
		}
		asset.Price = price
	}
	return asset, nil
}

func parseAddressBook(raw map[string]string) (AddressBook, error) {
	var book AddressBook
	fields := map[string]*common.Address{
		"acm":          &book.ACM,
		"timelock":     &book.Timelock,
		"vBNB":         &book.VBNB,
		"WBNB":         &book.WBNB,
		"VAI":          &book.VAI,
		"pythOracle":   &book.PythOracle,
		"sidRegistry":  &book.SIDRegistry,
		"feedRegistry": &book.FeedRegistry,
	}
	for key, value := range raw {
		field, ok := fields[key]
		if !ok {
			return book, fmt.Errorf("addresses: unknown key %q", key)
		}
		addr, err := parseAddress(value)
		if err != nil {
			return book, fmt.Errorf("addresses.%s: %w", key, err)
		}
		*field = addr
	}
	return book, nil
}

func parseAddress(value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("not a hex address: %q", value)
	}
	return common.HexToAddress(value), nil
}
