package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"nomo-governance/core/network"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `
networks:
  bsctestnet:
    addresses:
      acm: "0x00000000000000000000000000000000000000a1"
      timelock: "0x00000000000000000000000000000000000000b1"
    feeds:
      chainlink:
        BNB: "0x00000000000000000000000000000000000000f1"
      redstone:
        XVS: "0x00000000000000000000000000000000000000f2"
    pythIds:
      ETH: "0xff61491a931112ddf1bd8147cd1b641375f79f5825126d665480874634fd0ace"
    assets:
      - token: BNB
        address: "0x000000000000000000000000000000000000000a"
        nomo: chainlink
        stalePeriod: 100
      - token: VAI
        address: "0x000000000000000000000000000000000000000b"
        nomo: chainlinkFixed
        price: "1000000000000000000"
      - token: XVS
        address: "0x000000000000000000000000000000000000000c"
        nomo: redstone
  ethereum:
    addresses:
      acm: "0x00000000000000000000000000000000000000a2"
    ownedContracts: [ResilientNomo]
`

func TestParse(t *testing.T) {
	cat, err := Parse([]byte(testCatalog))
	require.NoError(t, err)
	assert.Equal(t, []network.Network{network.BSCTestnet, network.Ethereum}, cat.Networks())

	cfg, err := cat.For(network.BSCTestnet)
	require.NoError(t, err)

	assert.Equal(t, common.HexToAddress("0xa1"), cfg.Addresses.ACM)
	assert.Equal(t, common.HexToAddress("0xb1"), cfg.Addresses.Timelock)
	assert.Equal(t, common.HexToAddress("0xf1"), cfg.ChainlinkFeeds["BNB"])
	assert.Equal(t, common.HexToAddress("0xf2"), cfg.RedStoneFeeds["XVS"])
	assert.Equal(t, common.HexToHash("0xff61491a931112ddf1bd8147cd1b641375f79f5825126d665480874634fd0ace"), cfg.PythIDs["ETH"])

	require.Len(t, cfg.Assets, 3)
	assert.Equal(t, "BNB", cfg.Assets[0].Symbol)
	assert.Equal(t, uint64(100), cfg.Assets[0].StalePeriod)
	assert.Nil(t, cfg.Assets[0].Price)
	assert.Equal(t, "1000000000000000000", cfg.Assets[1].Price.String())
	assert.Equal(t, SourceChainlinkFixed, cfg.Assets[1].PriceSource)

	assert.Equal(t, DefaultOwnedContracts, cfg.OwnedContracts)
	assert.Equal(t, []PriceSource{SourceChainlink, SourceChainlinkFixed, SourceRedStone}, cfg.NomosToDeploy())

	eth, err := cat.For(network.Ethereum)
	require.NoError(t, err)
	assert.Equal(t, []string{"ResilientNomo"}, eth.OwnedContracts)
}

func TestCatalog_ForHardhat(t *testing.T) {
	cat, err := Parse([]byte(testCatalog))
	require.NoError(t, err)

	cfg, err := cat.For(network.Hardhat)
	require.NoError(t, err)
	assert.Equal(t, network.Hardhat, cfg.Network)
	assert.Len(t, cfg.Assets, 3)
}

func TestCatalog_ForMissing(t *testing.T) {
	cat, err := Parse([]byte(testCatalog))
	require.NoError(t, err)

	_, err = cat.For(network.OpBNBMainnet)
	assert.ErrorIs(t, err, ErrNetworkNotConfigured)

	_, err = cat.For(network.Network("polygon"))
	assert.ErrorIs(t, err, network.ErrUnknown)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		expect string
	}{
		{
			name:   "UnknownNetwork",
			yaml:   "networks:\n  polygon: {}\n",
			expect: "unknown network",
		},
		{
			name:   "HardhatDeclared",
			yaml:   "networks:\n  hardhat: {}\n",
			expect: "cannot be declared",
		},
		{
			name:   "UnknownNomo",
			yaml:   "networks:\n  sepolia:\n    assets:\n      - token: X\n        address: \"0x000000000000000000000000000000000000000a\"\n        nomo: uniswap\n",
			expect: "unknown nomo",
		},
		{
			name:   "BadAddress",
			yaml:   "networks:\n  sepolia:\n    addresses:\n      acm: nope\n",
			expect: "not a hex address",
		},
		{
			name:   "UnknownAddressKey",
			yaml:   "networks:\n  sepolia:\n    addresses:\n      comptroller: \"0x000000000000000000000000000000000000000a\"\n",
			expect: "unknown key",
		},
		{
			name:   "ShortPythID",
			yaml:   "networks:\n  sepolia:\n    pythIds:\n      ETH: \"0x01\"\n",
			expect: "expected 32 bytes",
		},
		{
			name:   "DuplicateToken",
			yaml:   "networks:\n  sepolia:\n    assets:\n      - {token: X, address: \"0x000000000000000000000000000000000000000a\", nomo: pyth}\n      - {token: X, address: \"0x000000000000000000000000000000000000000b\", nomo: pyth}\n",
			expect: "duplicate token",
		},
		{
			name:   "NegativePrice",
			yaml:   "networks:\n  sepolia:\n    assets:\n      - {token: X, address: \"0x000000000000000000000000000000000000000a\", nomo: chainlinkFixed, price: \"-1\"}\n",
			expect: "invalid price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.expect)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o600))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cat.Networks(), 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_ShippedCatalog(t *testing.T) {
	cat, err := Load(filepath.Join("..", "..", "configs", "catalog.yaml"))
	require.NoError(t, err)

	cfg, err := cat.For(network.BSCMainnet)
	require.NoError(t, err)
	for _, asset := range cfg.Assets {
		if asset.PriceSource == SourceChainlink {
			_, ok := cfg.ChainlinkFeeds[asset.Symbol]
			assert.True(t, ok, "missing chainlink feed for %s", asset.Symbol)
		}
	}
}
