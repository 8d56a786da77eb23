package governance_test

import (
	"nomo-governance/core/catalog"
	"nomo-governance/core/governance"
	"nomo-governance/core/governance/mocks"
	"nomo-governance/core/network"

	"github.com/ethereum/go-ethereum/common"
)

var (
	acmAddr       = common.HexToAddress("0x00000000000000000000000000000000000000ac")
	timelockAddr  = common.HexToAddress("0x0000000000000000000000000000000000000071")
	resilientAddr = common.HexToAddress("0x00000000000000000000000000000000000000e1")
	chainlinkAddr = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	redstoneAddr  = common.HexToAddress("0x00000000000000000000000000000000000000c2")
	binanceAddr   = common.HexToAddress("0x00000000000000000000000000000000000000c3")
	pythAddr      = common.HexToAddress("0x00000000000000000000000000000000000000c4")
	validatorAddr = common.HexToAddress("0x00000000000000000000000000000000000000c5")

	bnbAddr  = common.HexToAddress("0x000000000000000000000000000000000000000a")
	feedAddr = common.HexToAddress("0x000000000000000000000000000000000000fEED")
)

func testConfig(n network.Network, assets ...catalog.Asset) catalog.NetworkConfig {
	return catalog.NetworkConfig{
		Network: n,
		Addresses: catalog.AddressBook{
			ACM:      acmAddr,
			Timelock: timelockAddr,
		},
		ChainlinkFeeds: map[string]common.Address{"BNB": feedAddr},
		RedStoneFeeds:  map[string]common.Address{},
		PythIDs:        map[string]common.Hash{},
		Assets:         assets,
		OwnedContracts: catalog.DefaultOwnedContracts,
	}
}

func newTestPlanner(cfg catalog.NetworkConfig, inspector governance.StateInspector, deployed map[string]common.Address) (*governance.Planner, *mocks.Registry) {
	registry := mocks.NewRegistry(deployed)
	return governance.NewPlanner(cfg, inspector, registry, nil), registry
}
