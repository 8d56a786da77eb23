package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"nomo-governance/core/catalog"
	"nomo-governance/core/chain"
	"nomo-governance/core/config"
	"nomo-governance/core/governance"
	"nomo-governance/core/network"
	"nomo-governance/core/storage"
)

// Prints where the oracle contracts of a network resolve and which role ids
// the timelock permissions hash to.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	name := cfg.Chain.Network
	if len(os.Args) > 1 {
		name = os.Args[1]
	}
	n, err := network.Parse(name)
	if err != nil {
		log.Fatal(err)
	}

	var client storage.Client
	if cfg.Chain.DeploymentsSource == chain.SourceBucket {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			log.Fatal(err)
		}
	}

	registry, err := chain.NewRegistry(cfg.Chain, n, client, cfg.Storage.Bucket)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	fmt.Printf("=== Deployments on %s (%s) ===\n", n, cfg.Chain.DeploymentsSource)
	for _, contract := range []string{
		governance.ContractResilientNomo,
		governance.ContractChainlinkNomo,
		governance.ContractRedStoneNomo,
		governance.ContractBinanceNomo,
		governance.ContractPythNomo,
		governance.ContractBoundValidator,
	} {
		addr, ok, err := registry.DeployedAddress(ctx, contract)
		switch {
		case err != nil:
			fmt.Printf("%-16s error: %v\n", contract, err)
		case !ok:
			fmt.Printf("%-16s not deployed\n", contract)
		default:
			fmt.Printf("%-16s %s\n", contract, addr.Hex())
		}
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatal(err)
	}
	netCfg, err := cat.For(n)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\n=== Timelock roles (wildcard=%t) ===\n", n.UsesWildcardRoles())
	for _, entry := range governance.TimelockOraclePermissions(netCfg.Addresses.Timelock) {
		fmt.Printf("%s  %s\n", governance.RoleID(n.UsesWildcardRoles(), entry.Target, entry.Method).Hex(), entry.Method)
	}

	fmt.Printf("\nProviders referenced by the catalog: %v\n", netCfg.NomosToDeploy())
}
