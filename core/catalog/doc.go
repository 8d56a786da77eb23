// Package catalog describes the desired price-feed state of every supported
// network: the address book (access control manager, timelock, core tokens),
// the per-provider feed tables and the ordered list of assets.
//
// Catalogs are loaded from YAML and converted into typed, validated
// NetworkConfig values keyed by network.Network. Nothing in the package talks
// to a chain.
//
// # File layout
//
//	networks:
//	  bscmainnet:
//	    addresses:
//	      acm: "0x4788629ABc6cFCA10F9f969efdEAa1cF70c23555"
//	      timelock: "0x939bD8d64c0A9583A7Dcea9933f7b21697ab6396"
//	    feeds:
//	      chainlink:
//	        BNB: "0x0567F2323251f0Aab15c8dFb1967E4e8A7D42aeE"
//	    assets:
//	      - token: BNB
//	        address: "0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c"
//	        nomo: chainlink
//
// # Usage
//
//	cat, err := catalog.Load("configs/catalog.yaml")
//	cfg, err := cat.For(network.Hardhat) // bsctestnet configuration, hardhat identity
package catalog
