package network

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown is returned by Parse for identities outside the supported set.
var ErrUnknown = errors.New("unknown network")

// Network identifies a deployment target.
type Network string

const (
	BSCTestnet   Network = "bsctestnet"
	BSCMainnet   Network = "bscmainnet"
	Sepolia      Network = "sepolia"
	Ethereum     Network = "ethereum"
	OpBNBTestnet Network = "opbnbtestnet"
	OpBNBMainnet Network = "opbnbmainnet"

	// Hardhat is the ephemeral local network used for development runs.
	Hardhat Network = "hardhat"
)

// All returns every supported network in a stable order.
func All() []Network {
	return []Network{BSCTestnet, BSCMainnet, Sepolia, Ethereum, OpBNBTestnet, OpBNBMainnet, Hardhat}
}

// Parse resolves a network name. Matching is case-insensitive.
func Parse(name string) (Network, error) {
	n := Network(strings.ToLower(strings.TrimSpace(name)))
	if n.IsValid() {
		return n, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknown, name)
}

// IsValid reports whether n is one of the supported networks.
func (n Network) IsValid() bool {
	switch n {
	case BSCTestnet, BSCMainnet, Sepolia, Ethereum, OpBNBTestnet, OpBNBMainnet, Hardhat:
		return true
	default:
		return false
	}
}

// IsLive reports whether state changes on n are persistent.
func (n Network) IsLive() bool {
	return n.IsValid() && n != Hardhat
}

// ConfigKey returns the network whose catalog and address book apply to n.
// The local network runs against the bsctestnet configuration.
func (n Network) ConfigKey() Network {
	if n == Hardhat {
		return BSCTestnet
	}
	return n
}

// UsesWildcardRoles reports whether the access control manager deployed on n
// hashes "any contract" permissions against a zero bytes32 instead of the
// zero address.
// TODO: confirm the ACM version on opbnbmainnet and ethereum before adding them here.
func (n Network) UsesWildcardRoles() bool {
	return n == BSCMainnet
}

// ChainID returns the EIP-155 chain id of n. The local network reports 0
// since forks keep the id of whatever they were started from.
func (n Network) ChainID() uint64 {
	switch n {
	case BSCTestnet:
		return 97
	case BSCMainnet:
		return 56
	case Sepolia:
		return 11155111
	case Ethereum:
		return 1
	case OpBNBTestnet:
		return 5611
	case OpBNBMainnet:
		return 204
	default:
		return 0
	}
}

func (n Network) String() string {
	return string(n)
}
