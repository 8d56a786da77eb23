package governance

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// AnyContract is the target used by permissions that apply to every contract.
var AnyContract = common.Address{}

// RoleID derives the access control role for calling method on target.
//
// With wildcardAddressing set, an AnyContract target hashes against a zero
// bytes32 instead of the zero address, matching the manager deployed on
// networks that support global permissions. Non-zero targets hash the same way
// in both modes: keccak256(abi.encodePacked(target, method)).
func RoleID(wildcardAddressing bool, target common.Address, method string) common.Hash {
	if wildcardAddressing && target == AnyContract {
		return crypto.Keccak256Hash(common.Hash{}.Bytes(), []byte(method))
	}
	return crypto.Keccak256Hash(target.Bytes(), []byte(method))
}
