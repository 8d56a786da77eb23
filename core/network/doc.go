// Package network enumerates the deployment targets the governance planner
// understands.
//
// Network identities are a closed set. Parse rejects anything outside of it,
// with the single exception of the local "hardhat" network, which resolves to
// its own non-live identity but borrows the bsctestnet configuration through
// ConfigKey.
//
// # Usage
//
//	n, err := network.Parse("bscmainnet")
//	if err != nil {
//	    return err
//	}
//	role := governance.RoleID(n.UsesWildcardRoles(), target, method)
package network
