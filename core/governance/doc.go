// Package governance computes the administrative commands that bring the
// deployed oracle contracts of a network in line with its catalog.
//
// A Planner compares the catalog with live state read through a
// StateInspector and a DeploymentRegistry and returns an ordered list of
// Commands. It never submits anything: the list is meant to be batched into a
// timelock proposal (see BuildProposal) or printed as a dry-run report.
//
// # Sub-planners
//
//   - PlanAccessControlGrants: giveCallPermission for every policy entry whose
//     role is not held yet. Role checks run concurrently, output keeps policy
//     order.
//   - PlanOwnershipAcceptance: acceptOwnership for deployed contracts not yet
//     owned by the timelock. Skipped on non-live networks.
//   - PlanPriceFeedConfiguration: the provider-specific configuration call of
//     each asset plus the unconditional ResilientNomo wiring.
//
// Plan composes them in that order. Later commands may depend on earlier
// ones, so the order must be kept on submission.
//
// # Roles
//
// RoleID reproduces the access control manager's role hashing. On networks
// where Network.UsesWildcardRoles is true, an AnyContract target hashes
// against a zero bytes32 rather than the zero address.
//
// # Errors
//
// Failures wrap ErrConfiguration, ErrMissingDeployment or ErrInspection and can
// be matched with errors.Is. A failed run returns no commands and is safe to
// repeat.
package governance
