package governance

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// StateInspector answers read-only questions about live chain state.
// Implementations must not cache answers across calls: earlier commands of a
// submitted plan may have changed the state.
type StateInspector interface {
	// HasRole reports whether caller holds role on the access control manager.
	HasRole(ctx context.Context, acm common.Address, role common.Hash, caller common.Address) (bool, error)
	// OwnerOf returns the current owner of contract.
	OwnerOf(ctx context.Context, contract common.Address) (common.Address, error)
}

// AppliedChecker is implemented by inspectors that can read back the
// configuration a price-feed command would set. Planners consult it only when
// Planner.SkipApplied is enabled.
type AppliedChecker interface {
	Applied(ctx context.Context, cmd Command) (bool, error)
}

// DeploymentRegistry resolves contract names to their recorded deployments.
type DeploymentRegistry interface {
	// DeployedAddress returns ok=false when name was never deployed.
	DeployedAddress(ctx context.Context, name string) (addr common.Address, ok bool, err error)
}
