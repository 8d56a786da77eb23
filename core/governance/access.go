package governance

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SigGiveCallPermission is the access control manager's grant function.
const SigGiveCallPermission = "giveCallPermission(address,string,address)"

// AccessControlEntry is one desired permission: caller may invoke method on
// target. Target AnyContract grants the method on every contract.
type AccessControlEntry struct {
	Caller common.Address `json:"caller"`
	Target common.Address `json:"target"`
	Method string         `json:"method"`
}

// oracleMethods are the oracle administration methods the timelock needs.
var oracleMethods = []string{
	"pause()",
	"unpause()",
	"setNomo(address,address,uint8)",
	"enableNomo(address,uint8,bool)",
	"setTokenConfig(TokenConfig)",
	"setDirectPrice(address,uint256)",
	"setValidateConfig(ValidateConfig)",
	"setMaxStalePeriod(string,uint256)",
	"setSymbolOverride(string,string)",
	"setUnderlyingPythNomo(address)",
}

// TimelockOraclePermissions returns the policy granting timelock every oracle
// administration method on any contract.
func TimelockOraclePermissions(timelock common.Address) []AccessControlEntry {
	entries := make([]AccessControlEntry, len(oracleMethods))
	for i, method := range oracleMethods {
		entries[i] = AccessControlEntry{Caller: timelock, Target: AnyContract, Method: method}
	}
	return entries
}

type grantKey struct {
	role   common.Hash
	caller common.Address
}

// uniqueEntries drops entries whose (role, caller) pair appeared earlier.
func uniqueEntries(wildcard bool, policy []AccessControlEntry) []AccessControlEntry {
	seen := make(map[grantKey]struct{}, len(policy))
	out := make([]AccessControlEntry, 0, len(policy))
	for _, entry := range policy {
		key := grantKey{role: RoleID(wildcard, entry.Target, entry.Method), caller: entry.Caller}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, entry)
	}
	return out
}

// PlanAccessControlGrants returns one giveCallPermission command per policy
// entry that is not granted yet, in policy order. Entries resolving to the same
// role and caller are planned once. Role checks run concurrently.
func (p *Planner) PlanAccessControlGrants(ctx context.Context, policy []AccessControlEntry) ([]Command, error) {
	if len(policy) == 0 {
		return nil, nil
	}
	acm := p.Config.Addresses.ACM
	if acm == (common.Address{}) {
		return nil, configErrorf("no access control manager address for %s", p.Config.Network)
	}

	wildcard := p.Config.Network.UsesWildcardRoles()
	policy = uniqueEntries(wildcard, policy)
	granted := make([]bool, len(policy))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency())
	for i, entry := range policy {
		g.Go(func() error {
			role := RoleID(wildcard, entry.Target, entry.Method)
			ok, err := p.Inspector.HasRole(gctx, acm, role, entry.Caller)
			if err != nil {
				return inspectionError("hasRole "+entry.Method, err)
			}
			granted[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	l := p.logger()
	var commands []Command
	for i, entry := range policy {
		if granted[i] {
			l.Debug("Permission already granted",
				zap.String("caller", entry.Caller.Hex()),
				zap.String("target", entry.Target.Hex()),
				zap.String("method", entry.Method),
			)
			continue
		}
		commands = append(commands, NewCommand(acm, SigGiveCallPermission, entry.Target, entry.Method, entry.Caller))
	}
	return commands, nil
}
