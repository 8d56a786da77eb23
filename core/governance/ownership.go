package governance

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SigAcceptOwnership completes a two-step ownership transfer.
const SigAcceptOwnership = "acceptOwnership()"

// PlanOwnershipAcceptance returns an acceptOwnership command for contractName
// unless targetOwner already owns it. Non-live networks and contracts without
// a deployment yield no commands.
func (p *Planner) PlanOwnershipAcceptance(ctx context.Context, contractName string, targetOwner common.Address) ([]Command, error) {
	l := p.logger().With(zap.String("contract", contractName))

	if !p.Config.Network.IsLive() {
		return nil, nil
	}

	addr, ok, err := p.Registry.DeployedAddress(ctx, contractName)
	if err != nil {
		return nil, inspectionError("deployment "+contractName, err)
	}
	if !ok {
		l.Debug("Skipping ownership, contract not deployed")
		return nil, nil
	}

	owner, err := p.Inspector.OwnerOf(ctx, addr)
	if err != nil {
		return nil, inspectionError("owner of "+contractName, err)
	}
	if owner == targetOwner {
		l.Debug("Ownership already in place", zap.String("owner", owner.Hex()))
		return nil, nil
	}

	return []Command{NewCommand(addr, SigAcceptOwnership)}, nil
}

// planOwnerships runs PlanOwnershipAcceptance for each contract concurrently
// and concatenates the results in contracts order.
func (p *Planner) planOwnerships(ctx context.Context, contracts []string, targetOwner common.Address) ([]Command, error) {
	results := make([][]Command, len(contracts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency())
	for i, name := range contracts {
		g.Go(func() error {
			cmds, err := p.PlanOwnershipAcceptance(gctx, name, targetOwner)
			if err != nil {
				return err
			}
			results[i] = cmds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var commands []Command
	for _, cmds := range results {
		commands = append(commands, cmds...)
	}
	return commands, nil
}
