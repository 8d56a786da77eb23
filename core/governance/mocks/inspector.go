package mocks

import (
	"context"

	"nomo-governance/core/governance"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
)

// Inspector is a mock implementation of governance.StateInspector
type Inspector struct {
	mock.Mock
}

func (m *Inspector) HasRole(ctx context.Context, acm common.Address, role common.Hash, caller common.Address) (bool, error) {
	args := m.Called(ctx, acm, role, caller)
	return args.Bool(0), args.Error(1)
}

func (m *Inspector) OwnerOf(ctx context.Context, contract common.Address) (common.Address, error) {
	args := m.Called(ctx, contract)
	if addr, ok := args.Get(0).(common.Address); ok {
		return addr, args.Error(1)
	}
	return common.Address{}, args.Error(1)
}

// AppliedInspector additionally implements governance.AppliedChecker
type AppliedInspector struct {
	Inspector
}

func (m *AppliedInspector) Applied(ctx context.Context, cmd governance.Command) (bool, error) {
	args := m.Called(ctx, cmd)
	return args.Bool(0), args.Error(1)
}

// Registry is a mock implementation of governance.DeploymentRegistry
type Registry struct {
	mock.Mock
}

func (m *Registry) DeployedAddress(ctx context.Context, name string) (common.Address, bool, error) {
	args := m.Called(ctx, name)
	if addr, ok := args.Get(0).(common.Address); ok {
		return addr, args.Bool(1), args.Error(2)
	}
	return common.Address{}, args.Bool(1), args.Error(2)
}

// NewRegistry returns a registry that knows exactly the given deployments.
func NewRegistry(deployed map[string]common.Address) *Registry {
	r := new(Registry)
	for name, addr := range deployed {
		r.On("DeployedAddress", mock.Anything, name).Return(addr, true, nil)
	}
	r.On("DeployedAddress", mock.Anything, mock.Anything).Return(common.Address{}, false, nil)
	return r
}
