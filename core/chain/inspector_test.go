package chain

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"

	"nomo-governance/core/governance"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCaller answers eth_call by selector.
type fakeCaller struct {
	mu        sync.Mutex
	responses map[[4]byte]func(args []any) ([]byte, error)
	blocks    []*big.Int
	calls     [][]byte
}

func newFakeCaller() *fakeCaller {
	return &fakeCaller{responses: make(map[[4]byte]func(args []any) ([]byte, error))}
}

func (f *fakeCaller) on(parsed abi.ABI, method string, respond func(args []any) ([]any, error)) {
	m := parsed.Methods[method]
	var selector [4]byte
	copy(selector[:], m.ID)
	f.responses[selector] = func(args []any) ([]byte, error) {
		out, err := respond(args)
		if err != nil {
			return nil, err
		}
		return m.Outputs.Pack(out...)
	}
}

func (f *fakeCaller) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeCaller) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.mu.Lock()
	f.blocks = append(f.blocks, blockNumber)
	f.calls = append(f.calls, call.Data)
	f.mu.Unlock()

	var selector [4]byte
	copy(selector[:], call.Data[:4])
	respond, ok := f.responses[selector]
	if !ok {
		return nil, errors.New("execution reverted")
	}
	for _, parsed := range []abi.ABI{accessControl, ownable, feedOracle, pythOracle, binanceOracle, resilientOracle} {
		if m, err := parsed.MethodById(call.Data[:4]); err == nil {
			args, err := m.Inputs.Unpack(call.Data[4:])
			if err != nil {
				return nil, err
			}
			return respond(args)
		}
	}
	return nil, errors.New("unknown selector")
}

var (
	testACM    = common.HexToAddress("0x00000000000000000000000000000000000000ac")
	testOracle = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	testAsset  = common.HexToAddress("0x000000000000000000000000000000000000000a")
	testFeed   = common.HexToAddress("0x000000000000000000000000000000000000fEED")
	testOwner  = common.HexToAddress("0x0000000000000000000000000000000000000071")
)

func TestInspector_HasRole(t *testing.T) {
	caller := newFakeCaller()
	role := governance.RoleID(false, governance.AnyContract, "pause()")
	caller.on(accessControl, "hasRole", func(args []any) ([]any, error) {
		gotRole := args[0].([32]byte)
		return []any{common.Hash(gotRole) == role && args[1].(common.Address) == testOwner}, nil
	})

	inspector := NewInspector(caller)
	inspector.Block = big.NewInt(1234)

	ok, err := inspector.HasRole(context.Background(), testACM, role, testOwner)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = inspector.HasRole(context.Background(), testACM, role, testAsset)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, big.NewInt(1234), caller.blocks[0])
}

func TestInspector_OwnerOf(t *testing.T) {
	caller := newFakeCaller()
	caller.on(ownable, "owner", func(args []any) ([]any, error) {
		return []any{testOwner}, nil
	})

	owner, err := NewInspector(caller).OwnerOf(context.Background(), testOracle)
	require.NoError(t, err)
	assert.Equal(t, testOwner, owner)
}

func TestInspector_CallFailure(t *testing.T) {
	_, err := NewInspector(newFakeCaller()).OwnerOf(context.Background(), testOracle)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "owner")
}

func TestInspector_Applied(t *testing.T) {
	stale := new(big.Int).SetUint64(governance.DefaultStalePeriod)
	pythID := common.HexToHash("0xff61491a931112ddf1bd8147cd1b641375f79f5825126d665480874634fd0ace")

	caller := newFakeCaller()
	caller.on(feedOracle, "prices", func(args []any) ([]any, error) {
		return []any{big.NewInt(1e18)}, nil
	})
	caller.on(feedOracle, "tokenConfigs", func(args []any) ([]any, error) {
		return []any{args[0].(common.Address), testFeed, stale}, nil
	})
	caller.on(binanceOracle, "maxStalePeriod", func(args []any) ([]any, error) {
		if args[0].(string) == "BNB" {
			return []any{stale}, nil
		}
		return []any{new(big.Int)}, nil
	})
	caller.on(resilientOracle, "getTokenConfig", func(args []any) ([]any, error) {
		return []any{resilientTokenConfig{
			Asset:                 args[0].(common.Address),
			Oracles:               [3]common.Address{testOracle},
			EnableFlagsForOracles: [3]bool{true},
		}}, nil
	})

	inspector := NewInspector(caller)
	ctx := context.Background()

	tests := []struct {
		name string
		cmd  governance.Command
		want bool
	}{
		{
			name: "DirectPriceMatches",
			cmd:  governance.NewCommand(testOracle, governance.SigSetDirectPrice, testAsset, big.NewInt(1e18)),
			want: true,
		},
		{
			name: "DirectPriceDiffers",
			cmd:  governance.NewCommand(testOracle, governance.SigSetDirectPrice, testAsset, big.NewInt(2)),
			want: false,
		},
		{
			name: "FeedConfigured",
			cmd:  governance.NewCommand(testOracle, governance.SigSetFeedTokenConfig, governance.Tuple{testAsset, testFeed, stale}),
			want: true,
		},
		{
			name: "FeedDiffers",
			cmd:  governance.NewCommand(testOracle, governance.SigSetFeedTokenConfig, governance.Tuple{testAsset, testOracle, stale}),
			want: false,
		},
		{
			name: "StalePeriodSet",
			cmd:  governance.NewCommand(testOracle, governance.SigSetMaxStalePeriod, "BNB", stale),
			want: true,
		},
		{
			name: "StalePeriodUnset",
			cmd:  governance.NewCommand(testOracle, governance.SigSetMaxStalePeriod, "BTC", stale),
			want: false,
		},
		{
			name: "ResilientWired",
			cmd: governance.NewCommand(testOracle, governance.SigSetResilientTokenConfig,
				governance.Tuple{testAsset, [3]common.Address{testOracle, {}, {}}, [3]bool{true, false, false}}),
			want: true,
		},
		{
			name: "ResilientDiffers",
			cmd: governance.NewCommand(testOracle, governance.SigSetResilientTokenConfig,
				governance.Tuple{testAsset, [3]common.Address{}, [3]bool{}}),
			want: false,
		},
		{
			name: "UnknownSignature",
			cmd:  governance.NewCommand(testOracle, governance.SigAcceptOwnership),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := inspector.Applied(ctx, tt.cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Pyth", func(t *testing.T) {
		pythCaller := newFakeCaller()
		pythCaller.on(pythOracle, "tokenConfigs", func(args []any) ([]any, error) {
			return []any{[32]byte(pythID), args[0].(common.Address), governance.DefaultStalePeriod}, nil
		})
		cmd := governance.NewCommand(testOracle, governance.SigSetPythTokenConfig,
			governance.Tuple{pythID, testAsset, governance.DefaultStalePeriod})

		got, err := NewInspector(pythCaller).Applied(ctx, cmd)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("MalformedParameters", func(t *testing.T) {
		_, err := inspector.Applied(ctx, governance.NewCommand(testOracle, governance.SigSetDirectPrice, testAsset))
		assert.Error(t, err)

		_, err = inspector.Applied(ctx, governance.NewCommand(testOracle, governance.SigSetFeedTokenConfig, testAsset))
		assert.Error(t, err)
	})
}

func TestInspector_ImplementsGovernanceInterfaces(t *testing.T) {
	var _ governance.StateInspector = (*Inspector)(nil)
	var _ governance.AppliedChecker = (*Inspector)(nil)
}

func TestDial_RequiresURL(t *testing.T) {
	_, err := Dial(context.Background(), Config{}, "bsctestnet")
	assert.Error(t, err)
}
