package chain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"nomo-governance/core/governance"
	"nomo-governance/core/network"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Inspector reads access control, ownership and oracle configuration from
// contracts through a JSON-RPC backend.
type Inspector struct {
	caller bind.ContractCaller
	closer func()
	// Block pins reads to a height. Nil reads the latest block.
	Block *big.Int
	// Timeout bounds each read. Zero leaves the caller's context alone.
	Timeout time.Duration
}

// NewInspector returns an inspector reading through caller.
func NewInspector(caller bind.ContractCaller) *Inspector {
	return &Inspector{caller: caller}
}

// Dial connects to the RPC endpoint in cfg and verifies it serves n.
func Dial(ctx context.Context, cfg Config, n network.Network) (*Inspector, error) {
	endpoint := cfg.EndpointFor(n)
	if endpoint == "" {
		return nil, fmt.Errorf("no rpc url configured for %s", n)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	dialCtx, cancel := context.WithTimeout(ctx, timeoutDuration)
	defer cancel()

	client, err := ethclient.DialContext(dialCtx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rpc: %w", err)
	}

	if want := n.ChainID(); want != 0 {
		got, err := client.ChainID(dialCtx)
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to read chain id: %w", err)
		}
		if got.Uint64() != want {
			client.Close()
			return nil, fmt.Errorf("rpc serves chain %s, %s is %d", got, n, want)
		}
	}

	inspector := &Inspector{caller: client, closer: client.Close, Timeout: timeoutDuration}

	if cfg.PinBlock {
		head, err := client.BlockNumber(dialCtx)
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to read block number: %w", err)
		}
		inspector.Block = new(big.Int).SetUint64(head)
	}

	return inspector, nil
}

// Close releases the RPC connection opened by Dial.
func (i *Inspector) Close() {
	if i.closer != nil {
		i.closer()
	}
}

// HasRole reports whether caller holds role on the access control manager acm.
func (i *Inspector) HasRole(ctx context.Context, acm common.Address, role common.Hash, caller common.Address) (bool, error) {
	out, err := i.call(ctx, acm, accessControl, "hasRole", role, caller)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// OwnerOf returns the current owner of contract.
func (i *Inspector) OwnerOf(ctx context.Context, contract common.Address) (common.Address, error) {
	out, err := i.call(ctx, contract, ownable, "owner")
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

type resilientTokenConfig struct {
	Asset                 common.Address
	Oracles               [3]common.Address
	EnableFlagsForOracles [3]bool
}

// Applied reports whether the effect of cmd is already visible on chain.
// Commands it does not know how to check are reported as not applied.
func (i *Inspector) Applied(ctx context.Context, cmd governance.Command) (bool, error) {
	params := cmd.Parameters()

	switch cmd.Signature() {
	case governance.SigSetDirectPrice:
		if len(params) != 2 {
			return false, malformed(cmd)
		}
		asset, ok1 := params[0].(common.Address)
		want, ok2 := params[1].(*big.Int)
		if !ok1 || !ok2 {
			return false, malformed(cmd)
		}
		out, err := i.call(ctx, cmd.Target(), feedOracle, "prices", asset)
		if err != nil {
			return false, err
		}
		got := abi.ConvertType(out[0], new(big.Int)).(*big.Int)
		return got.Cmp(want) == 0, nil

	case governance.SigSetFeedTokenConfig:
		tuple, err := singleTuple(cmd, 3)
		if err != nil {
			return false, err
		}
		asset, ok1 := tuple[0].(common.Address)
		feed, ok2 := tuple[1].(common.Address)
		stale, ok3 := tuple[2].(*big.Int)
		if !ok1 || !ok2 || !ok3 {
			return false, malformed(cmd)
		}
		out, err := i.call(ctx, cmd.Target(), feedOracle, "tokenConfigs", asset)
		if err != nil {
			return false, err
		}
		gotAsset := *abi.ConvertType(out[0], new(common.Address)).(*common.Address)
		gotFeed := *abi.ConvertType(out[1], new(common.Address)).(*common.Address)
		gotStale := abi.ConvertType(out[2], new(big.Int)).(*big.Int)
		return gotAsset == asset && gotFeed == feed && gotStale.Cmp(stale) == 0, nil

	case governance.SigSetPythTokenConfig:
		tuple, err := singleTuple(cmd, 3)
		if err != nil {
			return false, err
		}
		id, ok1 := tuple[0].(common.Hash)
		asset, ok2 := tuple[1].(common.Address)
		stale, ok3 := tuple[2].(uint64)
		if !ok1 || !ok2 || !ok3 {
			return false, malformed(cmd)
		}
		out, err := i.call(ctx, cmd.Target(), pythOracle, "tokenConfigs", asset)
		if err != nil {
			return false, err
		}
		gotID := *abi.ConvertType(out[0], new([32]byte)).(*[32]byte)
		gotAsset := *abi.ConvertType(out[1], new(common.Address)).(*common.Address)
		gotStale := *abi.ConvertType(out[2], new(uint64)).(*uint64)
		return common.Hash(gotID) == id && gotAsset == asset && gotStale == stale, nil

	case governance.SigSetMaxStalePeriod:
		if len(params) != 2 {
			return false, malformed(cmd)
		}
		symbol, ok1 := params[0].(string)
		want, ok2 := params[1].(*big.Int)
		if !ok1 || !ok2 {
			return false, malformed(cmd)
		}
		out, err := i.call(ctx, cmd.Target(), binanceOracle, "maxStalePeriod", symbol)
		if err != nil {
			return false, err
		}
		got := abi.ConvertType(out[0], new(big.Int)).(*big.Int)
		return got.Cmp(want) == 0, nil

	case governance.SigSetResilientTokenConfig:
		tuple, err := singleTuple(cmd, 3)
		if err != nil {
			return false, err
		}
		asset, ok1 := tuple[0].(common.Address)
		oracles, ok2 := tuple[1].([3]common.Address)
		flags, ok3 := tuple[2].([3]bool)
		if !ok1 || !ok2 || !ok3 {
			return false, malformed(cmd)
		}
		out, err := i.call(ctx, cmd.Target(), resilientOracle, "getTokenConfig", asset)
		if err != nil {
			return false, err
		}
		got := abi.ConvertType(out[0], new(resilientTokenConfig)).(*resilientTokenConfig)
		return got.Asset == asset && got.Oracles == oracles && got.EnableFlagsForOracles == flags, nil

	default:
		return false, nil
	}
}

func (i *Inspector) call(ctx context.Context, contract common.Address, parsed abi.ABI, method string, args ...any) ([]any, error) {
	if i.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.Timeout)
		defer cancel()
	}

	bound := bind.NewBoundContract(contract, parsed, i.caller, nil, nil)
	opts := &bind.CallOpts{Context: ctx, BlockNumber: i.Block}

	var out []any
	if err := bound.Call(opts, &out, method, args...); err != nil {
		return nil, fmt.Errorf("failed to call %s on %s: %w", method, contract.Hex(), err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty result from %s on %s", method, contract.Hex())
	}
	return out, nil
}

func singleTuple(cmd governance.Command, fields int) (governance.Tuple, error) {
	params := cmd.Parameters()
	if len(params) != 1 {
		return nil, malformed(cmd)
	}
	tuple, ok := params[0].(governance.Tuple)
	if !ok || len(tuple) != fields {
		return nil, malformed(cmd)
	}
	return tuple, nil
}

func malformed(cmd governance.Command) error {
	return fmt.Errorf("unexpected parameters for %s", cmd.Signature())
}
