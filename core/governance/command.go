package governance

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Tuple is an ordered struct argument, encoded as an ABI tuple.
type Tuple []any

// Command is one administrative call the timelock must execute.
// Commands are built by the planners and never modified afterwards.
type Command struct {
	target     common.Address
	signature  string
	parameters []any
	value      *big.Int
}

// NewCommand returns a zero-value call of signature on target.
func NewCommand(target common.Address, signature string, parameters ...any) Command {
	params := make([]any, len(parameters))
	copy(params, parameters)
	return Command{
		target:     target,
		signature:  signature,
		parameters: params,
		value:      new(big.Int),
	}
}

// Target returns the contract the command is sent to.
func (c Command) Target() common.Address { return c.target }

// Signature returns the canonical function signature, e.g. "acceptOwnership()".
func (c Command) Signature() string { return c.signature }

// Parameters returns a copy of the call arguments.
func (c Command) Parameters() []any {
	out := make([]any, len(c.parameters))
	copy(out, c.parameters)
	return out
}

// Value returns the native amount sent with the call.
func (c Command) Value() *big.Int {
	if c.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(c.value)
}

// String renders the command as "target.signature(args)".
func (c Command) String() string {
	args := make([]string, len(c.parameters))
	for i, p := range c.parameters {
		args[i] = renderValue(p)
	}
	name := c.signature
	if idx := strings.IndexByte(name, '('); idx >= 0 {
		name = name[:idx]
	}
	return fmt.Sprintf("%s.%s(%s)", c.target.Hex(), name, strings.Join(args, ", "))
}

type commandJSON struct {
	Target     string `json:"target"`
	Signature  string `json:"signature"`
	Parameters []any  `json:"parameters"`
	Value      string `json:"value"`
}

// MarshalJSON renders addresses and hashes as hex and integers as decimal
// strings.
func (c Command) MarshalJSON() ([]byte, error) {
	params := make([]any, len(c.parameters))
	for i, p := range c.parameters {
		params[i] = jsonValue(p)
	}
	return json.Marshal(commandJSON{
		Target:     c.target.Hex(),
		Signature:  c.signature,
		Parameters: params,
		Value:      c.Value().String(),
	})
}

func jsonValue(v any) any {
	switch t := v.(type) {
	case common.Address:
		return t.Hex()
	case common.Hash:
		return t.Hex()
	case *big.Int:
		return t.String()
	case uint64:
		return new(big.Int).SetUint64(t).String()
	case Tuple:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = jsonValue(e)
		}
		return out
	case [3]common.Address:
		return []any{t[0].Hex(), t[1].Hex(), t[2].Hex()}
	case [3]bool:
		return []bool{t[0], t[1], t[2]}
	default:
		return v
	}
}

func renderValue(v any) string {
	switch t := v.(type) {
	case string:
		return fmt.Sprintf("%q", t)
	case Tuple:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = renderValue(e)
		}
		return "(" + strings.Join(parts, ",") + ")"
	case [3]common.Address:
		return "[" + t[0].Hex() + "," + t[1].Hex() + "," + t[2].Hex() + "]"
	case [3]bool:
		return fmt.Sprintf("[%t,%t,%t]", t[0], t[1], t[2])
	default:
		return fmt.Sprint(jsonValue(v))
	}
}
