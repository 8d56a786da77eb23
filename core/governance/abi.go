package governance

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
)

// ParseSignature splits a canonical signature such as
// "setTokenConfig((address,address[3],bool[3]))" into its name and ABI
// argument list.
func ParseSignature(signature string) (string, abi.Arguments, error) {
	sig := strings.ReplaceAll(signature, " ", "")
	open := strings.IndexByte(sig, '(')
	if open <= 0 || !strings.HasSuffix(sig, ")") {
		return "", nil, fmt.Errorf("malformed signature %q", signature)
	}
	name := sig[:open]

	parts, err := splitTopLevel(sig[open+1 : len(sig)-1])
	if err != nil {
		return "", nil, fmt.Errorf("signature %q: %w", signature, err)
	}

	args := make(abi.Arguments, 0, len(parts))
	for i, part := range parts {
		marshaling, err := parseTypeMarshaling(part, fmt.Sprintf("arg%d", i))
		if err != nil {
			return "", nil, fmt.Errorf("signature %q: %w", signature, err)
		}
		typ, err := abi.NewType(marshaling.Type, "", marshaling.Components)
		if err != nil {
			return "", nil, fmt.Errorf("signature %q: %w", signature, err)
		}
		args = append(args, abi.Argument{Name: marshaling.Name, Type: typ})
	}
	return name, args, nil
}

// Selector returns the 4-byte function selector of signature.
func Selector(signature string) []byte {
	return crypto.Keccak256([]byte(strings.ReplaceAll(signature, " ", "")))[:4]
}

// EncodeArguments ABI-encodes the command parameters against its signature,
// without the selector.
func EncodeArguments(cmd Command) ([]byte, error) {
	_, args, err := ParseSignature(cmd.signature)
	if err != nil {
		return nil, err
	}
	if len(args) != len(cmd.parameters) {
		return nil, fmt.Errorf("%s: expected %d parameters, got %d", cmd.signature, len(args), len(cmd.parameters))
	}

	values := make([]any, len(args))
	for i, arg := range args {
		v, err := coerce(arg.Type, cmd.parameters[i])
		if err != nil {
			return nil, fmt.Errorf("%s: parameter %d: %w", cmd.signature, i, err)
		}
		values[i] = v.Interface()
	}

	packed, err := args.Pack(values...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cmd.signature, err)
	}
	return packed, nil
}

// Calldata returns selector followed by the encoded arguments.
func Calldata(cmd Command) ([]byte, error) {
	encoded, err := EncodeArguments(cmd)
	if err != nil {
		return nil, err
	}
	return append(Selector(cmd.signature), encoded...), nil
}

func splitTopLevel(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced parentheses")
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses")
	}
	parts = append(parts, s[start:])
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("empty type")
		}
	}
	return parts, nil
}

// parseTypeMarshaling turns "(address,uint256)[3]" into a tuple marshaling
// with generated component names; plain types pass through.
func parseTypeMarshaling(typ, name string) (abi.ArgumentMarshaling, error) {
	if !strings.HasPrefix(typ, "(") {
		return abi.ArgumentMarshaling{Name: name, Type: typ}, nil
	}

	closing := strings.LastIndexByte(typ, ')')
	if closing < 0 {
		return abi.ArgumentMarshaling{}, fmt.Errorf("unbalanced tuple %q", typ)
	}
	inner, suffix := typ[1:closing], typ[closing+1:]

	parts, err := splitTopLevel(inner)
	if err != nil {
		return abi.ArgumentMarshaling{}, err
	}
	components := make([]abi.ArgumentMarshaling, 0, len(parts))
	for i, part := range parts {
		c, err := parseTypeMarshaling(part, fmt.Sprintf("f%d", i))
		if err != nil {
			return abi.ArgumentMarshaling{}, err
		}
		components = append(components, c)
	}
	return abi.ArgumentMarshaling{Name: name, Type: "tuple" + suffix, Components: components}, nil
}

// coerce converts a planner value into the exact Go type abi.Pack expects for t.
func coerce(t abi.Type, v any) (reflect.Value, error) {
	switch t.T {
	case abi.TupleTy:
		tuple, ok := v.(Tuple)
		if !ok {
			return reflect.Value{}, fmt.Errorf("expected tuple, got %T", v)
		}
		if len(tuple) != len(t.TupleElems) {
			return reflect.Value{}, fmt.Errorf("expected %d tuple fields, got %d", len(t.TupleElems), len(tuple))
		}
		out := reflect.New(t.TupleType).Elem()
		for i, elem := range t.TupleElems {
			fv, err := coerce(*elem, tuple[i])
			if err != nil {
				return reflect.Value{}, fmt.Errorf("field %d: %w", i, err)
			}
			out.Field(i).Set(fv)
		}
		return out, nil

	case abi.ArrayTy, abi.SliceTy:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Array && rv.Kind() != reflect.Slice {
			return reflect.Value{}, fmt.Errorf("expected list, got %T", v)
		}
		want := t.GetType()
		var out reflect.Value
		if t.T == abi.ArrayTy {
			if rv.Len() != t.Size {
				return reflect.Value{}, fmt.Errorf("expected %d elements, got %d", t.Size, rv.Len())
			}
			out = reflect.New(want).Elem()
		} else {
			out = reflect.MakeSlice(want, rv.Len(), rv.Len())
		}
		for i := 0; i < rv.Len(); i++ {
			ev, err := coerce(*t.Elem, rv.Index(i).Interface())
			if err != nil {
				return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			out.Index(i).Set(ev)
		}
		return out, nil

	case abi.UintTy, abi.IntTy:
		n, err := toBigInt(v)
		if err != nil {
			return reflect.Value{}, err
		}
		if t.T == abi.UintTy && n.Sign() < 0 {
			return reflect.Value{}, fmt.Errorf("negative value %s for %s", n, t)
		}
		if n.BitLen() > t.Size {
			return reflect.Value{}, fmt.Errorf("value %s overflows %s", n, t)
		}
		if t.Size > 64 {
			return reflect.ValueOf(n), nil
		}
		if t.T == abi.UintTy {
			return reflect.ValueOf(n.Uint64()).Convert(t.GetType()), nil
		}
		return reflect.ValueOf(n.Int64()).Convert(t.GetType()), nil

	default:
		rv := reflect.ValueOf(v)
		if !rv.IsValid() {
			return reflect.Value{}, fmt.Errorf("nil value for %s", t)
		}
		want := t.GetType()
		if rv.Type() == want {
			return rv, nil
		}
		if rv.Type().ConvertibleTo(want) {
			return rv.Convert(want), nil
		}
		return reflect.Value{}, fmt.Errorf("cannot use %T as %s", v, t)
	}
}

func toBigInt(v any) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		if n == nil {
			return nil, fmt.Errorf("nil integer")
		}
		return new(big.Int).Set(n), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint:
		return new(big.Int).SetUint64(uint64(n)), nil
	case int64:
		return big.NewInt(n), nil
	case int:
		return big.NewInt(int64(n)), nil
	default:
		return nil, fmt.Errorf("expected integer, got %T", v)
	}
}
