package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const accessControlABI = `[
	{"type":"function","name":"hasRole","stateMutability":"view",
	 "inputs":[{"name":"role","type":"bytes32"},{"name":"account","type":"address"}],
	 "outputs":[{"name":"","type":"bool"}]}
]`

const ownableABI = `[
	{"type":"function","name":"owner","stateMutability":"view",
	 "inputs":[],
	 "outputs":[{"name":"","type":"address"}]}
]`

// feedOracleABI covers ChainlinkNomo and RedStoneNomo, which share a layout.
const feedOracleABI = `[
	{"type":"function","name":"tokenConfigs","stateMutability":"view",
	 "inputs":[{"name":"","type":"address"}],
	 "outputs":[{"name":"asset","type":"address"},{"name":"feed","type":"address"},{"name":"maxStalePeriod","type":"uint256"}]},
	{"type":"function","name":"prices","stateMutability":"view",
	 "inputs":[{"name":"","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]}
]`

const pythOracleABI = `[
	{"type":"function","name":"tokenConfigs","stateMutability":"view",
	 "inputs":[{"name":"","type":"address"}],
	 "outputs":[{"name":"pythId","type":"bytes32"},{"name":"asset","type":"address"},{"name":"maxStalePeriod","type":"uint64"}]}
]`

const binanceOracleABI = `[
	{"type":"function","name":"maxStalePeriod","stateMutability":"view",
	 "inputs":[{"name":"","type":"string"}],
	 "outputs":[{"name":"","type":"uint256"}]}
]`

const resilientOracleABI = `[
	{"type":"function","name":"getTokenConfig","stateMutability":"view",
	 "inputs":[{"name":"asset","type":"address"}],
	 "outputs":[{"name":"","type":"tuple","components":[
		{"name":"asset","type":"address"},
		{"name":"oracles","type":"address[3]"},
		{"name":"enableFlagsForOracles","type":"bool[3]"}]}]}
]`

var (
	accessControl   = mustParseABI(accessControlABI)
	ownable         = mustParseABI(ownableABI)
	feedOracle      = mustParseABI(feedOracleABI)
	pythOracle      = mustParseABI(pythOracleABI)
	binanceOracle   = mustParseABI(binanceOracleABI)
	resilientOracle = mustParseABI(resilientOracleABI)
)

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(err)
	}
	return parsed
}
