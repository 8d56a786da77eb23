package governance_test

import (
	"encoding/hex"
	"math/big"
	"testing"

	"nomo-governance/core/governance"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector(t *testing.T) {
	assert.Equal(t, "79ba5097", hex.EncodeToString(governance.Selector("acceptOwnership()")))
	assert.Equal(t, "f2fde38b", hex.EncodeToString(governance.Selector("transferOwnership(address)")))
}

func TestParseSignature(t *testing.T) {
	name, args, err := governance.ParseSignature("setTokenConfig((address,address[3],bool[3]))")
	require.NoError(t, err)
	assert.Equal(t, "setTokenConfig", name)
	require.Len(t, args, 1)
	assert.Equal(t, "(address,address[3],bool[3])", args[0].Type.String())

	name, args, err = governance.ParseSignature("acceptOwnership()")
	require.NoError(t, err)
	assert.Equal(t, "acceptOwnership", name)
	assert.Empty(t, args)

	for _, bad := range []string{"", "noParens", "f(address", "f((address)", "f(address,)", "f(notatype)"} {
		_, _, err := governance.ParseSignature(bad)
		assert.Error(t, err, bad)
	}
}

func TestEncodeArguments(t *testing.T) {
	t.Run("NoArguments", func(t *testing.T) {
		encoded, err := governance.EncodeArguments(governance.NewCommand(resilientAddr, "acceptOwnership()"))
		require.NoError(t, err)
		assert.Empty(t, encoded)
	})

	t.Run("FeedTokenConfig", func(t *testing.T) {
		cmd := governance.NewCommand(chainlinkAddr, governance.SigSetFeedTokenConfig,
			governance.Tuple{bnbAddr, feedAddr, new(big.Int).SetUint64(86400)})
		encoded, err := governance.EncodeArguments(cmd)
		require.NoError(t, err)
		require.Len(t, encoded, 3*32)
		assert.Equal(t, common.LeftPadBytes(bnbAddr.Bytes(), 32), encoded[:32])
		assert.Equal(t, common.LeftPadBytes(feedAddr.Bytes(), 32), encoded[32:64])
		assert.Equal(t, common.LeftPadBytes(big.NewInt(86400).Bytes(), 32), encoded[64:])
	})

	t.Run("ResilientWiring", func(t *testing.T) {
		cmd := governance.NewCommand(resilientAddr, governance.SigSetResilientTokenConfig,
			governance.Tuple{bnbAddr, [3]common.Address{chainlinkAddr, {}, {}}, [3]bool{true, false, false}})
		encoded, err := governance.EncodeArguments(cmd)
		require.NoError(t, err)
		require.Len(t, encoded, 7*32)
		assert.Equal(t, common.LeftPadBytes(chainlinkAddr.Bytes(), 32), encoded[32:64])
		assert.Equal(t, byte(1), encoded[4*32+31])
		assert.Equal(t, byte(0), encoded[5*32+31])
	})

	t.Run("PythTokenConfig", func(t *testing.T) {
		id := common.HexToHash("0xff61491a931112ddf1bd8147cd1b641375f79f5825126d665480874634fd0ace")
		cmd := governance.NewCommand(pythAddr, governance.SigSetPythTokenConfig, governance.Tuple{id, bnbAddr, uint64(86400)})
		encoded, err := governance.EncodeArguments(cmd)
		require.NoError(t, err)
		require.Len(t, encoded, 3*32)
		assert.Equal(t, id.Bytes(), encoded[:32])
	})

	t.Run("DynamicString", func(t *testing.T) {
		cmd := governance.NewCommand(acmAddr, governance.SigGiveCallPermission, governance.AnyContract, "pause()", timelockAddr)
		encoded, err := governance.EncodeArguments(cmd)
		require.NoError(t, err)
		// head (3 words) + length word + one data word
		require.Len(t, encoded, 5*32)
		assert.Equal(t, common.LeftPadBytes(big.NewInt(96).Bytes(), 32), encoded[32:64])
		assert.Equal(t, []byte("pause()"), encoded[4*32:4*32+7])
	})

	t.Run("Mismatches", func(t *testing.T) {
		_, err := governance.EncodeArguments(governance.NewCommand(acmAddr, "pause()", "extra"))
		assert.Error(t, err)

		_, err = governance.EncodeArguments(governance.NewCommand(acmAddr, governance.SigSetDirectPrice, bnbAddr, "not a number"))
		assert.Error(t, err)

		_, err = governance.EncodeArguments(governance.NewCommand(acmAddr, governance.SigSetDirectPrice, bnbAddr, big.NewInt(-1)))
		assert.Error(t, err)
	})
}

func TestCalldata(t *testing.T) {
	data, err := governance.Calldata(governance.NewCommand(resilientAddr, "acceptOwnership()"))
	require.NoError(t, err)
	assert.Equal(t, "79ba5097", hex.EncodeToString(data))
}

func TestBuildProposal(t *testing.T) {
	cmds := []governance.Command{
		governance.NewCommand(acmAddr, governance.SigGiveCallPermission, governance.AnyContract, "pause()", timelockAddr),
		governance.NewCommand(resilientAddr, governance.SigAcceptOwnership),
	}

	proposal, err := governance.BuildProposal(cmds, "oracle configuration")
	require.NoError(t, err)
	assert.Equal(t, 2, proposal.Len())
	assert.Equal(t, []common.Address{acmAddr, resilientAddr}, proposal.Targets)
	assert.Equal(t, []string{"0", "0"}, proposal.Values)
	assert.Equal(t, []string{governance.SigGiveCallPermission, governance.SigAcceptOwnership}, proposal.Signatures)
	assert.Len(t, proposal.Calldatas[0], 5*32)
	assert.Empty(t, proposal.Calldatas[1])

	_, err = governance.BuildProposal([]governance.Command{governance.NewCommand(acmAddr, "pause(", nil)}, "")
	assert.Error(t, err)
}
