package plan

import (
	"context"
	"testing"

	"nomo-governance/core/chain"
	"nomo-governance/core/network"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewChainFactory(t *testing.T) {
	cfg, err := testCatalog().For(network.BSCTestnet)
	require.NoError(t, err)

	t.Run("NoEndpoint", func(t *testing.T) {
		factory := NewChainFactory(ChainOptions{
			Chain: chain.Config{DeploymentsSource: chain.SourceFile, DeploymentsPath: t.TempDir()},
		}, zap.NewNop())

		_, _, err := factory(context.Background(), cfg)
		assert.ErrorContains(t, err, "no rpc url")
	})

	t.Run("BadDeploymentsSource", func(t *testing.T) {
		factory := NewChainFactory(ChainOptions{
			Chain: chain.Config{DeploymentsSource: "ipfs", RPCURL: "http://127.0.0.1:1"},
		}, zap.NewNop())

		_, _, err := factory(context.Background(), cfg)
		assert.ErrorContains(t, err, "deployments")
	})
}
