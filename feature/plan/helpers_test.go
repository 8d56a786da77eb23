package plan

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"nomo-governance/core/catalog"
	"nomo-governance/core/governance"
	govmocks "nomo-governance/core/governance/mocks"
	"nomo-governance/core/network"
	"nomo-governance/feature/plan/models"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var (
	acmAddr       = common.HexToAddress("0x00000000000000000000000000000000000000ac")
	timelockAddr  = common.HexToAddress("0x0000000000000000000000000000000000000071")
	resilientAddr = common.HexToAddress("0x00000000000000000000000000000000000000e1")
	chainlinkAddr = common.HexToAddress("0x00000000000000000000000000000000000000c1")
	bnbAddr       = common.HexToAddress("0x000000000000000000000000000000000000000a")
	feedAddr      = common.HexToAddress("0x000000000000000000000000000000000000fEED")
)

// pendingCommands is what testCatalog yields against an empty chain:
// 10 grants, 2 ownership acceptances and 2 price-feed commands.
const pendingCommands = 14

func testCatalog() *catalog.Catalog {
	return catalog.New(catalog.NetworkConfig{
		Network:        network.BSCTestnet,
		Addresses:      catalog.AddressBook{ACM: acmAddr, Timelock: timelockAddr},
		ChainlinkFeeds: map[string]common.Address{"BNB": feedAddr},
		Assets: []catalog.Asset{
			{Symbol: "BNB", Address: bnbAddr, PriceSource: catalog.SourceChainlink},
		},
	})
}

// stubFactory builds planners over an empty chain with ResilientNomo and
// ChainlinkNomo deployed.
type stubFactory struct {
	calls    atomic.Int32
	released atomic.Int32
	gate     chan struct{}
	err      error
	hasRole  error
}

func (f *stubFactory) build(ctx context.Context, cfg catalog.NetworkConfig) (*governance.Planner, func(), error) {
	f.calls.Add(1)
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return nil, nil, f.err
	}

	inspector := new(govmocks.Inspector)
	inspector.On("HasRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, f.hasRole)
	inspector.On("OwnerOf", mock.Anything, mock.Anything).Return(common.Address{}, nil)

	registry := govmocks.NewRegistry(map[string]common.Address{
		governance.ContractResilientNomo: resilientAddr,
		governance.ContractChainlinkNomo: chainlinkAddr,
	})

	return governance.NewPlanner(cfg, inspector, registry, nil), func() { f.released.Add(1) }, nil
}

// memoryStore keeps records in memory.
type memoryStore struct {
	mu        sync.Mutex
	records   []models.PlanRecord
	lastLimit int
	err       error
}

func (s *memoryStore) Save(ctx context.Context, record *models.PlanRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, *record)
	return nil
}

func (s *memoryStore) History(ctx context.Context, n network.Network, limit int) ([]models.PlanRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastLimit = limit
	var out []models.PlanRecord
	for i := len(s.records) - 1; i >= 0 && len(out) < limit; i-- {
		if s.records[i].Network == n.String() {
			out = append(out, s.records[i])
		}
	}
	return out, nil
}

func newTestService(t *testing.T, factory *stubFactory) *Service {
	t.Helper()
	return NewService(testCatalog(), factory.build, zap.NewNop(), 0)
}
