package plan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nomo-governance/core/catalog"
	"nomo-governance/core/governance"
	"nomo-governance/core/network"
	"nomo-governance/core/storage"
	"nomo-governance/feature/plan/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

var (
	// ErrNoHistory is returned when no database backs the plan history.
	ErrNoHistory = errors.New("plan history is not available")
	// ErrNoStorage is returned when payload uploads have no storage client.
	ErrNoStorage = errors.New("payload storage is not available")
)

// PlannerFactory builds a planner for cfg. The returned release function
// frees the planner's connections and must be called once planning is done.
type PlannerFactory func(ctx context.Context, cfg catalog.NetworkConfig) (*governance.Planner, func(), error)

// Service computes, encodes and records governance plans.
type Service struct {
	catalog *catalog.Catalog
	factory PlannerFactory
	logger  *zap.Logger
	timeout time.Duration

	store   Store
	storage storage.Client
	bucket  string
	prefix  string

	sf singleflight.Group
}

// NewService creates a new plan service. Plan computations are bounded by
// timeout.
func NewService(cat *catalog.Catalog, factory PlannerFactory, logger *zap.Logger, timeout time.Duration) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Service{
		catalog: cat,
		factory: factory,
		logger:  logger,
		timeout: timeout,
	}
}

// WithStore enables plan history.
func (s *Service) WithStore(store Store) *Service {
	s.store = store
	return s
}

// WithStorage enables payload uploads to bucket under prefix.
func (s *Service) WithStorage(client storage.Client, bucket, prefix string) *Service {
	s.storage = client
	s.bucket = bucket
	s.prefix = prefix
	return s
}

// Networks returns the networks the catalog configures.
func (s *Service) Networks() []network.Network {
	return s.catalog.Networks()
}

// Plan computes the plan for n. Concurrent calls for the same network share
// one computation, which is detached from the callers' cancellation.
func (s *Service) Plan(ctx context.Context, n network.Network) (*governance.Plan, error) {
	cfg, err := s.catalog.For(n)
	if err != nil {
		return nil, err
	}

	result, err, shared := s.sf.Do(n.String(), func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		planner, release, err := s.factory(ctx, cfg)
		if err != nil {
			return nil, err
		}
		defer release()

		return planner.Plan(ctx)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Plan served", zap.String("network", n.String()), zap.Bool("shared", shared))
	return result.(*governance.Plan), nil
}

// Payload computes the plan for n and encodes it as a timelock proposal.
func (s *Service) Payload(ctx context.Context, n network.Network) (*governance.Plan, *governance.Proposal, error) {
	plan, err := s.Plan(ctx, n)
	if err != nil {
		return nil, nil, err
	}
	proposal, err := governance.BuildProposal(plan.Commands, proposalMeta(n))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode proposal: %w", err)
	}
	return plan, proposal, nil
}

// Record computes the plan for n and stores it with its proposal payload.
func (s *Service) Record(ctx context.Context, n network.Network) (*models.PlanRecord, error) {
	if s.store == nil {
		return nil, ErrNoHistory
	}

	plan, proposal, err := s.Payload(ctx, n)
	if err != nil {
		return nil, err
	}
	return s.Save(ctx, plan, proposal)
}

// Save stores an already computed plan and its proposal.
func (s *Service) Save(ctx context.Context, plan *governance.Plan, proposal *governance.Proposal) (*models.PlanRecord, error) {
	if s.store == nil {
		return nil, ErrNoHistory
	}

	payload, err := json.Marshal(proposal)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal proposal: %w", err)
	}

	record := &models.PlanRecord{
		ID:            uuid.NewString(),
		Network:       plan.Network.String(),
		Live:          plan.Live,
		AccessControl: plan.Summary.AccessControl,
		Ownership:     plan.Summary.Ownership,
		PriceFeeds:    plan.Summary.PriceFeeds,
		Total:         plan.Summary.Total,
		Payload:       payload,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.store.Save(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("Plan recorded",
		zap.String("id", record.ID),
		zap.String("network", record.Network),
		zap.Int("commands", record.Total),
	)
	return record, nil
}

// History returns the latest stored plans of n. A non-positive limit uses
// the default; limits above the maximum are capped.
func (s *Service) History(ctx context.Context, n network.Network, limit int) ([]models.PlanRecord, error) {
	if s.store == nil {
		return nil, ErrNoHistory
	}
	if !n.IsValid() {
		return nil, fmt.Errorf("%w: %q", network.ErrUnknown, n)
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return s.store.History(ctx, n, limit)
}

// Upload stores proposal as JSON in the payload bucket and returns its key.
func (s *Service) Upload(ctx context.Context, n network.Network, proposal *governance.Proposal) (string, error) {
	if s.storage == nil {
		return "", ErrNoStorage
	}

	data, err := json.MarshalIndent(proposal, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal proposal: %w", err)
	}

	key := fmt.Sprintf("%s/%s/%s.json", s.prefix, n, time.Now().UTC().Format("20060102T150405Z"))
	if s.prefix == "" {
		key = key[1:]
	}

	if _, err := storage.PutBytes(ctx, s.storage, s.bucket, key, data, "application/json"); err != nil {
		return "", err
	}

	s.logger.Info("Proposal uploaded", zap.String("bucket", s.bucket), zap.String("key", key))
	return key, nil
}

func proposalMeta(n network.Network) string {
	return fmt.Sprintf("Configure oracle governance on %s", n)
}
