package chain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"nomo-governance/core/governance"
	"nomo-governance/core/network"
	"nomo-governance/core/storage"

	"github.com/ethereum/go-ethereum/common"
)

// deploymentRecord is the part of a hardhat-deploy artifact we read.
type deploymentRecord struct {
	Address string `json:"address"`
}

func decodeDeployment(r io.Reader, name string) (common.Address, error) {
	var record deploymentRecord
	if err := json.NewDecoder(r).Decode(&record); err != nil {
		return common.Address{}, fmt.Errorf("failed to decode deployment %s: %w", name, err)
	}
	if !common.IsHexAddress(record.Address) {
		return common.Address{}, fmt.Errorf("deployment %s has invalid address %q", name, record.Address)
	}
	return common.HexToAddress(record.Address), nil
}

// FileRegistry resolves deployments from <Dir>/<network>/<Name>.json.
type FileRegistry struct {
	Dir     string
	Network network.Network
}

// NewFileRegistry returns a registry over the artifacts of n under dir.
func NewFileRegistry(dir string, n network.Network) *FileRegistry {
	return &FileRegistry{Dir: dir, Network: n}
}

// DeployedAddress returns the recorded address of name.
func (r *FileRegistry) DeployedAddress(ctx context.Context, name string) (common.Address, bool, error) {
	if err := ctx.Err(); err != nil {
		return common.Address{}, false, err
	}

	f, err := os.Open(filepath.Join(r.Dir, r.Network.String(), name+".json"))
	if errors.Is(err, fs.ErrNotExist) {
		return common.Address{}, false, nil
	}
	if err != nil {
		return common.Address{}, false, fmt.Errorf("failed to open deployment %s: %w", name, err)
	}
	defer f.Close()

	addr, err := decodeDeployment(f, name)
	if err != nil {
		return common.Address{}, false, err
	}
	return addr, true, nil
}

// NewRegistry builds the deployment registry selected by cfg. The bucket
// source needs a storage client.
func NewRegistry(cfg Config, n network.Network, client storage.Client, bucket string) (governance.DeploymentRegistry, error) {
	switch cfg.DeploymentsSource {
	case SourceFile, "":
		return NewFileRegistry(cfg.DeploymentsPath, n), nil
	case SourceBucket:
		if client == nil {
			return nil, fmt.Errorf("deployments source %q requires storage", cfg.DeploymentsSource)
		}
		ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
		return NewBucketRegistry(client, bucket, cfg.DeploymentsPath, n, ttl), nil
	default:
		return nil, fmt.Errorf("unknown deployments source %q", cfg.DeploymentsSource)
	}
}
