package chain

import (
	"strings"

	"nomo-governance/core/network"
)

// Deployment artifact sources.
const (
	SourceFile   = "file"
	SourceBucket = "bucket"
)

// Config holds configuration for chain access.
type Config struct {
	// Network is the default network to plan for.
	Network string `mapstructure:"network" default:"bsctestnet"`
	// RPCURL is the JSON-RPC endpoint used when Endpoints has no entry.
	RPCURL string `mapstructure:"rpc_url" default:""`
	// Endpoints lists per-network endpoints as "name=url" pairs separated by commas.
	Endpoints string `mapstructure:"endpoints" default:""`
	// TimeoutSeconds bounds dialing and every contract read.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// PinBlock reads all state at the block height observed when dialing.
	PinBlock bool `mapstructure:"pin_block" default:"true"`
	// DeploymentsSource selects where deployment artifacts live (file, bucket).
	DeploymentsSource string `mapstructure:"deployments_source" default:"file"`
	// DeploymentsPath is the artifact directory, or the object prefix for buckets.
	DeploymentsPath string `mapstructure:"deployments_path" default:"deployments"`
	// CacheTTLSeconds is how long a bucket index stays fresh. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"60"`
}

// IsValidSource checks if the configured deployments source is supported.
func (c Config) IsValidSource() bool {
	switch c.DeploymentsSource {
	case SourceFile, SourceBucket:
		return true
	default:
		return false
	}
}

// EndpointFor returns the RPC endpoint configured for n.
func (c Config) EndpointFor(n network.Network) string {
	for _, pair := range strings.Split(c.Endpoints, ",") {
		name, url, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		if parsed, err := network.Parse(name); err == nil && parsed == n {
			return strings.TrimSpace(url)
		}
	}
	return c.RPCURL
}
