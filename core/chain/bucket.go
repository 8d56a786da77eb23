package chain

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"nomo-governance/core/network"
	"nomo-governance/core/storage"

	"github.com/ethereum/go-ethereum/common"
	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const bucketReadConcurrency = 8

// deploymentIndex maps contract names to their deployed addresses.
type deploymentIndex struct {
	addresses map[string]common.Address
	built     time.Time
	ttl       time.Duration
}

func (i *deploymentIndex) isExpired() bool {
	if i.ttl == 0 {
		return true
	}
	return time.Since(i.built) > i.ttl
}

// BucketRegistry resolves deployments from artifacts uploaded to object
// storage under <prefix>/<network>/<Name>.json. The artifact listing is
// indexed once per TTL; concurrent misses share one rebuild.
type BucketRegistry struct {
	client  storage.Client
	bucket  string
	prefix  string
	network network.Network
	ttl     time.Duration

	mu    sync.RWMutex
	index *deploymentIndex
	sf    singleflight.Group
}

// NewBucketRegistry returns a registry over the artifacts of n in bucket.
func NewBucketRegistry(client storage.Client, bucket, prefix string, n network.Network, ttl time.Duration) *BucketRegistry {
	return &BucketRegistry{
		client:  client,
		bucket:  bucket,
		prefix:  strings.Trim(prefix, "/"),
		network: n,
		ttl:     ttl,
	}
}

// DeployedAddress returns the recorded address of name.
func (r *BucketRegistry) DeployedAddress(ctx context.Context, name string) (common.Address, bool, error) {
	index, err := r.getOrBuild(ctx)
	if err != nil {
		return common.Address{}, false, err
	}
	addr, ok := index.addresses[name]
	return addr, ok, nil
}

func (r *BucketRegistry) networkPrefix() string {
	if r.prefix == "" {
		return r.network.String() + "/"
	}
	return r.prefix + "/" + r.network.String() + "/"
}

func (r *BucketRegistry) getOrBuild(ctx context.Context) (*deploymentIndex, error) {
	r.mu.RLock()
	index := r.index
	r.mu.RUnlock()
	if index != nil && !index.isExpired() {
		return index, nil
	}

	result, err, _ := r.sf.Do(r.networkPrefix(), func() (interface{}, error) {
		ctx := context.WithoutCancel(ctx)
		r.mu.RLock()
		index := r.index
		r.mu.RUnlock()
		if index != nil && !index.isExpired() {
			return index, nil
		}

		built, err := r.build(ctx)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.index = built
		r.mu.Unlock()
		return built, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*deploymentIndex), nil
}

func (r *BucketRegistry) build(ctx context.Context) (*deploymentIndex, error) {
	prefix := r.networkPrefix()

	var keys []string
	opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: false}
	for obj := range r.client.ListObjects(ctx, r.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list deployments: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, ".json") && !strings.Contains(strings.TrimPrefix(obj.Key, prefix), "/") {
			keys = append(keys, obj.Key)
		}
	}

	addresses := make([]common.Address, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bucketReadConcurrency)
	for i, key := range keys {
		g.Go(func() error {
			addr, err := r.read(gctx, key)
			if err != nil {
				return err
			}
			addresses[i] = addr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	index := &deploymentIndex{
		addresses: make(map[string]common.Address, len(keys)),
		built:     time.Now(),
		ttl:       r.ttl,
	}
	for i, key := range keys {
		index.addresses[strings.TrimSuffix(path.Base(key), ".json")] = addresses[i]
	}
	return index, nil
}

func (r *BucketRegistry) read(ctx context.Context, key string) (common.Address, error) {
	reader, err := r.client.GetObject(ctx, r.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to get deployment %s: %w", key, err)
	}
	defer reader.Close()
	return decodeDeployment(reader, key)
}
