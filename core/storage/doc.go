// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so deployment
// artifacts can be read from, and proposal payloads uploaded to, either AWS S3
// or a self-hosted MinIO instance. Storage interactions are mocked in tests
// through core/storage/mocks.
//
//	client, err := storage.NewClient(cfg.Storage)
//	info, err := storage.PutBytes(ctx, client, cfg.Storage.Bucket, "payloads/bscmainnet.json", data, "application/json")
package storage
