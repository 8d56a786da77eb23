// Package config provides configuration management for nomo-governance.
//
// It uses Viper to read environment variables, optionally seeded from a .env
// file through godotenv. Every field declares its key with a 'mapstructure'
// tag and its fallback with a 'default' tag; nested keys map to upper-case
// environment names joined by underscores, e.g. chain.rpc_url is CHAIN_RPC_URL.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, plan timeout
//   - Chain: network, RPC endpoint, deployment artifact source
//   - Catalog: path of the desired-state catalog
//   - Database: optional MySQL plan history
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: logging level and format
//
//	cfg, err := config.LoadConfig(".")
package config
