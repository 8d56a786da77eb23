// Package plan exposes governance plans over HTTP and keeps their history.
//
// The Service computes plans through a PlannerFactory, coalescing concurrent
// requests for the same network, encodes them as timelock proposals, uploads
// payloads to object storage and records runs in the plan_records table.
//
// # Routes
//
//   - GET  /plans                     configured networks
//   - GET  /plans/:network            dry-run report
//   - GET  /plans/:network/payload    timelock proposal
//   - GET  /plans/:network/history    stored runs (?limit=N)
//   - POST /plans/:network/record     compute and store a run
package plan
