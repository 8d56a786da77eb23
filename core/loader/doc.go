// Package loader provides the feature loading system of the HTTP server.
//
// Each feature implements the Feature interface and registers its own routes.
// The Manager keeps the registry and loads enabled features in registration
// order via LoadAll.
//
//	mgr := loader.NewManager()
//	mgr.Register(plan.NewFeature(service, logg))
//	err := mgr.LoadAll(app)
package loader
