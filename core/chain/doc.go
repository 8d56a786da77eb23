// Package chain reads live contract state over JSON-RPC and resolves where
// the oracle contracts of a network were deployed.
//
// The Inspector implements governance.StateInspector and
// governance.AppliedChecker on top of go-ethereum's bound contracts. The
// registries implement governance.DeploymentRegistry over hardhat-deploy
// artifacts, either on the local filesystem or in an object storage bucket.
package chain
