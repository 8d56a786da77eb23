// Package logger provides structured logging based on Zap.
//
// New builds a development logger for the debug level and a production logger
// otherwise, with json or console encoding. WithRayID attaches the request's
// ray id, set by the rayid middleware, so every log line of a request can be
// correlated.
//
//	log, _ := logger.New(&cfg.Log)
//	l := logger.WithRayID(log, c)
//	l.Error("Plan failed", zap.Error(err))
package logger
