package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// PlanTimeoutSeconds bounds a single plan computation triggered over HTTP.
	PlanTimeoutSeconds int `mapstructure:"plan_timeout_seconds" default:"60"`
}

// IsProtected reports whether requests must carry the API key.
func (c Config) IsProtected() bool {
	return c.ApiKey != ""
}

// PlanTimeout returns the plan computation timeout, defaulting to one minute.
func (c Config) PlanTimeout() time.Duration {
	if c.PlanTimeoutSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.PlanTimeoutSeconds) * time.Second
}
