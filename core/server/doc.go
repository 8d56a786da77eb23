// Package server holds the HTTP server configuration.
//
// The Config struct defines the listening port, the API key protecting every
// route, and the timeout applied to plan computations requested over HTTP.
package server
