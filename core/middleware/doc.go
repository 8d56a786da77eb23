// Package middleware groups the HTTP middleware of the Fiber application.
//
//   - auth: API key validation protecting every route.
//   - rayid: per-request ray id, stored in the context for logger.WithRayID
//     and echoed in the X-Ray-ID response header.
package middleware
