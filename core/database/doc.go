// Package database handles the optional MySQL connection used for plan
// history, plus schema inspection helpers.
//
// Connect configures GORM with connection pool limits and verifies the
// connection with a bounded ping. TableColumns and MissingColumns let
// features check that the tables they rely on carry the expected columns
// before serving traffic.
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
