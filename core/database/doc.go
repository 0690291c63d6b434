// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure MySQL connections based on the application's configuration. SQLite
// is also supported, mainly so tests can run against an in-memory database.
//
// # Connect
//
// The generic Connect function establishes a connection to the database. It is
// agnostic to the shape of the inventory feed table regarding connection
// establishment, but loaders rely on the Schema Inspector to verify the table
// before reading from it.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema. The inventory
// feed table lives in an external system's database, so loaders verify the
// expected columns exist before a sync starts rather than failing on a scan
// error halfway through.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "products", "sku", "quantity")
package database
