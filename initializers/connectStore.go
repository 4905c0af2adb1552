package initializers

import (
	"context"
	"fmt"
	"os"

	"github.com/voltkart/voltkart-api/store"
)

// ConnectToStore opens whichever backend STORE_BACKEND selects: "sql" for
// the relational store (MySQL or PostgreSQL by DB_DIALECT) or "mongo" for
// the document store.
func ConnectToStore(ctx context.Context) (store.Store, error) {
	backend := GetEnv("STORE_BACKEND", "sql")

	switch backend {
	case "sql":
		dialect := GetEnv("DB_DIALECT", "mysql")
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			return nil, fmt.Errorf("DB_DSN is not set")
		}
		return store.NewSQLStore(dialect, dsn)
	case "mongo":
		uri := os.Getenv("MONGO_URI")
		if uri == "" {
			return nil, fmt.Errorf("MONGO_URI is not set")
		}
		return store.NewMongoStore(ctx, uri, GetEnv("MONGO_DB", "voltkart"))
	default:
		return nil, fmt.Errorf("unsupported store backend %q", backend)
	}
}
