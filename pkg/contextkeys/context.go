package contextkeys

type ContextKey string

const (
	// DBContextKey is where DBMiddleware stores the *gorm.DB handle
	// (the connection pool, or a transaction in tests).
	DBContextKey ContextKey = "db"
)
