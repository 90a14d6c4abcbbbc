package contextkeys

// Custom key type so values stored here cannot collide with other packages.
type contextKey string

// DBContextKey is the key under which the per-request *gorm.DB handle
// (connection pool or test transaction) is stored.
const DBContextKey = contextKey("db")
