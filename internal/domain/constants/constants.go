// Package constants holds values shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Database drivers.
const (
	DatabaseDriverSQLite   = "sqlite"
	DatabaseDriverPostgres = "postgres"
)

// Event sink providers.
const (
	EventProviderLocal  = "local"
	EventProviderGoogle = "google"
	EventProviderRedis  = "redis"
)

// TargetAll is the sentinel a send request uses to address every active token.
const TargetAll = "all"

// Dispatch limits.
const (
	// DefaultBatchLimit is the provider ceiling on tokens per multicast call.
	DefaultBatchLimit = 500
	// MinTokenLength is the shortest string the token gate accepts.
	MinTokenLength = 50
	// MinRegisteredTokenLength is the shortest token accepted over HTTP.
	MinRegisteredTokenLength = 100
)

// Request limits.
const (
	MaxTitleLength = 100
	MaxBodyLength  = 1000
)

// History pagination.
const (
	DefaultPage      = 1
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)
