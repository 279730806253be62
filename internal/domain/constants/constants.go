// Package constants holds cross-cutting provider identifiers.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Connection source names accepted in configuration.
const (
	ConnectionSourcePostgres = "postgres"
	ConnectionSourceHTTP     = "http"
)
