// Package constants defines values shared across layers.
package constants

// Pub/Sub provider names accepted in the pubsub.provider config key.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// TransactionEventTopic is the logical topic name carried in published event attributes.
const TransactionEventTopic = "transaction-events"

// EnvLocal is the env.env value of developer machines. Push authentication is skipped there.
const EnvLocal = "local"
