// Package constants holds shared domain-level constant values.
package constants

const (
	// PubSubProviderLocal selects the local HTTP push publisher.
	PubSubProviderLocal = "local"

	// OrderEventCreated is emitted after an order commits successfully.
	OrderEventCreated = "order.created"
)
