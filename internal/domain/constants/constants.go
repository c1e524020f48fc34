// Package constants defines shared enumeration values used across layers.
package constants

const (
	// EnvDevelop marks a development deployment.
	EnvDevelop = "develop"
	// EnvProduction marks a production deployment.
	EnvProduction = "production"
)

// Subscription scopes. A subscriber follows either a single offer, a vendor
// (business), or a geographic area around a fixed point.
const (
	ScopeOffer    = "offer"
	ScopeBusiness = "business"
	ScopeArea     = "area"
)

// Notification kinds recorded in the dedup ledger and carried in push payloads.
const (
	NotificationKindOfferLive = "offer_live"
)

// Push transport providers.
const (
	PushProviderFCM     = "fcm"
	PushProviderWebPush = "webpush"
)

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
