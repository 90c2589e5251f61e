package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Product meta key marking a product as open for interest subscriptions.
const ProductInterestEnabledMetaKey = "_product_interest_enabled"

// Admin list page identifiers.
const (
	AdminPostType         = "product"
	AdminPageHookPrefix   = "product_page_"
	BulkActionUnsubscribe = "wc_product_subs_unsubscribe"
	NonceFieldName        = "wc_product_subs_nonce_name"
	NonceAction           = "wc_product_subs_nonce_action"
	ResponseFlagParam     = "wc-product-interest-response"
)

// Bulk action form fields.
const (
	FieldRelationshipIDs = "wc_product_subs_relationship_ids[]"
	FieldCustomerIDs     = "wc_product_subs_customer_ids[]"
	FieldProductIDs      = "wc_product_subs_product_ids[]"
)

// Transient cache key prefixes.
const (
	CacheKeyProductsByCustomer = "subscribed_products_by_customer_"
	CacheKeyCustomersByProduct = "subscribed_customers_by_product_"
)

// Pub/Sub message attributes.
const (
	EventTypeAttribute       = "event_type"
	ActionAttribute          = "action"
	RequestIDAttribute       = "request_id"
	EventTypeInterestChanged = "interest.changed"
	EventTypeOrderCompleted  = "order.completed"
)
