// Package market is the client for the marketplace partner API.
//
// The API surface is small and fixed: paginated offer listing, bulk stock
// updates, and bulk price updates, all scoped to a campaign (storefront).
// The wire schema is an external contract; types.go mirrors it verbatim.
//
// # Campaigns
//
// A partner account runs up to two campaigns, one per fulfillment model
// (FBS, DBS), each bound to its own warehouse. Config.Campaigns expands the
// configured slots into the active list.
//
// # Errors
//
// Transport failures are classified into ErrTimeout and ErrConnection;
// non-success HTTP statuses become *StatusError. All three are detectable
// with errors.Is / errors.As through wrapping.
//
// # Caching
//
// CachedClient decorates a Client with a TTL cache over offer listings,
// using singleflight so concurrent callers share one fetch.
package market
