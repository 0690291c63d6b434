// Package inventory loads and normalizes the supplier's stock feed.
//
// A feed is a flat list of records (product code, raw quantity text, raw
// price text). Two sources are supported: a database table maintained by the
// upstream export, and a JSON object in S3-compatible storage. Both return
// the same Record slice; all normalization is deferred to the parse helpers
// so the reconciler decides what a row means.
//
// # Quantity Encoding
//
// The feed uses a small textual protocol for quantities: ">10" means the
// supplier has effectively unlimited stock (normalized to 100), "1" means
// the last unit is reserved as a showcase item (normalized to 0), and any
// other value must be a plain non-negative integer. ParseQuantity implements
// exactly this mapping.
//
// # Price Encoding
//
// Prices arrive as human-formatted text like "1 500.00 руб." with arbitrary
// grouping characters and currency suffixes. ParsePrice strips the
// decoration and truncates to whole roubles.
package inventory
