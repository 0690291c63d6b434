// Package batch splits ordered slices into fixed-size chunks.
//
// The marketplace API caps the number of items accepted per update request,
// so every upload payload is divided into transport-sized batches before
// being pushed. The chunk size is always a call-site decision: the limits
// belong to the endpoints, not to this package.
//
// # Usage
//
//	chunks, err := batch.Divide(entries, 2000)
//	for _, chunk := range chunks {
//	    // push chunk
//	}
//
// Chunks are subslice views of the input; concatenating them in order
// reproduces the input exactly.
package batch
