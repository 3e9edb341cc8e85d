// Package tokencache provides a thread-safe, TTL- and capacity-bounded
// store of decoded token payloads keyed by the raw header string.
//
// A cached entry amortizes the signature verification cost of hot tokens.
// Undecodable inputs are cached as well (with a nil payload) so a flood of
// repeated forgeries does not pay full verification cost on every request.
//
// Each entry carries an effective expiry: the earlier of the TTL deadline
// from insertion and the token's own expiry. Over-capacity eviction
// removes the least-frequently-used entries first, breaking ties by
// oldest insertion. Expired entries are swept opportunistically - on
// every Nth insertion and whenever a stale hit is observed - never by a
// background goroutine.
//
// # Usage
//
//	cache, err := tokencache.New(tokencache.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	now := time.Now()
//	if e, ok := cache.Get(rawHeader, now); ok {
//	    // e.Payload is nil when the header was previously undecodable
//	}
//	cache.Put(rawHeader, decoded, now)
//
// All methods are safe for arbitrary concurrent use; mutations are atomic
// with respect to each other. Reconfiguration takes effect immediately:
// disabling clears the cache, shrinking re-applies the capacity bound.
package tokencache
