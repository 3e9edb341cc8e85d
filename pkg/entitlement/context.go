package entitlement

import (
	"time"

	"github.com/dmitrymomot/webgrant/pkg/wire"
)

// Context is a total mapping from every known action to its granted
// state. It is recomputed per call and safe to mutate by the caller.
type Context map[Action]bool

// AllFalse returns a fully populated context with every action denied.
func AllFalse() Context {
	ctx := make(Context, len(actionsByFeature))
	for _, actions := range actionsByFeature {
		for _, a := range actions {
			ctx[a] = false
		}
	}
	return ctx
}

// BuildContext derives the granted-action context from a decoded token.
//
// The context is all-false when decoded is nil, the token expired strictly
// before now (expiry exactly at now is still honored), or the token is a
// developer token scoped to a different client id. Otherwise an action is
// granted iff its feature is both declared by the site and set in the
// token's bitmask. The result is always total over the known action set.
func BuildContext(decoded *wire.DecodedClientHeader, clientID string, features []Feature, now time.Time) Context {
	ctx := AllFalse()
	if decoded == nil || decoded.Expired(now) {
		return ctx
	}
	if decoded.ClientID != "" && decoded.ClientID != clientID {
		return ctx
	}
	for _, f := range features {
		if decoded.Flags&uint32(f) == 0 {
			continue
		}
		for _, a := range actionsByFeature[f] {
			ctx[a] = true
		}
	}
	return ctx
}
