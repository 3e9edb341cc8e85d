// Package entitlement maps the token's feature bitmask onto the named
// boolean actions a site must honor.
//
// A Feature is one bit of the wire bitmask and bundles an ordered list of
// entitlement actions. BuildContext derives a Context - a total mapping
// from every known action to a boolean - from a decoded token, the site's
// identity, and its declared feature set. The result is always total:
// callers can index any action without presence checks.
//
// # Usage
//
//	ctx := entitlement.BuildContext(decoded, "SITE1",
//	    []entitlement.Feature{entitlement.FeatureCleanWeb}, time.Now())
//	if ctx[entitlement.ActionHideAdvertisements] {
//	    // suppress ad slots
//	}
//
// An absent, expired, or wrongly scoped token yields the all-false
// context; that is a normal outcome, not an error.
package entitlement
