// Package site is the caller-facing facade of the library: it turns a raw
// entitlement header into a fully populated action context and advertises
// the site's participation to the counterpart agent.
//
// A Site owns its verifier, token cache, logger, and clock - there is no
// module-global state. Hosts construct one Site per client id and may
// share a single cache instance across sites.
//
// # Usage
//
//	s, err := site.New(site.Config{
//	    ClientID: "SITE1",
//	    Features: []entitlement.Feature{entitlement.FeatureCleanWeb},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// per request, with the raw header value(s) from the framework:
//	ctx := s.ParseClientToken(r.Context(), r.Header.Values("X-Webgrant-Token")...)
//	if ctx[entitlement.ActionHideAdvertisements] {
//	    // ...
//	}
//
//	w.Header().Set("X-Webgrant-Site", s.ServerHeader())
//
// ParseClientToken never returns an error: malformed, forged, expired, and
// wrongly scoped tokens all yield the all-false context. Decode failures
// are logged once at warn level with the failure reason; expiry and scope
// mismatches are normal outcomes and are not logged as warnings.
package site
