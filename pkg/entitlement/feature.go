package entitlement

import "fmt"

// Feature is a single bit of the token's flag bitmask. Each feature
// bundles one or more entitlement actions; bits are disjoint by
// construction.
type Feature uint32

const (
	// FeatureCleanWeb covers ad, consent, marketing, and tracking
	// suppression.
	FeatureCleanWeb Feature = 1 << iota
	// FeatureContentPass covers paywall and subscription access.
	FeatureContentPass
)

// Action is one named boolean capability a site must honor when its
// feature is active. The string values are the protocol-level names.
type Action string

const (
	ActionHideAdvertisements           Action = "HIDE_ADVERTISEMENTS"
	ActionHideCookieConsentScreen      Action = "HIDE_COOKIE_CONSENT_SCREEN"
	ActionHideMarketingDialogs         Action = "HIDE_MARKETING_DIALOGS"
	ActionDisableNonFunctionalTracking Action = "DISABLE_NON_FUNCTIONAL_TRACKING"
	ActionDisableContentPaywall        Action = "DISABLE_CONTENT_PAYWALL"
	ActionEnableSubscriptionAccess     Action = "ENABLE_SUBSCRIPTION_ACCESS"
)

// featureOrder fixes the iteration order of the static table.
var featureOrder = []Feature{FeatureCleanWeb, FeatureContentPass}

// actionsByFeature is the static protocol table. Lists are ordered and
// non-empty; their length is not bounded by the protocol.
var actionsByFeature = map[Feature][]Action{
	FeatureCleanWeb: {
		ActionHideAdvertisements,
		ActionHideCookieConsentScreen,
		ActionHideMarketingDialogs,
		ActionDisableNonFunctionalTracking,
	},
	FeatureContentPass: {
		ActionDisableContentPaywall,
		ActionEnableSubscriptionAccess,
	},
}

var featureNames = map[Feature]string{
	FeatureCleanWeb:    "CLEAN_WEB",
	FeatureContentPass: "CONTENT_PASS",
}

// Actions returns every action of the feature, in protocol order.
func (f Feature) Actions() []Action {
	return actionsByFeature[f]
}

func (f Feature) String() string {
	if name, ok := featureNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Feature(%d)", uint32(f))
}

// UnmarshalText parses a protocol feature name, enabling features lists
// in env-based configuration.
func (f *Feature) UnmarshalText(text []byte) error {
	for feat, name := range featureNames {
		if name == string(text) {
			*f = feat
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownFeature, text)
}

// Actions returns the full known action set across all features, in
// protocol order.
func Actions() []Action {
	var all []Action
	for _, f := range featureOrder {
		all = append(all, actionsByFeature[f]...)
	}
	return all
}

// Mask combines features into the wire bitmask.
func Mask(features []Feature) uint32 {
	var m uint32
	for _, f := range features {
		m |= uint32(f)
	}
	return m
}
