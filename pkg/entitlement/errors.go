package entitlement

import "errors"

var (
	// ErrUnknownFeature indicates a feature name outside the protocol table.
	ErrUnknownFeature = errors.New("entitlement: unknown feature")
)
