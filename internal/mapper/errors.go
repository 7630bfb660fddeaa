package mapper

import "errors"

// ErrUnknownVenueType indicates a publication-type value outside the
// exhaustive venue mapping table. An unmapped value signals an upstream
// schema change and must not be silently absorbed.
var ErrUnknownVenueType = errors.New("unknown venue type")
