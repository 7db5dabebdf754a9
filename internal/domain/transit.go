package domain

// PlaceKind discriminates the two kinds of mappable place.
// Using a dedicated type (rather than string tags) lets the compiler catch
// a missed case in a switch.
type PlaceKind int

const (
	KindStop PlaceKind = iota
	KindPOI
)

// String returns the storage key prefix for the kind, without the colon.
func (k PlaceKind) String() string {
	switch k {
	case KindStop:
		return "stop"
	case KindPOI:
		return "poi"
	}
	return "unknown"
}

// PlaceRef identifies a Stop or POI by kind and id.
type PlaceRef struct {
	Kind PlaceKind
	ID   string
}

// Endpoint is one end of a transit leg: a place reference with its
// resolved position.
type Endpoint struct {
	PlaceRef
	Position Position
}

// TransitLeg is a derived, ephemeral single hop shown when a day implies
// travel. It is never persisted; the focus engine recomputes it on demand.
type TransitLeg struct {
	From Endpoint
	To   Endpoint
}
