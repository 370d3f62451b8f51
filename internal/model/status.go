package model

// ProductStatus is the lifecycle state of a product.
type ProductStatus string

const (
	ProductDraft     ProductStatus = "draft"
	ProductScheduled ProductStatus = "scheduled"
	ProductLive      ProductStatus = "live"
	ProductSold      ProductStatus = "sold"
	ProductArchived  ProductStatus = "archived"
)

// productTransitions is the legal state-transition table. Archived is
// terminal: no transition leads out of it.
var productTransitions = map[ProductStatus][]ProductStatus{
	ProductDraft:     {ProductScheduled, ProductLive, ProductArchived},
	ProductScheduled: {ProductLive, ProductDraft, ProductArchived},
	ProductLive:      {ProductSold, ProductArchived, ProductDraft},
	ProductSold:      {ProductArchived},
	ProductArchived:  {},
}

// Valid reports whether s is a known product status.
func (s ProductStatus) Valid() bool {
	_, ok := productTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is legal. A no-op
// transition to the current status is always allowed.
func (s ProductStatus) CanTransitionTo(next ProductStatus) bool {
	if !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	for _, allowed := range productTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// DropStatus is the lifecycle state of a drop.
type DropStatus string

const (
	DropScheduled DropStatus = "scheduled"
	DropLive      DropStatus = "live"
	DropCompleted DropStatus = "completed"
	DropCancelled DropStatus = "cancelled"
)

// Valid reports whether s is a known drop status. Drops are only constrained
// out of scheduled, and scheduled may move to any other state, so enum
// validity is the whole check.
func (s DropStatus) Valid() bool {
	switch s {
	case DropScheduled, DropLive, DropCompleted, DropCancelled:
		return true
	}
	return false
}
