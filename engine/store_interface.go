package engine

import (
	"github.com/lixenwraith/geometry-fighter/core"
)

// AnyStore provides type-erased operations for lifecycle management
// Allows World to destroy entities across all stores without knowing the concrete type
type AnyStore interface {
	Remove(e core.Entity)
	RemoveBatch(entities []core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}
