package domain

import (
	interfaces "wordvault/internal/domain/interfaces"
	types "wordvault/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	CollectionName = types.CollectionName
	Word           = types.Word
	Collections    = types.Collections
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	CollectionStore   = interfaces.CollectionStore
	CollectionService = interfaces.CollectionService
)
