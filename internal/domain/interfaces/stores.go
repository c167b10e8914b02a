package interfaces

import (
	"context"

	domaintypes "wordvault/internal/domain/types"
)

// CollectionStore persists the full collection snapshot.
//
// Load returns an empty snapshot when nothing has been persisted yet;
// absence is not an error. Save has overwrite semantics: after it returns,
// persisted state reflects exactly the given snapshot.
type CollectionStore interface {
	Load(ctx context.Context) (domaintypes.Collections, error)
	Save(ctx context.Context, collections domaintypes.Collections) error
}
