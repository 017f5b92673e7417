package storage

import (
	"context"

	"github.com/chatcont39-glitch/educheck/internal/models"
)

// Store defines the interface for receipt persistence operations. The
// namespace is a single flat collection: a repeated file name silently
// replaces prior contents, and callers are responsible for uniqueness
// (the form flow embeds a millisecond timestamp in generated names).
type Store interface {
	// Persist writes payload verbatim under fileName and returns the
	// resolved path of the stored document. It returns ErrMissingArgument
	// when either argument is absent and ErrWriteFailure when the medium
	// cannot be written.
	Persist(ctx context.Context, fileName string, payload []byte) (string, error)

	// ListHistory returns every stored document whose name carries the
	// receipt extension, paired with its last-modified time. Ordering is
	// whatever stable sequence the medium returns; callers must sort
	// explicitly if they need chronological order. An empty storage area
	// yields an empty slice, not an error.
	ListHistory(ctx context.Context) ([]models.HistoryEntry, error)
}
