package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalDraftRepository is the device-local key/value cache of drafts.
// Keys are artifact tokens, values are cipher output. Writes replace the
// previous value; entries are never evicted.
type LocalDraftRepository interface {
	WriteDraft(ctx context.Context, storageKey, value string) error
	// ReadDraft returns ErrDraftNotFound when nothing was written under storageKey.
	ReadDraft(ctx context.Context, storageKey string) (string, error)
}
