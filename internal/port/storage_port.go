package port

import "context"

// ClientStorage is the persisted key → string store that survives page
// sessions. Values never expire.
type ClientStorage interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	// SetMany writes all entries or none.
	SetMany(ctx context.Context, entries map[string]string) error
	Ping(ctx context.Context) error
}
