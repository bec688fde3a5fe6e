package storage

// KV is the persistent string store application state lives in. The task
// collection and the last-reminder date are two independent keys; callers
// serialize their own values.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}
