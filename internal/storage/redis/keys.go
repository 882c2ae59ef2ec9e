package redis

// Key prefix for all session data
const keyPrefix = "courtqueue"

// snapshotKey returns the Redis key for the current session snapshot.
// The engine is single-session, so the key is fixed.
func snapshotKey() string {
	return keyPrefix + ":session:current"
}
