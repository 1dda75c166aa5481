package snapshot

// Store holds the single current snapshot. Publish replaces it whole.
type Store interface {
	Current() (Snapshot, bool)
	Publish(s Snapshot)
	// PublishIf replaces the current snapshot only while its ID is still
	// replacesID. It reports whether the swap happened.
	PublishIf(replacesID string, s Snapshot) bool
}
