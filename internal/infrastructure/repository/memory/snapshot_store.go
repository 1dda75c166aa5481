package memory

import (
	"sync/atomic"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/snapshot"
)

// SnapshotStore holds one snapshot behind an atomic pointer. Readers never
// observe a partially built snapshot.
type SnapshotStore struct {
	current atomic.Pointer[snapshot.Snapshot]
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

func (s *SnapshotStore) Current() (snapshot.Snapshot, bool) {
	cur := s.current.Load()
	if cur == nil {
		return snapshot.Snapshot{}, false
	}
	return *cur, true
}

func (s *SnapshotStore) Publish(snap snapshot.Snapshot) {
	s.current.Store(&snap)
}

func (s *SnapshotStore) PublishIf(replacesID string, snap snapshot.Snapshot) bool {
	for {
		cur := s.current.Load()
		if cur == nil || cur.ID != replacesID {
			return false
		}
		if s.current.CompareAndSwap(cur, &snap) {
			return true
		}
	}
}
