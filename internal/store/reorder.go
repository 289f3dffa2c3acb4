package store

import (
	"github.com/duebook/duebook/pkg/types"
)

// Reorder assigns manual order values from the caller's list: the id at
// position i gets rank i+1, so a missing id leaves a gap rather than
// shifting later ranks. Only buckets holding a reordered record are
// rewritten, in their parse order; records outside ids keep their
// existing rank.
func (s *Store) Reorder(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadAll()
	if err != nil {
		return err
	}

	ranks := make(map[string]float64, len(ids))
	for i, id := range ids {
		ranks[id] = float64(i + 1)
	}

	touched := make(map[string]bool)
	for i := range records {
		r := &records[i]
		if order, ok := ranks[r.ID]; ok {
			v := order
			r.Order = &v
			touched[r.Bucket] = true
		}
	}

	for bucket := range touched {
		var items []types.Record
		for i := range records {
			if records[i].Bucket == bucket {
				items = append(items, records[i])
			}
		}
		if err := s.writeBucket(bucket, items); err != nil {
			return err
		}
	}

	s.hooks.CommitMessage("Reorder todos")
	s.hooks.Changed()
	return nil
}
