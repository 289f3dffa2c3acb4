package store

import (
	"github.com/duebook/duebook/pkg/types"
)

// Delete removes a single record from its bucket. Returns ErrNotFound
// when no record has the given id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delete(id)
}

func (s *Store) delete(id string) error {
	records, err := s.loadAll()
	if err != nil {
		return err
	}
	existing := findByID(records, id)
	if existing == nil {
		return types.ErrNotFound
	}

	remaining := removeByID(s.readBucket(existing.Bucket), id)
	if err := s.writeBucket(existing.Bucket, remaining); err != nil {
		return err
	}

	s.hooks.CommitMessage("Delete todo: " + summaryTitle(existing.Title))
	s.hooks.Changed()
	return nil
}

// DeleteSeries removes the record and every later occurrence of its
// recurring series: members due on or after the target's due date, and
// members with no due date at all. A target without a series falls back
// to a plain delete. When the target itself is undated the whole series
// goes, since no member can sort before it. Only buckets that lose a
// member are rewritten.
func (s *Store) DeleteSeries(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadAll()
	if err != nil {
		return err
	}
	existing := findByID(records, id)
	if existing == nil {
		return types.ErrNotFound
	}

	seriesID := existing.RecurrenceID
	if seriesID == "" && existing.Recurring() {
		seriesID = existing.ID
	}
	if seriesID == "" {
		return s.delete(id)
	}

	cutoff := existing.Due
	doomed := func(r *types.Record) bool {
		if r.RecurrenceID != seriesID {
			return false
		}
		return cutoff == "" || r.Due == "" || r.Due >= cutoff
	}

	touched := make(map[string]bool)
	for i := range records {
		if doomed(&records[i]) {
			touched[records[i].Bucket] = true
		}
	}

	survivors := make(map[string][]types.Record)
	for i := range records {
		r := records[i]
		if !touched[r.Bucket] || doomed(&r) {
			continue
		}
		survivors[r.Bucket] = append(survivors[r.Bucket], r)
	}

	for bucket := range touched {
		if err := s.writeBucket(bucket, survivors[bucket]); err != nil {
			return err
		}
	}

	s.hooks.CommitMessage("Delete series: " + summaryTitle(existing.Title))
	s.hooks.Changed()
	return nil
}
