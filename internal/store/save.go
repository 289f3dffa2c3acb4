package store

import (
	"strings"

	"github.com/duebook/duebook/internal/markdown"
	"github.com/duebook/duebook/pkg/recurrence"
	"github.com/duebook/duebook/pkg/types"
)

// Save upserts a record. Unset payload fields fall back to the existing
// record's values and then to the defaults for a new record; the due
// date is taken as given so a record can move to the undated bucket.
// When the due date changes bucket, the record is removed from the old
// bucket file and written into the new one in the same logical
// operation. Completing a recurring record spawns its successor.
// Returns the saved record's id.
func (s *Store) Save(payload types.SavePayload) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(payload)
}

func (s *Store) save(payload types.SavePayload) (string, error) {
	now := s.now()
	records, err := s.loadAll()
	if err != nil {
		return "", err
	}

	var existing *types.Record
	if payload.ID != "" {
		existing = findByID(records, payload.ID)
	}

	prevStatus := types.StatusTodo
	if existing != nil {
		prevStatus = types.NormalizeStatus(existing.Status, types.StatusTodo)
	}

	nextID := payload.ID
	if nextID == "" {
		nextID = s.newID()
	}

	resolved := s.resolveFields(payload, existing)

	// Recurring titles carry their due date so generated occurrences
	// stay recognizable.
	storedTitle := resolved.title
	if resolved.rule != "none" && resolved.due != "" {
		storedTitle = types.AppendDateSuffix(resolved.title, resolved.due)
	}

	seriesID := ""
	if resolved.rule != "none" {
		seriesID = resolved.seriesID
		if seriesID == "" {
			if existing != nil {
				seriesID = existing.ID
			} else {
				seriesID = nextID
			}
		}
	}

	created := now
	if existing != nil && !existing.Created.IsZero() {
		created = existing.Created
	}

	record := types.Record{
		ID:              nextID,
		Title:           storedTitle,
		Body:            resolved.body,
		Due:             resolved.due,
		Status:          resolved.status,
		Remind:          resolved.remind,
		Priority:        resolved.priority,
		Recurrence:      resolved.rule,
		RecurrenceEnd:   resolved.end,
		RecurrenceCount: resolved.count,
		RecurrenceID:    seriesID,
		Tags:            resolved.tags,
		Order:           resolved.order,
		Created:         created,
		Updated:         now,
	}

	targetBucket := markdown.BucketForDue(resolved.due)
	record.Bucket = targetBucket

	// Moving buckets: drop the record from its old file first.
	if existing != nil && existing.Bucket != targetBucket {
		oldItems := removeByID(s.readBucket(existing.Bucket), nextID)
		if err := s.writeBucket(existing.Bucket, oldItems); err != nil {
			return "", err
		}
	}

	bucketItems := removeByID(s.readBucket(targetBucket), nextID)
	bucketItems = append(bucketItems, record)
	sortBucket(bucketItems)
	if err := s.writeBucket(targetBucket, bucketItems); err != nil {
		return "", err
	}

	s.hooks.CommitMessage("Update todo: " + summaryTitle(storedTitle))
	s.hooks.Changed()

	if err := s.maybeSpawnSuccessor(prevStatus, &record, existing); err != nil {
		return "", err
	}

	return nextID, nil
}

// resolvedFields holds the normalized field values for one save.
type resolvedFields struct {
	title    string
	body     string
	due      string
	status   string
	remind   string
	priority string
	rule     string
	end      string
	count    int
	seriesID string
	tags     []string
	order    *float64
}

// resolveFields normalizes the payload against the existing record,
// falling back to hardcoded defaults for brand-new records.
func (s *Store) resolveFields(payload types.SavePayload, existing *types.Record) resolvedFields {
	var r resolvedFields

	r.title = strings.TrimSpace(payload.Title)
	if r.title == "" && existing != nil {
		r.title = types.StripDateSuffix(existing.Title)
	}
	if r.title == "" {
		r.title = types.DefaultTitle
	}

	r.body = strings.ReplaceAll(payload.Body, "\r\n", "\n")
	if payload.Body == "" && existing != nil {
		r.body = existing.Body
	}

	r.due = types.NormalizeDue(payload.Due)

	statusFallback := types.StatusTodo
	if existing != nil {
		statusFallback = types.NormalizeStatus(existing.Status, types.StatusTodo)
	}
	r.status = types.NormalizeStatus(payload.Status, statusFallback)

	r.remind = payload.Remind
	if r.remind == "" {
		r.remind = types.RemindNone
		if existing != nil && existing.Remind != "" {
			r.remind = existing.Remind
		}
	}

	priorityFallback := types.PriorityNormal
	if existing != nil {
		priorityFallback = types.NormalizePriority(existing.Priority, types.PriorityNormal)
	}
	r.priority = types.NormalizePriority(payload.Priority, priorityFallback)

	ruleFallback := "none"
	if existing != nil {
		ruleFallback = types.NormalizeRecurrence(existing.Recurrence, "none")
	}
	r.rule = types.NormalizeRecurrence(payload.Recurrence, ruleFallback)

	r.end = types.NormalizeRecurrenceEnd(payload.RecurrenceEnd)
	if payload.RecurrenceEnd == "" && existing != nil {
		r.end = existing.RecurrenceEnd
	}
	r.count = types.NormalizeRecurrenceCount(float64(payload.RecurrenceCount))
	if payload.RecurrenceCount == 0 && existing != nil {
		r.count = existing.RecurrenceCount
	}

	// A series id continues from the stored record when updating;
	// otherwise the caller may hand one in (succession does).
	if payload.ID != "" && existing != nil {
		r.seriesID = types.NormalizeRecurrenceID(existing.RecurrenceID)
	}
	if r.seriesID == "" {
		r.seriesID = types.NormalizeRecurrenceID(payload.RecurrenceID)
	}

	if r.rule == "none" {
		r.end = ""
		r.count = 0
		r.seriesID = ""
	}

	r.tags = types.NormalizeTags(payload.Tags)
	if payload.Tags == nil && existing != nil {
		r.tags = types.NormalizeTags(existing.Tags)
	}

	r.order = types.NormalizeOrder(payload.Order)
	if payload.Order == nil && existing != nil {
		r.order = types.NormalizeOrder(existing.Order)
	}

	return r
}

// maybeSpawnSuccessor creates the next occurrence of a recurring series
// when this save completed the current one. It runs at most once per
// completion: the successor is created with status todo, so the nested
// save cannot recurse further.
func (s *Store) maybeSpawnSuccessor(prevStatus string, saved *types.Record, existing *types.Record) error {
	if prevStatus == types.StatusDone || saved.Status != types.StatusDone || saved.Recurrence == "none" {
		return nil
	}

	baseDue := saved.Due
	if baseDue == "" && existing != nil {
		baseDue = existing.Due
	}
	if baseDue == "" {
		baseDue = recurrence.FormatDayKey(s.now())
	}

	nextDue, ok := recurrence.NextDue(baseDue, saved.Recurrence)
	if !ok {
		return nil
	}
	// A bounded series continues only while occurrences remain and the
	// next date stays within the end bound.
	if saved.RecurrenceCount != 0 && saved.RecurrenceCount <= 1 {
		return nil
	}
	if saved.RecurrenceEnd != "" && nextDue > saved.RecurrenceEnd {
		return nil
	}

	nextCount := 0
	if saved.RecurrenceCount > 0 {
		nextCount = saved.RecurrenceCount - 1
		if nextCount < 1 {
			nextCount = 1
		}
	}

	s.logger.Debug("spawning successor", "series", saved.RecurrenceID, "due", nextDue)
	_, err := s.save(types.SavePayload{
		Title:           types.AppendDateSuffix(types.StripDateSuffix(saved.Title), nextDue),
		Body:            saved.Body,
		Due:             nextDue,
		Status:          types.StatusTodo,
		Remind:          saved.Remind,
		Priority:        saved.Priority,
		Recurrence:      saved.Recurrence,
		RecurrenceEnd:   saved.RecurrenceEnd,
		RecurrenceCount: nextCount,
		RecurrenceID:    saved.RecurrenceID,
		Tags:            saved.Tags,
		Order:           saved.Order,
	})
	return err
}

// MoveDue re-saves the record with a new due date, participating in the
// same bucket-move logic as Save. A nil order keeps the record's rank.
func (s *Store) MoveDue(id, due string, order *float64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.read(id)
	if err != nil {
		return "", err
	}

	if order == nil {
		order = record.Order
	}
	return s.save(types.SavePayload{
		ID:              record.ID,
		Title:           record.Title,
		Body:            record.Body,
		Due:             due,
		Status:          record.Status,
		Remind:          record.Remind,
		Priority:        record.Priority,
		Recurrence:      record.Recurrence,
		RecurrenceEnd:   record.RecurrenceEnd,
		RecurrenceCount: record.RecurrenceCount,
		Tags:            record.Tags,
		Order:           order,
	})
}

// removeByID filters out the record with the given id.
func removeByID(records []types.Record, id string) []types.Record {
	result := records[:0]
	for _, r := range records {
		if r.ID != id {
			result = append(result, r)
		}
	}
	return result
}

// summaryTitle renders a title for commit-message summaries.
func summaryTitle(title string) string {
	if bare := types.StripDateSuffix(title); bare != "" {
		return bare
	}
	return types.DefaultTitle
}
