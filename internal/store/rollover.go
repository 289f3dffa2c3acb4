package store

import (
	"github.com/duebook/duebook/pkg/recurrence"
	"github.com/duebook/duebook/pkg/types"
)

// RolloverToday moves every unfinished record due today to tomorrow and
// raises its priority to high, so yesterday's leftovers surface at the
// top of the next day. Each move goes through the regular save path and
// keeps its bucket-move and notification semantics. Returns how many
// records moved.
func (s *Store) RolloverToday() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	todayKey := recurrence.FormatDayKey(now)
	tomorrowKey := recurrence.FormatDayKey(recurrence.AddDays(now, 1))

	records, err := s.loadAll()
	if err != nil {
		return 0, err
	}

	moved := 0
	for i := range records {
		r := records[i]
		if r.Due != todayKey || r.Status == types.StatusDone {
			continue
		}
		_, err := s.save(types.SavePayload{
			ID:              r.ID,
			Title:           r.Title,
			Body:            r.Body,
			Due:             tomorrowKey,
			Status:          r.Status,
			Remind:          r.Remind,
			Priority:        types.PriorityHigh,
			Recurrence:      r.Recurrence,
			RecurrenceEnd:   r.RecurrenceEnd,
			RecurrenceCount: r.RecurrenceCount,
			Tags:            r.Tags,
			Order:           r.Order,
		})
		if err != nil {
			return moved, err
		}
		moved++
	}

	if moved > 0 {
		s.logger.Info("rolled over todos", "count", moved, "to", tomorrowKey)
	}
	return moved, nil
}
