// Package store implements the todo record store on top of Markdown
// bucket files. The files are the source of truth: every operation
// re-reads the buckets it needs, mutates in memory, and rewrites only
// the affected files, so there is no cache to invalidate and external
// edits are picked up on the next call. Access is serialized per
// process; multi-process coordination is the caller's problem.
package store

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/duebook/duebook/internal/markdown"
	"github.com/duebook/duebook/pkg/types"
)

// excerptLimit is the maximum rune length of a list-item excerpt.
const excerptLimit = 110

// Store reads and writes todo records persisted as Markdown buckets in
// a single directory.
type Store struct {
	mu     sync.Mutex
	dir    string
	hooks  Hooks
	logger *log.Logger

	// Overridable for tests.
	now   func() time.Time
	newID func() string
}

// New creates a store over the given directory. The directory is
// created on first use. Nil hooks are replaced with NopHooks.
func New(dir string, hooks Hooks) *Store {
	if hooks == nil {
		hooks = NopHooks{}
	}
	return &Store{
		dir:    dir,
		hooks:  hooks,
		logger: log.Default(),
		now:    time.Now,
		newID:  generateID,
	}
}

// SetLogger replaces the store's diagnostic logger.
func (s *Store) SetLogger(logger *log.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Dir returns the storage directory.
func (s *Store) Dir() string {
	return s.dir
}

// generateID returns a new UUID v7 for record IDs, falling back to v4
// if v7 generation fails.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// ensureDir creates the storage directory if missing. A missing
// directory is never an error condition.
func (s *Store) ensureDir() error {
	return os.MkdirAll(s.dir, 0o755)
}

// readBucket loads and parses one bucket file. A missing or unreadable
// file yields zero records; buckets may be deleted externally at any
// time.
func (s *Store) readBucket(name string) []types.Record {
	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return markdown.ParseBucket(string(content), name, info.ModTime())
}

// writeBucket persists a bucket's records, deleting the file when no
// records remain rather than leaving an empty shell behind.
func (s *Store) writeBucket(name string, records []types.Record) error {
	path := filepath.Join(s.dir, name)
	if len(records) == 0 {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", name, err)
		}
		s.logger.Debug("removed empty bucket", "bucket", name)
		return nil
	}
	content := markdown.SerializeBucket(markdown.DateKey(name), records)
	if err := writeFileAtomic(path, []byte(content)); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	s.logger.Debug("wrote bucket", "bucket", name, "records", len(records))
	return nil
}

// writeFileAtomic writes data using the temp-file, fsync, rename
// pattern so a crash mid-write cannot truncate a bucket.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".bucket-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// loadAll reads every bucket in the storage directory into one flat
// record list.
func (s *Store) loadAll() ([]types.Record, error) {
	if err := s.ensureDir(); err != nil {
		return nil, fmt.Errorf("ensure todos dir: %w", err)
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading todos dir: %w", err)
	}

	var records []types.Record
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".md") {
			continue
		}
		records = append(records, s.readBucket(entry.Name())...)
	}
	return records, nil
}

// findByID returns a pointer into records for the matching id, or nil.
func findByID(records []types.Record, id string) *types.Record {
	for i := range records {
		if records[i].ID == id {
			return &records[i]
		}
	}
	return nil
}

// List loads every bucket and flattens the records to summaries. The
// result is an unordered set; sorting is the caller's concern.
func (s *Store) List() ([]types.ListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadAll()
	if err != nil {
		return nil, err
	}

	items := make([]types.ListItem, 0, len(records))
	for i := range records {
		items = append(items, listItem(&records[i]))
	}
	return items, nil
}

// Read returns the full record matching id, or ErrNotFound.
func (s *Store) Read(id string) (*types.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(id)
}

func (s *Store) read(id string) (*types.Record, error) {
	records, err := s.loadAll()
	if err != nil {
		return nil, err
	}
	found := findByID(records, id)
	if found == nil {
		return nil, types.ErrNotFound
	}
	r := *found
	return &r, nil
}

// listItem builds the body-less summary shape for one record.
func listItem(r *types.Record) types.ListItem {
	return types.ListItem{
		ID:              r.ID,
		Title:           r.Title,
		Due:             r.Due,
		Status:          r.Status,
		Remind:          r.Remind,
		Priority:        r.Priority,
		Recurrence:      r.Recurrence,
		RecurrenceEnd:   r.RecurrenceEnd,
		RecurrenceCount: r.RecurrenceCount,
		RecurrenceID:    r.RecurrenceID,
		Tags:            r.Tags,
		Order:           r.Order,
		Created:         r.Created,
		Updated:         r.Updated,
		Excerpt:         excerpt(r.Body),
	}
}

// excerpt collapses the body's whitespace and truncates it for list
// display.
func excerpt(body string) string {
	clean := strings.Join(strings.Fields(body), " ")
	runes := []rune(clean)
	if len(runes) <= excerptLimit {
		return clean
	}
	return string(runes[:excerptLimit]) + "…"
}

// sortBucket orders a bucket's records by due date, then manual order
// (unranked last), then most recently updated first.
func sortBucket(records []types.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := &records[i], &records[j]
		if c := compareDue(a.Due, b.Due); c != 0 {
			return c < 0
		}
		ai, bi := orderRank(a.Order), orderRank(b.Order)
		if ai != bi {
			return ai < bi
		}
		return a.Updated.After(b.Updated)
	})
}

// compareDue orders day keys ascending with undated records last.
func compareDue(a, b string) int {
	switch {
	case a != "" && b != "":
		return strings.Compare(a, b)
	case a != "":
		return -1
	case b != "":
		return 1
	default:
		return 0
	}
}

// orderRank maps a manual order to a sortable value, unranked sorting
// after every explicit rank.
func orderRank(order *float64) float64 {
	if order == nil {
		return math.Inf(1)
	}
	return *order
}
