// Package markdown encodes and decodes bucket files: Markdown documents
// that hold zero or more todo records, one file per due date. Each
// record is a JSON metadata comment followed by a human-readable
// rendering and the freeform body, so the files stay pleasant to read
// and safe to hand-edit. The codec is lenient on the way in and stable
// on the way out; parse(serialize(records)) reproduces the same
// normalized records.
package markdown

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/duebook/duebook/pkg/types"
)

// UndatedKey is the date key of the bucket holding records without a
// due date.
const UndatedKey = "undated"

// blockPattern matches one serialized record: a todo metadata comment,
// the rendered section, and the closing marker.
var blockPattern = regexp.MustCompile(`(?s)<!--\s*todo:\s*(\{.*?\})\s*-->\s*(.*?)\s*<!--\s*/todo\s*-->`)

// metaBlock is the wire shape written for the JSON metadata comment.
// Field order here fixes the key order in serialized output. Decoding
// does not use this struct: hand-edited files get loose per-field
// coercion instead, so one mistyped value cannot reject the block.
type metaBlock struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Due             *string  `json:"due"`
	Status          *string  `json:"status"`
	Remind          *string  `json:"remind"`
	Priority        *string  `json:"priority"`
	Recurrence      *string  `json:"recurrence"`
	RecurrenceEnd   *string  `json:"recurrenceEnd"`
	RecurrenceCount *float64 `json:"recurrenceCount"`
	RecurrenceID    *string  `json:"recurrenceId"`
	Tags            []string `json:"tags"`
	Order           *float64 `json:"order"`
	Created         *string  `json:"created"`
	Updated         *string  `json:"updated"`
}

// BucketForDue returns the bucket file name for a due date: "<due>.md"
// for dated records, "undated.md" otherwise.
func BucketForDue(due string) string {
	if due == "" {
		return UndatedKey + ".md"
	}
	return due + ".md"
}

// DateKey strips the .md extension from a bucket file name.
func DateKey(fileName string) string {
	if strings.EqualFold(fileName[max(0, len(fileName)-3):], ".md") {
		return fileName[:len(fileName)-3]
	}
	return fileName
}

// ParseBucket decodes every record block in a bucket file. Blocks whose
// metadata is not valid JSON are skipped so one corrupt record cannot
// take the rest of the file with it; the skipped block stays in the
// file untouched. Valid JSON with mistyped fields is kept and coerced
// field by field, since hand-edited metadata is expected. When no block
// matches at all the entire file is treated as one legacy record: first
// line title, remainder body, id derived from the file name, timestamps
// from modTime. Every bucket file therefore yields at least one record.
func ParseBucket(content, fileName string, modTime time.Time) []types.Record {
	var records []types.Record

	for _, match := range blockPattern.FindAllStringSubmatch(content, -1) {
		var meta map[string]any
		if err := json.Unmarshal([]byte(match[1]), &meta); err != nil {
			continue
		}
		records = append(records, recordFromMeta(meta, match[2], fileName))
	}

	if len(records) == 0 {
		records = append(records, legacyRecord(content, fileName, modTime))
	}
	return records
}

// recordFromMeta normalizes one decoded metadata block and its section
// text into a canonical record. Each field is coerced independently so
// a mistyped value falls back to its default without dragging the rest
// of the record with it.
func recordFromMeta(meta map[string]any, section, fileName string) types.Record {
	id := metaString(meta, "id")
	recurrenceRule := types.NormalizeRecurrence(metaString(meta, "recurrence"), "none")
	recurrenceID := types.NormalizeRecurrenceID(metaString(meta, "recurrenceId"))
	if recurrenceRule != "none" && recurrenceID == "" {
		// Older files predate series ids; the head record is its own series.
		recurrenceID = id
	}
	if recurrenceRule == "none" {
		recurrenceID = ""
	}

	remind := metaString(meta, "remind")
	if remind == "" {
		remind = types.RemindNone
	}

	title := strings.TrimSpace(metaString(meta, "title"))
	if title == "" {
		title = types.DefaultTitle
	}

	count := 0.0
	if v, ok := metaNumber(meta, "recurrenceCount"); ok {
		count = v
	}
	var order *float64
	if v, ok := metaNumber(meta, "order"); ok {
		order = &v
	}

	return types.Record{
		ID:              id,
		Title:           title,
		Body:            sectionBody(section),
		Due:             types.NormalizeDue(metaString(meta, "due")),
		Status:          types.NormalizeStatus(metaString(meta, "status"), types.StatusTodo),
		Remind:          remind,
		Priority:        types.NormalizePriority(metaString(meta, "priority"), types.PriorityNormal),
		Recurrence:      recurrenceRule,
		RecurrenceEnd:   types.NormalizeRecurrenceEnd(metaString(meta, "recurrenceEnd")),
		RecurrenceCount: types.NormalizeRecurrenceCount(count),
		RecurrenceID:    recurrenceID,
		Tags:            types.NormalizeTags(metaTags(meta, "tags")),
		Order:           types.NormalizeOrder(order),
		Created:         parseTimestamp(metaString(meta, "created")),
		Updated:         parseTimestamp(metaString(meta, "updated")),
		Bucket:          fileName,
	}
}

// metaString reads a string field; missing, null, or non-string values
// yield the empty string.
func metaString(meta map[string]any, key string) string {
	if v, ok := meta[key].(string); ok {
		return v
	}
	return ""
}

// metaNumber reads a numeric field, coercing numeric strings like "3"
// that hand edits tend to introduce. The second return is false when
// the field is missing, null, or not a number.
func metaNumber(meta map[string]any, key string) (float64, bool) {
	switch v := meta[key].(type) {
	case float64:
		return v, true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// metaTags reads a tag array, keeping string elements and dropping
// everything else.
func metaTags(meta map[string]any, key string) []string {
	raw, ok := meta[key].([]any)
	if !ok {
		return nil
	}
	tags := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags
}

// sectionBody extracts the freeform body from the rendered section: the
// text after the "---" separator line. Sections written before the
// separator existed have no such line; for those the whole section is
// the body, unless it looks like the even older rendering of metadata
// alone (a "### " heading plus labeled lines), in which case the body
// is empty.
func sectionBody(section string) string {
	normalized := strings.ReplaceAll(section, "\r\n", "\n")
	lines := strings.Split(normalized, "\n")

	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			return trimTrailing(strings.Join(lines[i+1:], "\n"))
		}
	}

	hasHeading := len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[0]), "### ")
	hasStatusLine := false
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "- Status:") {
			hasStatusLine = true
			break
		}
	}
	if hasHeading && hasStatusLine {
		return ""
	}
	return trimTrailing(normalized)
}

// legacyRecord treats an entire file that was never written by this
// codec as a single record.
func legacyRecord(content, fileName string, modTime time.Time) types.Record {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	title := strings.TrimSpace(lines[0])
	if title == "" {
		title = DateKey(fileName)
	}
	if modTime.IsZero() {
		modTime = time.Now()
	}
	return types.Record{
		ID:         DateKey(fileName),
		Title:      title,
		Body:       trimTrailing(strings.Join(lines[1:], "\n")),
		Status:     types.StatusTodo,
		Remind:     types.RemindNone,
		Priority:   types.PriorityNormal,
		Recurrence: "none",
		Tags:       []string{},
		Created:    modTime,
		Updated:    modTime,
		Bucket:     fileName,
		Legacy:     true,
	}
}

// SerializeBucket renders records into bucket file text: a heading for
// the date key, then one block per record. Output is deterministic for
// a given record list so version-control diffs stay small.
func SerializeBucket(dateKey string, records []types.Record) string {
	header := "# Todos for " + dateKey
	if dateKey == UndatedKey {
		header = "# Undated Todos"
	}

	blocks := make([]string, 0, len(records))
	for i := range records {
		blocks = append(blocks, serializeRecord(&records[i]))
	}
	return header + "\n\n" + strings.Join(blocks, "\n\n") + "\n"
}

// serializeRecord renders one record block: metadata comment, readable
// section, separator, body, closing marker.
func serializeRecord(r *types.Record) string {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		title = types.DefaultTitle
	}
	status := types.NormalizeStatus(r.Status, types.StatusTodo)
	priority := types.NormalizePriority(r.Priority, types.PriorityNormal)
	recurrenceRule := types.NormalizeRecurrence(r.Recurrence, "none")
	remind := r.Remind
	if remind == "" {
		remind = types.RemindNone
	}
	tags := types.NormalizeTags(r.Tags)

	meta := metaBlock{
		ID:              r.ID,
		Title:           title,
		Due:             optString(types.NormalizeDue(r.Due)),
		Status:          &status,
		Remind:          &remind,
		Priority:        &priority,
		Recurrence:      &recurrenceRule,
		RecurrenceEnd:   optString(types.NormalizeRecurrenceEnd(r.RecurrenceEnd)),
		RecurrenceCount: optCount(r.RecurrenceCount),
		RecurrenceID:    optString(types.NormalizeRecurrenceID(r.RecurrenceID)),
		Tags:            tags,
		Order:           types.NormalizeOrder(r.Order),
		Created:         optTimestamp(r.Created),
		Updated:         optTimestamp(r.Updated),
	}
	// json.Marshal escapes < and > so a body-less marker cannot appear
	// inside the metadata comment and break the block scan.
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		// A metaBlock contains nothing unmarshalable; keep the block
		// well-formed regardless.
		metaJSON = []byte(fmt.Sprintf(`{"id":%q}`, r.ID))
	}

	lines := []string{
		"### " + title,
		"- Status: " + status,
		"- Priority: " + priority,
		"- Repeat: " + recurrenceRule,
		"- Repeat end: " + orNone(types.NormalizeRecurrenceEnd(r.RecurrenceEnd)),
		"- Repeat count: " + countLabel(r.RecurrenceCount),
		"- Remind: " + remind,
		"- Due: " + orNone(types.NormalizeDue(r.Due)),
		"- Tags: " + tagsLabel(tags),
		"- Order: " + orderLabel(r.Order),
		"- Created: " + timestampLabel(r.Created),
		"- Updated: " + timestampLabel(r.Updated),
		"---",
		trimTrailing(strings.ReplaceAll(r.Body, "\r\n", "\n")),
	}

	return "<!-- todo: " + string(metaJSON) + " -->\n" +
		strings.Join(lines, "\n") + "\n<!-- /todo -->"
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optCount(count int) *float64 {
	if count < 1 {
		return nil
	}
	v := float64(count)
	return &v
}

func optTimestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

func countLabel(count int) string {
	if count < 1 {
		return "None"
	}
	return strconv.Itoa(count)
}

func tagsLabel(tags []string) string {
	if len(tags) == 0 {
		return "None"
	}
	return strings.Join(tags, ", ")
}

func orderLabel(order *float64) string {
	v := types.NormalizeOrder(order)
	if v == nil {
		return "None"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func timestampLabel(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func trimTrailing(s string) string {
	return strings.TrimRight(s, " \t\r\n")
}
