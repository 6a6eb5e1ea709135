package render

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/valerio/go-easel/easel/raster"
)

// LogEntry is a record flattened for the log panel. The frame number and
// the screen area a message is about are lifted out of the attributes so
// the panel can show them up front.
type LogEntry struct {
	Time    time.Time
	Level   slog.Level
	Message string

	Frame    int
	HasFrame bool
	Area     raster.Rect

	// Attrs holds the remaining attributes as key=value pairs.
	Attrs string
}

// areaKeys are the attribute keys whose raster.Rect value becomes the entry
// area.
var areaKeys = map[string]bool{"area": true, "rect": true, "roi": true}

// LogBuffer keeps the latest entries for the log panel, dropping the oldest.
type LogBuffer struct {
	mu      sync.Mutex
	entries []LogEntry
	next    int
	full    bool
}

func NewLogBuffer(capacity int) *LogBuffer {
	return &LogBuffer{entries: make([]LogEntry, max(capacity, 1))}
}

func (lb *LogBuffer) Add(entry LogEntry) {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	lb.entries[lb.next] = entry
	lb.next++
	if lb.next == len(lb.entries) {
		lb.next = 0
		lb.full = true
	}
}

// Len returns how many entries are kept.
func (lb *LogBuffer) Len() int {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	if lb.full {
		return len(lb.entries)
	}
	return lb.next
}

// Recent returns up to limit entries at or above level, newest first.
func (lb *LogBuffer) Recent(limit int, level slog.Level) []LogEntry {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	kept := lb.next
	if lb.full {
		kept = len(lb.entries)
	}

	var result []LogEntry
	for i := 1; i <= kept && len(result) < limit; i++ {
		entry := lb.entries[(lb.next-i+len(lb.entries))%len(lb.entries)]
		if entry.Level >= level {
			result = append(result, entry)
		}
	}
	return result
}

// LogBufferHandler is a slog.Handler feeding a LogBuffer.
type LogBufferHandler struct {
	buffer *LogBuffer
	level  slog.Leveler
	group  string
	attrs  []slog.Attr
}

func NewLogBufferHandler(buffer *LogBuffer, level slog.Leveler) *LogBufferHandler {
	return &LogBufferHandler{buffer: buffer, level: level}
}

func (h *LogBufferHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *LogBufferHandler) Handle(_ context.Context, record slog.Record) error {
	entry := LogEntry{Time: record.Time, Level: record.Level, Message: record.Message}

	var sb strings.Builder
	for _, a := range h.attrs {
		entry.collect(&sb, "", a)
	}
	record.Attrs(func(a slog.Attr) bool {
		entry.collect(&sb, h.group, a)
		return true
	})
	entry.Attrs = strings.TrimPrefix(sb.String(), " ")

	h.buffer.Add(entry)
	return nil
}

// WithAttrs keeps attrs unresolved so frame and area attributes given to a
// logger are lifted as well.
func (h *LogBufferHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a = slog.Attr{Key: strings.TrimSuffix(h.group, "."), Value: slog.GroupValue(a)}
		}
		clone.attrs = append(clone.attrs, a)
	}
	return &clone
}

func (h *LogBufferHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.group = h.group + name + "."
	return &clone
}

// collect lifts top level frame and area attributes into the entry and
// appends everything else to sb.
func (e *LogEntry) collect(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	switch {
	case a.Value.Kind() == slog.KindGroup:
		for _, inner := range a.Value.Group() {
			e.collect(sb, prefix+a.Key+".", inner)
		}
		return
	case prefix == "" && a.Key == "frame" && a.Value.Kind() == slog.KindInt64:
		e.Frame, e.HasFrame = int(a.Value.Int64()), true
		return
	case prefix == "" && areaKeys[a.Key]:
		if area, ok := a.Value.Any().(raster.Rect); ok {
			e.Area = area
			return
		}
	}
	fmt.Fprintf(sb, " %s%s=%v", prefix, a.Key, a.Value)
}

// FormatLogEntry renders an entry as one panel line:
//
//	15:04:05 W #42 Dialog opened [96,104 448x272] scene=demo
func FormatLogEntry(entry LogEntry) string {
	var sb strings.Builder
	sb.WriteString(entry.Time.Format("15:04:05"))
	sb.WriteByte(' ')
	sb.WriteByte(levelMark(entry.Level))

	if entry.HasFrame {
		fmt.Fprintf(&sb, " #%d", entry.Frame)
	}
	sb.WriteByte(' ')
	sb.WriteString(entry.Message)

	if !entry.Area.Empty() {
		a := entry.Area
		fmt.Fprintf(&sb, " [%d,%d %dx%d]", a.X, a.Y, a.Width, a.Height)
	}
	if entry.Attrs != "" {
		sb.WriteByte(' ')
		sb.WriteString(entry.Attrs)
	}
	return sb.String()
}

func levelMark(level slog.Level) byte {
	switch {
	case level >= slog.LevelError:
		return 'E'
	case level >= slog.LevelWarn:
		return 'W'
	case level >= slog.LevelInfo:
		return 'I'
	default:
		return 'D'
	}
}
