// Package testlog provides a logx.Logger that records entries for assertions.
package testlog

import (
	"sync"

	"shipment-photo-dashboard/internal/logx"
)

// Entry is one recorded log call with its bound and call-site fields merged.
type Entry struct {
	Level  string
	Msg    string
	Fields []logx.Field
}

// Lookup returns the last value logged under key.
func (e Entry) Lookup(key string) (any, bool) {
	for i := len(e.Fields) - 1; i >= 0; i-- {
		if e.Fields[i].Key == key {
			return e.Fields[i].Value, true
		}
	}
	return nil, false
}

// Recorder is safe for concurrent use by handlers under test.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func New() *Recorder { return &Recorder{} }

// Logger returns a logger writing into r.
func (r *Recorder) Logger() logx.Logger {
	return &recLogger{rec: r}
}

// Entries returns a snapshot.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Has reports whether an entry with the given level and message was recorded.
func (r *Recorder) Has(level, msg string) bool {
	_, ok := r.find(func(e Entry) bool { return e.Level == level && e.Msg == msg })
	return ok
}

// Field returns the value of key in the first entry with msg.
func (r *Recorder) Field(msg, key string) (any, bool) {
	e, ok := r.find(func(e Entry) bool { return e.Msg == msg })
	if !ok {
		return nil, false
	}
	return e.Lookup(key)
}

func (r *Recorder) find(match func(Entry) bool) (Entry, bool) {
	for _, e := range r.Entries() {
		if match(e) {
			return e, true
		}
	}
	return Entry{}, false
}

func (r *Recorder) record(level, msg string, bound, fields []logx.Field) {
	merged := make([]logx.Field, 0, len(bound)+len(fields))
	merged = append(merged, bound...)
	merged = append(merged, fields...)

	r.mu.Lock()
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, Fields: merged})
	r.mu.Unlock()
}

type recLogger struct {
	rec   *Recorder
	bound []logx.Field
}

var _ logx.Logger = (*recLogger)(nil)

func (l *recLogger) Debug(msg string, f ...logx.Field) { l.rec.record("debug", msg, l.bound, f) }
func (l *recLogger) Info(msg string, f ...logx.Field)  { l.rec.record("info", msg, l.bound, f) }
func (l *recLogger) Warn(msg string, f ...logx.Field)  { l.rec.record("warn", msg, l.bound, f) }
func (l *recLogger) Error(msg string, f ...logx.Field) { l.rec.record("error", msg, l.bound, f) }

func (l *recLogger) With(f ...logx.Field) logx.Logger {
	bound := make([]logx.Field, 0, len(l.bound)+len(f))
	bound = append(bound, l.bound...)
	bound = append(bound, f...)
	return &recLogger{rec: l.rec, bound: bound}
}

func (l *recLogger) Sync() error { return nil }
