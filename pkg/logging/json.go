package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// sink is shared by a JSONLogger and every child created with With, so a
// level change on any of them applies to all.
type sink struct {
	mu    sync.Mutex
	w     io.Writer
	level atomic.Int32
	now   func() time.Time
}

// JSONLogger writes one flat JSON object per entry: ts, level and msg first,
// then the fields in the order they were added. A repeated key keeps its
// first position and its last value.
type JSONLogger struct {
	out    *sink
	fields []Field
}

// NewJSONLogger creates a JSON logger writing to w
func NewJSONLogger(w io.Writer, level Level) *JSONLogger {
	out := &sink{w: w, now: time.Now}
	out.level.Store(int32(level))
	return &JSONLogger{out: out}
}

func (l *JSONLogger) Debug(msg string, fields ...Field) { l.log(DebugLevel, msg, fields) }
func (l *JSONLogger) Info(msg string, fields ...Field)  { l.log(InfoLevel, msg, fields) }
func (l *JSONLogger) Warn(msg string, fields ...Field)  { l.log(WarnLevel, msg, fields) }
func (l *JSONLogger) Error(msg string, fields ...Field) { l.log(ErrorLevel, msg, fields) }

func (l *JSONLogger) With(fields ...Field) Logger {
	return &JSONLogger{out: l.out, fields: mergeFields(l.fields, fields)}
}

func (l *JSONLogger) SetLevel(level Level) { l.out.level.Store(int32(level)) }
func (l *JSONLogger) GetLevel() Level      { return Level(l.out.level.Load()) }

func (l *JSONLogger) log(level Level, msg string, fields []Field) {
	if level < l.GetLevel() {
		return
	}

	var buf bytes.Buffer
	buf.WriteString(`{"ts":`)
	writeValue(&buf, l.out.now().UTC().Format(time.RFC3339Nano))
	buf.WriteString(`,"level":`)
	writeValue(&buf, level.String())
	buf.WriteString(`,"msg":`)
	writeValue(&buf, msg)
	for _, f := range mergeFields(l.fields, fields) {
		buf.WriteByte(',')
		writeValue(&buf, f.Key)
		buf.WriteByte(':')
		writeValue(&buf, f.Value)
	}
	buf.WriteString("}\n")

	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	l.out.w.Write(buf.Bytes())
}

// writeValue encodes v, or a placeholder string when v has no JSON form
// (NaN and Inf floats, channels)
func writeValue(buf *bytes.Buffer, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		data, _ = json.Marshal(fmt.Sprintf("%v", v))
	}
	buf.Write(data)
}

func mergeFields(base, extra []Field) []Field {
	if len(extra) == 0 {
		return base
	}
	merged := make([]Field, 0, len(base)+len(extra))
	pos := make(map[string]int, len(base)+len(extra))
	for _, group := range [][]Field{base, extra} {
		for _, f := range group {
			if i, ok := pos[f.Key]; ok {
				merged[i] = f
				continue
			}
			pos[f.Key] = len(merged)
			merged = append(merged, f)
		}
	}
	return merged
}
