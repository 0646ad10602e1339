package logging

import "time"

// Timer logs the duration of a stage when it finishes
type Timer struct {
	logger Logger
	msg    string
	start  time.Time
	fields []Field
}

// StartTimer starts timing; msg and fields are logged by End or EndError
func StartTimer(logger Logger, msg string, fields ...Field) *Timer {
	return &Timer{logger: logger, msg: msg, start: time.Now(), fields: fields}
}

// Elapsed reports the time since StartTimer
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// End logs msg at info level with the elapsed latency
func (t *Timer) End(fields ...Field) {
	t.logger.Info(t.msg, t.finish(fields)...)
}

// EndError logs msg at error level with the elapsed latency and err
func (t *Timer) EndError(err error, fields ...Field) {
	t.logger.Error(t.msg, append(t.finish(fields), Error(err))...)
}

func (t *Timer) finish(extra []Field) []Field {
	fields := make([]Field, 0, len(t.fields)+len(extra)+1)
	fields = append(fields, t.fields...)
	fields = append(fields, extra...)
	return append(fields, Latency(t.Elapsed()))
}
