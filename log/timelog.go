package log

import "time"

// Timer records how long a unit of work ran and reports it at debug level.
type Timer struct {
	StartTime time.Time
	EndTime   time.Time
	Log       Logger
	Name      string
}

// NewTimer starts a Timer named name.
func NewTimer(name string, logger Logger) Timer {
	t := Timer{Log: logger, Name: name}
	t.RecordStart()
	return t
}

func (t *Timer) RecordStart() {
	t.StartTime = time.Now()
	t.Log.Debugf("Timer: %s started at %s", t.Name, t.StartTime.Format(time.RFC3339))
}

// RecordEnd is meant to be deferred right after NewTimer.
func (t *Timer) RecordEnd() {
	t.EndTime = time.Now()
	t.Log.Debugf("Timer: %s ran for %v and ended at %s", t.Name, t.EndTime.Sub(t.StartTime), t.EndTime.Format(time.RFC3339))
}
