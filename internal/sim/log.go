package sim

import "github.com/talgya/lifesim/internal/entity"

// EventLog is the append-only episode history. Entries are only ever
// appended in day order; nothing rewrites or removes them.
type EventLog struct {
	events []entity.Event
}

// Append adds events to the log in the order they occurred.
func (l *EventLog) Append(evs ...entity.Event) {
	l.events = append(l.events, evs...)
}

// All returns the full history. The returned slice is the log's backing
// store; callers must not mutate it.
func (l *EventLog) All() []entity.Event {
	return l.events
}

// Day returns the events recorded for one day.
func (l *EventLog) Day(day int) []entity.Event {
	var out []entity.Event
	for _, ev := range l.events {
		if ev.Day == day {
			out = append(out, ev)
		}
	}
	return out
}

// Len returns the number of recorded events.
func (l *EventLog) Len() int {
	return len(l.events)
}

// Milestones returns only milestone entries, for end-of-episode summaries.
func (l *EventLog) Milestones() []entity.Event {
	var out []entity.Event
	for _, ev := range l.events {
		if ev.Category == entity.CatMilestone {
			out = append(out, ev)
		}
	}
	return out
}
