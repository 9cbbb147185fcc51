package components

import "github.com/yohamta/donburi"

// EventLogData keeps the most recent collision events for the debug overlay
type EventLogData struct {
	Lines []string
	Max   int
}

var EventLog = donburi.NewComponentType[EventLogData]()

func (l *EventLogData) Push(line string) {
	l.Lines = append(l.Lines, line)
	if l.Max > 0 && len(l.Lines) > l.Max {
		l.Lines = l.Lines[len(l.Lines)-l.Max:]
	}
}
