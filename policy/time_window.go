// Package policy holds the request gates applied in front of the chat service.
// Every gate is a pure decision over its inputs; none of them touch storage.
package policy

import (
	"chat-gate/errors"
	"time"
)

const (
	DefaultFromHour = 6
	DefaultToHour   = 21
)

// TimeWindowGate admits requests whose local hour falls in [From, To].
type TimeWindowGate struct {
	From     int
	To       int
	Location *time.Location
}

func NewTimeWindowGate(from, to int, location *time.Location) TimeWindowGate {
	if location == nil {
		location = time.Local
	}
	return TimeWindowGate{From: from, To: to, Location: location}
}

func (g TimeWindowGate) Admit(now time.Time) error {
	loc := g.Location
	if loc == nil {
		loc = time.Local
	}
	hour := now.In(loc).Hour()
	if hour < g.From || hour > g.To {
		return errors.OutsideAllowedHours(hour)
	}
	return nil
}
