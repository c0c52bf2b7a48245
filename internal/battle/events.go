package battle

import (
	"fmt"

	"github.com/udisondev/battlesim/internal/model"
)

// EventKind names what happened in a narrative event.
type EventKind string

const (
	EventSendOut     EventKind = "send_out"
	EventSwitch      EventKind = "switch"
	EventEntry       EventKind = "entry"
	EventMove        EventKind = "move"
	EventNoMove      EventKind = "no_move"
	EventNoPP        EventKind = "no_pp"
	EventFlinch      EventKind = "flinch"
	EventFlinchSet   EventKind = "flinch_set"
	EventVolatileEnd EventKind = "volatile_end"
	EventImmobilized EventKind = "immobilized"
	EventFullyPara   EventKind = "fully_paralyzed"
	EventAsleep      EventKind = "asleep"
	EventWake        EventKind = "wake"
	EventItem        EventKind = "item"
	EventMiss        EventKind = "miss"
	EventProtected   EventKind = "protected"
	EventStatus      EventKind = "status"
	EventStatusGuard EventKind = "status_guard"
	EventCure        EventKind = "cure"
	EventNoEffect    EventKind = "no_effect"
	EventDamage      EventKind = "damage"
	EventCrit        EventKind = "crit"
	EventAbsorb      EventKind = "absorb"
	EventSubstitute  EventKind = "substitute"
	EventHeal        EventKind = "heal"
	EventBoost       EventKind = "boost"
	EventStatDrop    EventKind = "stat_drop"
	EventWeather     EventKind = "weather"
	EventWeatherEnd  EventKind = "weather_end"
	EventPassive     EventKind = "passive"
	EventSurvive     EventKind = "survive"
	EventFaint       EventKind = "faint"
	EventEliminated  EventKind = "eliminated"
	EventFailed      EventKind = "failed"
	EventSkipped     EventKind = "skipped"
	EventVerdict     EventKind = "verdict"
)

// Event is one turn-by-turn narrative record.
type Event struct {
	Turn   int
	Side   model.Side
	Actor  string
	Action EventKind
	Value  int
	Detail string
}

func (e Event) String() string {
	s := fmt.Sprintf("T%d %s/%s %s", e.Turn, e.Side, e.Actor, e.Action)
	if e.Detail != "" {
		s += " " + e.Detail
	}
	if e.Value != 0 {
		s += fmt.Sprintf(" (%d)", e.Value)
	}
	return s
}

func (b *Battle) emit(f *fighter, kind EventKind, value int, detail string) {
	ev := Event{Turn: b.turn, Action: kind, Value: value, Detail: detail}
	if f != nil {
		ev.Side = f.side
		ev.Actor = f.c.Name
	}
	b.events = append(b.events, ev)
	if b.opts.OnEvent != nil {
		b.opts.OnEvent(ev)
	}
}
