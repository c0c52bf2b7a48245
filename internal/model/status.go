package model

// Status names a single condition a combatant can carry.
// Conditions are independent: a combatant may be burned, poisoned and
// confused at the same time.
type Status int

const (
	StatusNone Status = iota
	StatusParalyzed
	StatusBurned
	StatusPoisoned
	StatusAsleep
	StatusConfused
	StatusInfatuated
)

var statusNames = map[Status]string{
	StatusNone:       "none",
	StatusParalyzed:  "paralyzed",
	StatusBurned:     "burned",
	StatusPoisoned:   "poisoned",
	StatusAsleep:     "asleep",
	StatusConfused:   "confused",
	StatusInfatuated: "infatuated",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "unknown"
}

// ParseStatus maps a status name ("paralyzed", "burn", ...) to a Status.
// Unknown names return StatusNone.
func ParseStatus(name string) Status {
	switch name {
	case "paralyzed", "paralyze", "paralysis":
		return StatusParalyzed
	case "burned", "burn":
		return StatusBurned
	case "poisoned", "poison", "toxic":
		return StatusPoisoned
	case "asleep", "sleep":
		return StatusAsleep
	case "confused", "confuse", "confusion":
		return StatusConfused
	case "infatuated", "infatuate", "infatuation":
		return StatusInfatuated
	default:
		return StatusNone
	}
}

// StatusRecord holds every condition of one combatant for the whole battle,
// across switches.
type StatusRecord struct {
	Paralyzed     bool
	Burned        bool
	Poisoned      bool
	ToxicCounter  int // nonzero only while Poisoned
	Confused      bool
	Infatuated    bool
	VolatileTurns int
	AsleepTurns   int
	Flinched      bool
}

// Has reports whether the condition is active.
func (r *StatusRecord) Has(s Status) bool {
	switch s {
	case StatusParalyzed:
		return r.Paralyzed
	case StatusBurned:
		return r.Burned
	case StatusPoisoned:
		return r.Poisoned
	case StatusAsleep:
		return r.AsleepTurns > 0
	case StatusConfused:
		return r.Confused
	case StatusInfatuated:
		return r.Infatuated
	default:
		return false
	}
}

// Inflict activates a condition. Sleep needs a duration, see Sleep.
func (r *StatusRecord) Inflict(s Status) {
	switch s {
	case StatusParalyzed:
		r.Paralyzed = true
	case StatusBurned:
		r.Burned = true
	case StatusPoisoned:
		r.Poisoned = true
	case StatusAsleep:
		if r.AsleepTurns == 0 {
			r.AsleepTurns = 1
		}
	case StatusConfused:
		r.Confused = true
	case StatusInfatuated:
		r.Infatuated = true
	}
}

// BadlyPoison poisons with an escalating toxic counter.
func (r *StatusRecord) BadlyPoison() {
	r.Poisoned = true
	if r.ToxicCounter == 0 {
		r.ToxicCounter = 1
	}
}

// Sleep puts the combatant to sleep for the given number of blocked actions.
func (r *StatusRecord) Sleep(turns int) {
	if turns < 1 {
		turns = 1
	}
	r.AsleepTurns = turns
}

// Cure removes a single condition.
func (r *StatusRecord) Cure(s Status) {
	switch s {
	case StatusParalyzed:
		r.Paralyzed = false
	case StatusBurned:
		r.Burned = false
	case StatusPoisoned:
		r.Poisoned = false
		r.ToxicCounter = 0
	case StatusAsleep:
		r.AsleepTurns = 0
	case StatusConfused:
		r.Confused = false
	case StatusInfatuated:
		r.Infatuated = false
	}
	if !r.Confused && !r.Infatuated {
		r.VolatileTurns = 0
	}
}

// CureAll removes every condition. Flinch is not a condition and survives.
func (r *StatusRecord) CureAll() {
	flinched := r.Flinched
	*r = StatusRecord{Flinched: flinched}
}

// CurePersistent removes burn, poison, paralysis and sleep.
func (r *StatusRecord) CurePersistent() {
	r.Cure(StatusBurned)
	r.Cure(StatusPoisoned)
	r.Cure(StatusParalyzed)
	r.Cure(StatusAsleep)
}

// HasMajor reports whether any condition that powers status-boosted attack
// is active: burn, poison, paralysis, sleep or confusion.
func (r *StatusRecord) HasMajor() bool {
	return r.Burned || r.Poisoned || r.Paralyzed || r.AsleepTurns > 0 || r.Confused
}

// HasPersistent reports whether burn, poison, paralysis or sleep is active.
func (r *StatusRecord) HasPersistent() bool {
	return r.Burned || r.Poisoned || r.Paralyzed || r.AsleepTurns > 0
}

// IsVolatile reports whether confusion or infatuation is active.
func (r *StatusRecord) IsVolatile() bool {
	return r.Confused || r.Infatuated
}
