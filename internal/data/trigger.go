package data

// Trigger is the engine hook point at which an ability or item fires.
type Trigger int

const (
	TriggerNone        Trigger = iota
	TriggerEntry               // on send-in
	TriggerSpeed               // speed calculation
	TriggerAttack              // attack stat calculation
	TriggerLowHPBoost          // move power at low HP
	TriggerContact             // defender struck by a contact move
	TriggerImmunity            // blocks a move type entirely
	TriggerHealOnHit           // absorbs a move type as self-heal
	TriggerEndTurn             // after every action
	TriggerLowHP               // one-shot at an HP threshold
	TriggerOnHit               // accuracy and flinch on hit
	TriggerOnMove              // power and crit modifiers
	TriggerDamageDealt         // lifesteal
	TriggerFatalHit            // survive at 1 HP
	TriggerStatus              // react to a new status
	TriggerStatDrop            // react to a lowered stat
	TriggerStatusGuard         // block a status before it lands
	TriggerPPDrain             // opponent spends extra PP
	TriggerFlinchGuard         // block flinch
)

var triggerNames = [...]string{
	"none", "entry", "speed", "attack", "low_hp_boost", "contact", "immunity",
	"heal_on_hit", "end_turn", "low_hp", "on_hit", "on_move", "on_damage_dealt",
	"fatal_hit", "status", "stat_drop", "status_guard", "pp_drain", "flinch_guard",
}

func (t Trigger) String() string {
	if int(t) < len(triggerNames) {
		return triggerNames[t]
	}
	return "unknown"
}
