package model

// Cue is a logical sound event the core asks the audio collaborator to play.
type Cue string

const (
	CueClick    Cue = "click"
	CueAlarm    Cue = "alarm"
	CueStart    Cue = "start"
	CueGiveUp   Cue = "giveup"
	CueSuccess  Cue = "success"
	CueLevelUp  Cue = "levelUp"
	CuePurchase Cue = "purchase"
)

// Slot returns the equippable slot backing the cue, if any.
func (cue Cue) Slot() (SoundSlot, bool) {
	switch cue {
	case CueClick:
		return SlotClick, true
	case CueAlarm:
		return SlotAlarm, true
	case CueStart:
		return SlotStart, true
	case CueGiveUp:
		return SlotGiveUp, true
	}
	return "", false
}
