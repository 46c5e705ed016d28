package control

import "fmt"

// EventType discriminates control events.
type EventType uint8

// Event kinds.
const (
	EventNoteOn EventType = iota
	EventNoteSet
	EventNoteOff
	EventParamSet
	EventParamReset
	EventPanic
)

// Event is one control state change attached to a sample position.
type Event interface {
	Type() EventType
	String() string
}

// NoteOn starts (or restarts) the voice keyed by the note's name. A
// second NoteOn with the same name replaces the sounding voice,
// last write wins.
type NoteOn struct {
	Note Note

	// VoiceID is an optional external voice identity assigned by the
	// sender. Nil when the sender does not track voices itself.
	VoiceID *int
}

func (NoteOn) Type() EventType { return EventNoteOn }

func (e NoteOn) String() string {
	if e.VoiceID != nil {
		return fmt.Sprintf("NoteOn{%s vel:%g pan:%g cents:%g voice:%d}",
			e.Note.Name, e.Note.Params.Velocity, e.Note.Params.Panning,
			e.Note.Params.Cents, *e.VoiceID)
	}
	return fmt.Sprintf("NoteOn{%s vel:%g pan:%g cents:%g}",
		e.Note.Name, e.Note.Params.Velocity, e.Note.Params.Panning,
		e.Note.Params.Cents)
}

// NoteSet changes one parameter of the voice keyed by Name. It is
// ignored when no such voice sounds.
type NoteSet struct {
	Name  NoteName
	Param NoteParam
}

func (NoteSet) Type() EventType { return EventNoteSet }

func (e NoteSet) String() string {
	return fmt.Sprintf("NoteSet{%s field:%d value:%g}",
		e.Name, e.Param.Field, e.Param.Value)
}

// NoteOff stops the voice keyed by Name.
type NoteOff struct {
	Name NoteName
}

func (NoteOff) Type() EventType { return EventNoteOff }

func (e NoteOff) String() string { return fmt.Sprintf("NoteOff{%s}", e.Name) }

// ParamSet assigns a plugin parameter by index.
type ParamSet struct {
	Index int
	Value ParamValue
}

func (ParamSet) Type() EventType { return EventParamSet }

func (e ParamSet) String() string {
	return fmt.Sprintf("ParamSet{%d = %v}", e.Index, e.Value)
}

// ParamReset restores a plugin parameter to its default.
type ParamReset struct {
	Index int
}

func (ParamReset) Type() EventType { return EventParamReset }

func (e ParamReset) String() string { return fmt.Sprintf("ParamReset{%d}", e.Index) }

// Panic silences every sounding voice immediately.
type Panic struct{}

func (Panic) Type() EventType { return EventPanic }

func (Panic) String() string { return "Panic" }

// Moment is the list of events attached to one sample position. A nil
// moment means no control activity there, which is the common case.
type Moment []Event
