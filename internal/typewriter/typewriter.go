// Package typewriter cycles a list of phrases through type, pause, delete and
// pause phases.
package typewriter

import "time"

// Mode is the phase the machine is in.
type Mode int

const (
	Typing Mode = iota
	PausedFull
	Deleting
	PausedEmpty
)

func (m Mode) String() string {
	switch m {
	case Typing:
		return "typing"
	case PausedFull:
		return "paused-full"
	case Deleting:
		return "deleting"
	case PausedEmpty:
		return "paused-empty"
	}
	return "unknown"
}

// Timing holds the delays between steps.
type Timing struct {
	Type    time.Duration // between typed characters
	Delete  time.Duration // between deleted characters
	Full    time.Duration // after the last character is typed
	Between time.Duration // after the last character is deleted
	Boot    time.Duration // before the first step
}

// Machine is the typewriter state. It holds runes so multi-byte phrases are
// typed one visible character at a time.
type Machine struct {
	phrases [][]rune
	timing  Timing

	index  int
	cursor int
	mode   Mode
}

func New(phrases []string, timing Timing) *Machine {
	m := &Machine{timing: timing, mode: Typing}
	for _, p := range phrases {
		m.phrases = append(m.phrases, []rune(p))
	}
	return m
}

func (m *Machine) Mode() Mode       { return m.mode }
func (m *Machine) Index() int       { return m.index }
func (m *Machine) Cursor() int      { return m.cursor }
func (m *Machine) PhraseCount() int { return len(m.phrases) }
func (m *Machine) Timing() Timing   { return m.timing }

// Text is the visible prefix of the current phrase.
func (m *Machine) Text() string {
	if len(m.phrases) == 0 {
		return ""
	}
	return string(m.phrases[m.index][:m.cursor])
}

// Step performs the entry action of the current mode, moves to the next mode
// and returns how long to wait before the next Step. A machine with no
// phrases never changes and reports ok=false.
func (m *Machine) Step() (delay time.Duration, ok bool) {
	if len(m.phrases) == 0 {
		return 0, false
	}
	phrase := m.phrases[m.index]

	switch m.mode {
	case Typing:
		if m.cursor < len(phrase) {
			m.cursor++
		}
		if m.cursor < len(phrase) {
			return m.timing.Type, true
		}
		m.mode = PausedFull
		return m.timing.Full, true

	case PausedFull:
		m.mode = Deleting
		return 0, true

	case Deleting:
		if m.cursor > 0 {
			m.cursor--
		}
		if m.cursor > 0 {
			return m.timing.Delete, true
		}
		m.mode = PausedEmpty
		return m.timing.Between, true

	case PausedEmpty:
		m.index = (m.index + 1) % len(m.phrases)
		m.mode = Typing
		return 0, true
	}
	return 0, false
}
