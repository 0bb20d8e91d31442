package journal

import (
	"errors"

	"harulog/internal/models"
)

var ErrInvalidTransition = errors.New("invalid card state transition")

// UnlockSet tracks the diary ids the user has PIN-verified during the
// current session. It is owned by the screen that created it and is
// never persisted; a new process starts with every locked diary locked.
type UnlockSet struct {
	ids map[int64]struct{}
}

func NewUnlockSet() *UnlockSet {
	return &UnlockSet{ids: make(map[int64]struct{})}
}

func (s *UnlockSet) Add(id int64) {
	s.ids[id] = struct{}{}
}

func (s *UnlockSet) Contains(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *UnlockSet) Len() int {
	return len(s.ids)
}

// CardState describes what a diary card may render. The card shell,
// title, and lock glyph always render; content, analysis, and image are
// gated behind ShowFullContent.
type CardState struct {
	Visible         bool
	ShowFullContent bool
}

// DeriveCardState computes the display state of one diary. Pure: the
// record is never modified.
func DeriveCardState(d models.Diary, unlocked *UnlockSet) CardState {
	return CardState{
		Visible:         true,
		ShowFullContent: !d.IsLocked || (unlocked != nil && unlocked.Contains(d.ID)),
	}
}

// CardPhase is the lifecycle state of a single diary card within a
// session.
type CardPhase int

const (
	PhaseLocked CardPhase = iota
	PhasePromptingPin
	PhaseCollapsedUnlocked
	PhaseExpandedUnlocked
)

func (p CardPhase) String() string {
	switch p {
	case PhaseLocked:
		return "locked"
	case PhasePromptingPin:
		return "prompting-pin"
	case PhaseCollapsedUnlocked:
		return "collapsed"
	case PhaseExpandedUnlocked:
		return "expanded"
	}
	return "unknown"
}

// Card drives the per-entry unlock and expand flow. Unlocking is one-way
// within a session; there is no re-lock action, only a reload resets it.
type Card struct {
	diary models.Diary
	phase CardPhase
}

// NewCard starts a card in the phase implied by the record's lock flag
// and the session unlock set.
func NewCard(d models.Diary, unlocked *UnlockSet) *Card {
	phase := PhaseCollapsedUnlocked
	if !DeriveCardState(d, unlocked).ShowFullContent {
		phase = PhaseLocked
	}
	return &Card{diary: d, phase: phase}
}

func (c *Card) Phase() CardPhase {
	return c.phase
}

func (c *Card) Diary() models.Diary {
	return c.diary
}

// RequestUnlock moves a locked card to the PIN prompt.
func (c *Card) RequestUnlock() error {
	if c.phase != PhaseLocked {
		return ErrInvalidTransition
	}
	c.phase = PhasePromptingPin
	return nil
}

// ResolveUnlock applies the backend's PIN verdict. Success records the
// id in the session unlock set and lands on the collapsed sub-state;
// rejection returns the card to locked.
func (c *Card) ResolveUnlock(verified bool, unlocked *UnlockSet) error {
	if c.phase != PhasePromptingPin {
		return ErrInvalidTransition
	}
	if !verified {
		c.phase = PhaseLocked
		return nil
	}
	if unlocked != nil {
		unlocked.Add(c.diary.ID)
	}
	c.phase = PhaseCollapsedUnlocked
	return nil
}

// ToggleExpand flips an unlocked card between collapsed and expanded.
func (c *Card) ToggleExpand() error {
	switch c.phase {
	case PhaseCollapsedUnlocked:
		c.phase = PhaseExpandedUnlocked
	case PhaseExpandedUnlocked:
		c.phase = PhaseCollapsedUnlocked
	default:
		return ErrInvalidTransition
	}
	return nil
}
