package journal

import (
	"errors"
	"reflect"
	"testing"

	"harulog/internal/models"
)

func TestDeriveCardStateGating(t *testing.T) {
	locked := models.Diary{ID: 5, Title: "secret", Content: "hidden", IsLocked: true}
	unlockSet := NewUnlockSet()

	state := DeriveCardState(locked, unlockSet)
	if !state.Visible {
		t.Fatal("card shell must always be visible")
	}
	if state.ShowFullContent {
		t.Fatal("locked diary must not show content before unlock")
	}

	unlockSet.Add(5)
	if !DeriveCardState(locked, unlockSet).ShowFullContent {
		t.Fatal("unlocked id must show content")
	}
}

func TestDeriveCardStateUnlockedRecord(t *testing.T) {
	open := models.Diary{ID: 1, IsLocked: false}
	if !DeriveCardState(open, NewUnlockSet()).ShowFullContent {
		t.Fatal("unlocked record must show content")
	}
	if !DeriveCardState(open, nil).ShowFullContent {
		t.Fatal("nil unlock set must not gate an unlocked record")
	}
}

func TestDeriveCardStatePure(t *testing.T) {
	d := models.Diary{ID: 9, Title: "t", Content: "c", IsLocked: true}
	before := d
	_ = DeriveCardState(d, NewUnlockSet())
	if !reflect.DeepEqual(before, d) {
		t.Fatal("DeriveCardState mutated the record")
	}
}

func TestCardUnlockFlow(t *testing.T) {
	unlockSet := NewUnlockSet()
	card := NewCard(models.Diary{ID: 3, IsLocked: true}, unlockSet)

	if card.Phase() != PhaseLocked {
		t.Fatalf("initial phase = %v, want locked", card.Phase())
	}
	if err := card.RequestUnlock(); err != nil {
		t.Fatalf("RequestUnlock: %v", err)
	}
	if card.Phase() != PhasePromptingPin {
		t.Fatalf("phase = %v, want prompting-pin", card.Phase())
	}

	// Rejected PIN returns to locked, nothing recorded.
	if err := card.ResolveUnlock(false, unlockSet); err != nil {
		t.Fatalf("ResolveUnlock(false): %v", err)
	}
	if card.Phase() != PhaseLocked || unlockSet.Contains(3) {
		t.Fatalf("rejection must leave the card locked and the set empty")
	}

	// Verified PIN lands on collapsed and records the id.
	_ = card.RequestUnlock()
	if err := card.ResolveUnlock(true, unlockSet); err != nil {
		t.Fatalf("ResolveUnlock(true): %v", err)
	}
	if card.Phase() != PhaseCollapsedUnlocked {
		t.Fatalf("phase = %v, want collapsed", card.Phase())
	}
	if !unlockSet.Contains(3) {
		t.Fatal("verified unlock must record the id")
	}
}

func TestCardExpandToggle(t *testing.T) {
	card := NewCard(models.Diary{ID: 1}, NewUnlockSet())

	if err := card.ToggleExpand(); err != nil || card.Phase() != PhaseExpandedUnlocked {
		t.Fatalf("expected expanded, got phase=%v err=%v", card.Phase(), err)
	}
	if err := card.ToggleExpand(); err != nil || card.Phase() != PhaseCollapsedUnlocked {
		t.Fatalf("expected collapsed, got phase=%v err=%v", card.Phase(), err)
	}
}

func TestCardInvalidTransitions(t *testing.T) {
	unlockSet := NewUnlockSet()

	locked := NewCard(models.Diary{ID: 1, IsLocked: true}, unlockSet)
	if err := locked.ToggleExpand(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expanding a locked card: err = %v", err)
	}
	if err := locked.ResolveUnlock(true, unlockSet); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("resolving without a prompt: err = %v", err)
	}

	open := NewCard(models.Diary{ID: 2}, unlockSet)
	if err := open.RequestUnlock(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("unlock prompt on an open card: err = %v", err)
	}
}

func TestNewCardHonorsSessionUnlocks(t *testing.T) {
	unlockSet := NewUnlockSet()
	unlockSet.Add(4)
	card := NewCard(models.Diary{ID: 4, IsLocked: true}, unlockSet)
	if card.Phase() != PhaseCollapsedUnlocked {
		t.Fatalf("already-unlocked diary should start collapsed, got %v", card.Phase())
	}
}
