package utils

import (
	"testing"

	"go-battle-city/internal/defs"
)

func TestSameSeedSameSequence(t *testing.T) {
	a, b := NewPRNGService(7), NewPRNGService(7)
	for i := 0; i < 20; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}

func TestChooseWeighted(t *testing.T) {
	s := NewPRNGService(1)
	only := []defs.LootEntry{
		{Bonus: defs.BonusGrenade, Weight: 0},
		{Bonus: defs.BonusTimer, Weight: 3},
	}
	for i := 0; i < 50; i++ {
		if got := s.ChooseWeighted(only); got != defs.BonusTimer {
			t.Fatalf("zero-weight entry chosen: %v", got)
		}
	}
	if got := s.ChooseWeighted(nil); got != defs.BonusStar {
		t.Errorf("empty table = %v", got)
	}
	zero := []defs.LootEntry{{Bonus: defs.BonusShovel}, {Bonus: defs.BonusTank}}
	if got := s.ChooseWeighted(zero); got != defs.BonusShovel {
		t.Errorf("all-zero table should return first entry, got %v", got)
	}
}

func TestChooseWeightedCoversTable(t *testing.T) {
	s := NewPRNGService(3)
	seen := make(map[defs.BonusKind]bool)
	for i := 0; i < 600; i++ {
		seen[s.ChooseWeighted(defs.BonusTable)] = true
	}
	if len(seen) != len(defs.BonusTable) {
		t.Fatalf("only %d of %d bonuses seen", len(seen), len(defs.BonusTable))
	}
}
