// internal/defs/loot_tables.go
package defs

// BonusKind - тип бонуса, который выпадает из подбитого врага-носителя.
type BonusKind int

const (
	BonusGrenade BonusKind = iota
	BonusHelmet
	BonusShovel
	BonusStar
	BonusTank
	BonusTimer
)

func (k BonusKind) String() string {
	switch k {
	case BonusGrenade:
		return "grenade"
	case BonusHelmet:
		return "helmet"
	case BonusShovel:
		return "shovel"
	case BonusStar:
		return "star"
	case BonusTank:
		return "tank"
	case BonusTimer:
		return "timer"
	}
	return "unknown"
}

// LootEntry - одна запись таблицы выпадения бонусов.
type LootEntry struct {
	Bonus  BonusKind `json:"bonus"`
	Weight int       `json:"weight"`
}

// BonusTable - таблица выпадения. Все бонусы равновероятны.
var BonusTable = []LootEntry{
	{Bonus: BonusGrenade, Weight: 1},
	{Bonus: BonusHelmet, Weight: 1},
	{Bonus: BonusShovel, Weight: 1},
	{Bonus: BonusStar, Weight: 1},
	{Bonus: BonusTank, Weight: 1},
	{Bonus: BonusTimer, Weight: 1},
}
