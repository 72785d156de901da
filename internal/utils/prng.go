// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-battle-city/internal/defs"
)

// PRNGService - обёртка над генератором случайных чисел, чтобы вся игра
// брала случайность из одного источника с известным сидом.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создаёт сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Shuffle перемешивает n элементов через swap.
func (s *PRNGService) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// OneIn возвращает true с вероятностью 1/n.
func (s *PRNGService) OneIn(n int) bool {
	if n <= 1 {
		return true
	}
	return s.rng.Intn(n) == 0
}

// ChooseWeighted выполняет взвешенный выбор бонуса из таблицы выпадения.
// Суммирует веса, выбирает число в этом диапазоне и находит запись,
// которой оно соответствует.
func (s *PRNGService) ChooseWeighted(entries []defs.LootEntry) defs.BonusKind {
	if len(entries) == 0 {
		return defs.BonusStar
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].Bonus
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.Bonus
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].Bonus
}
