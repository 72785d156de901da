// internal/defs/waves.go
package defs

// Roster - сколько врагов каждого подтипа выходит на стадии:
// basic, fast, power, armor.
type Roster [EnemyKinds]int

// StageRosters - составы врагов для 35 стадий.
var StageRosters = []Roster{
	{18, 2, 0, 0}, {14, 4, 0, 2}, {14, 4, 0, 2}, {2, 5, 10, 3}, {8, 5, 5, 2},
	{9, 2, 7, 2}, {7, 4, 6, 3}, {7, 4, 7, 2}, {6, 4, 7, 3}, {12, 2, 4, 2},
	{5, 5, 4, 6}, {0, 6, 8, 6}, {0, 8, 8, 4}, {0, 4, 10, 6}, {0, 2, 10, 8},
	{16, 2, 0, 2}, {8, 2, 8, 2}, {2, 8, 6, 4}, {4, 4, 4, 8}, {2, 8, 2, 8},
	{6, 2, 8, 4}, {6, 8, 2, 4}, {0, 10, 4, 6}, {10, 4, 4, 2}, {0, 8, 2, 10},
	{4, 6, 4, 6}, {2, 8, 2, 8}, {15, 2, 2, 1}, {0, 4, 10, 6}, {4, 8, 4, 4},
	{3, 8, 3, 6}, {6, 4, 2, 8}, {4, 4, 4, 8}, {0, 10, 4, 6}, {0, 6, 4, 10},
}

// StageRoster возвращает состав стадии. Стадии после последней
// используют последний состав.
func StageRoster(stage int) Roster {
	switch {
	case stage < 1:
		return StageRosters[0]
	case stage > len(StageRosters):
		return StageRosters[len(StageRosters)-1]
	}
	return StageRosters[stage-1]
}

// Total возвращает общее число врагов в составе.
func (r Roster) Total() int {
	n := 0
	for _, c := range r {
		n += c
	}
	return n
}

// Queue разворачивает состав в очередь подтипов и перемешивает её
// функцией shuffle (как rand.Shuffle). shuffle может быть nil.
func (r Roster) Queue(shuffle func(n int, swap func(i, j int))) []EnemyKind {
	queue := make([]EnemyKind, 0, r.Total())
	for kind, count := range r {
		for i := 0; i < count; i++ {
			queue = append(queue, EnemyKind(kind))
		}
	}
	if shuffle != nil {
		shuffle(len(queue), func(i, j int) { queue[i], queue[j] = queue[j], queue[i] })
	}
	return queue
}
