// internal/scheduler/scheduler.go
package scheduler

import (
	"time"

	"github.com/google/uuid"
)

// Forever - количество повторов для задачи, которая срабатывает
// до явной отмены.
const Forever = -1

// Handle идентифицирует запланированную задачу.
type Handle uuid.UUID

// NoHandle - нулевой хэндл, не соответствующий ни одной задаче.
var NoHandle Handle

func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// IsZero сообщает, что хэндл пустой.
func (h Handle) IsZero() bool {
	return h == NoHandle
}

type task[J any] struct {
	handle    Handle
	interval  time.Duration
	remaining time.Duration
	repeat    int
	job       J
	done      bool
}

// Scheduler - кооперативный планировщик отложенных и повторяющихся задач.
// Задача хранит не замыкание, а значение J, которое разрешается
// вызывающей стороной в момент срабатывания.
//
// Не потокобезопасен: весь мир живёт в одном потоке.
type Scheduler[J any] struct {
	tasks      []*task[J]
	index      map[Handle]*task[J]
	generation int
}

// New создаёт пустой планировщик.
func New[J any]() *Scheduler[J] {
	return &Scheduler[J]{
		index: make(map[Handle]*task[J]),
	}
}

// Schedule регистрирует задачу, которая сработает через delay и будет
// повторяться repeat раз с тем же интервалом. repeat = 1 означает одноразовую
// задачу, Forever - бесконечную.
func (s *Scheduler[J]) Schedule(delay time.Duration, job J, repeat int) Handle {
	if repeat == 0 || repeat < Forever {
		repeat = 1
	}
	t := &task[J]{
		handle:    Handle(uuid.New()),
		interval:  delay,
		remaining: delay,
		repeat:    repeat,
		job:       job,
	}
	s.tasks = append(s.tasks, t)
	s.index[t.handle] = t
	return t.handle
}

// Cancel снимает задачу. Неизвестный или уже отработавший хэндл игнорируется.
func (s *Scheduler[J]) Cancel(h Handle) {
	t, ok := s.index[h]
	if !ok {
		return
	}
	t.done = true
	delete(s.index, h)
}

// Pending сообщает, ждёт ли задача очередного срабатывания.
func (s *Scheduler[J]) Pending(h Handle) bool {
	_, ok := s.index[h]
	return ok
}

// Len возвращает число живых задач.
func (s *Scheduler[J]) Len() int {
	return len(s.index)
}

// Clear снимает все задачи. Безопасно вызывать из обработчика задачи:
// текущий Advance после этого не запускает больше ничего.
func (s *Scheduler[J]) Clear() {
	for _, t := range s.tasks {
		t.done = true
	}
	s.tasks = nil
	s.index = make(map[Handle]*task[J])
	s.generation++
}

// Advance сдвигает время на elapsed и запускает run для каждой задачи,
// чей срок наступил, в порядке регистрации. За один вызов задача
// срабатывает не более одного раза; повторяющаяся задача получает полный
// интервал заново.
//
// Задачи, добавленные во время Advance, ждут следующего вызова.
// Ошибка из run прерывает проход и возвращается как есть.
func (s *Scheduler[J]) Advance(elapsed time.Duration, run func(Handle, J) error) error {
	gen := s.generation
	n := len(s.tasks)
	defer s.compact()

	for i := 0; i < n; i++ {
		if s.generation != gen {
			return nil
		}
		t := s.tasks[i]
		if t.done {
			continue
		}
		t.remaining -= elapsed
		if t.remaining > 0 {
			continue
		}

		if t.repeat != Forever {
			t.repeat--
		}
		if t.repeat == 0 {
			t.done = true
			delete(s.index, t.handle)
		} else {
			t.remaining = t.interval
		}

		if err := run(t.handle, t.job); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler[J]) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}
