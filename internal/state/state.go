// internal/state/state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// State - интерфейс для всех состояний
type State interface {
	Enter()
	Update(elapsed time.Duration)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine - структура для управления состояниями
type StateMachine struct {
	current State
	err     error
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current возвращает текущее состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Stop завершает работу машины. err == nil означает штатный выход.
func (sm *StateMachine) Stop(err error) {
	if err == nil {
		err = ebiten.Termination
	}
	sm.err = err
}

// Err возвращает причину остановки или nil, пока машина работает.
func (sm *StateMachine) Err() error {
	return sm.err
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(elapsed time.Duration) {
	if sm.current != nil {
		sm.current.Update(elapsed)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
