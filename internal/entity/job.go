// internal/entity/job.go
package entity

import "go-battle-city/internal/types"

// JobKind - что сделать, когда сработает таймер.
type JobKind int

const (
	JobSpawnBlink JobKind = iota
	JobSpawnEnd
	JobShieldBlink
	JobUnshield
	JobUnparalyse
	JobExplosionFrame
	JobEnemyFire
	JobWaterToggle
	JobFortressRevert
	JobUnfreeze
	JobBonusBlink
	JobBonusExpire
	JobLabelExpire
	JobEnemySpawn
	JobStageOutro
	JobBackgroundMusic
)

var jobNames = [...]string{
	JobSpawnBlink:      "spawn-blink",
	JobSpawnEnd:        "spawn-end",
	JobShieldBlink:     "shield-blink",
	JobUnshield:        "unshield",
	JobUnparalyse:      "unparalyse",
	JobExplosionFrame:  "explosion-frame",
	JobEnemyFire:       "enemy-fire",
	JobWaterToggle:     "water-toggle",
	JobFortressRevert:  "fortress-revert",
	JobUnfreeze:        "unfreeze",
	JobBonusBlink:      "bonus-blink",
	JobBonusExpire:     "bonus-expire",
	JobLabelExpire:     "label-expire",
	JobEnemySpawn:      "enemy-spawn",
	JobStageOutro:      "stage-outro",
	JobBackgroundMusic: "background-music",
}

func (k JobKind) String() string {
	if k < 0 || int(k) >= len(jobNames) {
		return "unknown"
	}
	return jobNames[k]
}

// Job - запланированное действие. Задача хранит не ссылку на сущность,
// а её ID: цель ищется в мире в момент срабатывания и может уже не
// существовать.
type Job struct {
	Kind   JobKind
	Target types.EntityID
	// Arg - параметр задачи, например материал стены штаба.
	Arg int
}
