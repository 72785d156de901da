// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	TileSize    = 16
	ArenaTiles  = 26
	ArenaSize   = TileSize * ArenaTiles // 416
	SidebarSize = 64

	ScreenWidth  = ArenaSize + SidebarSize
	ScreenHeight = ArenaSize

	TicksPerSecond = 50
	MaxDeltaTime   = 60 * time.Millisecond

	TankSize           = 26
	TankSpeed          = 2
	TankHealth         = 100
	TankMaxBullets     = 1
	LatticeStep        = 8
	LatticeSnapPadding = 3
	LatticeSnapRange   = 5

	BulletDamage       = 100
	BulletSpeed        = 5
	BulletSpeedBoosted = 8
	BulletLength       = 8
	BulletWidth        = 6
	BulletOffset       = 11 // от края танка до снаряда

	MaxSuperpowers        = 3
	DoubleFireSuperpowers = 2
	SteelPiercingTier     = 3

	MaxActiveEnemies = 4
	EnemyPointsStep  = 100
	BonusPoints      = 500
	BonusCarrierOdds = 5
	BonusSize        = 32

	PlayerLives    = 3
	DefaultHiscore = 20000
	MaxHiscore     = 1000000
)

// Интервалы таймеров.
const (
	SpawnDuration      = 1000 * time.Millisecond
	SpawnBlinkInterval = 100 * time.Millisecond
	ShieldBlink        = 100 * time.Millisecond
	RespawnShield      = 4000 * time.Millisecond
	HelmetShield       = 10000 * time.Millisecond
	ParalysisDuration  = 10000 * time.Millisecond
	ShovelDuration     = 10000 * time.Millisecond
	FreezeDuration     = 10000 * time.Millisecond
	ExplosionFrame     = 100 * time.Millisecond
	WaterToggle        = 400 * time.Millisecond
	EnemySpawnInterval = 3000 * time.Millisecond
	EnemyFireInterval  = 1000 * time.Millisecond
	BonusBlink         = 200 * time.Millisecond
	BonusLifetime      = 10000 * time.Millisecond
	LabelLifetime      = 500 * time.Millisecond
	StageOutro         = 3000 * time.Millisecond
)

// BackgroundMusicDelay - фоновая музыка вступает, когда доиграет заставка
// стадии.
const BackgroundMusicDelay = 4330 * time.Millisecond

// Крепость стоит в нижнем центре поля.
const (
	FortressX    = 12 * TileSize
	FortressY    = 24 * TileSize
	FortressSize = 32
)

// Кадры взрывов.
const (
	BigExplosionFrames   = 3
	SmallExplosionFrames = 2
	ExplosionSize        = 32
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	SidebarColor    = color.RGBA{100, 100, 100, 255}
	BrickColor      = color.RGBA{156, 74, 0, 255}
	SteelColor      = color.RGBA{188, 188, 188, 255}
	WaterColors     = []color.RGBA{
		{66, 66, 255, 255},
		{99, 99, 255, 255},
	}
	GrassColor     = color.RGBA{0, 148, 0, 200}
	IceColor       = color.RGBA{220, 220, 235, 255}
	FortressColor  = color.RGBA{230, 230, 230, 255}
	RuinColor      = color.RGBA{90, 60, 60, 255}
	ExplosionColor = color.RGBA{255, 160, 40, 255}
	ShieldColor    = color.RGBA{255, 255, 255, 180}
	BulletColor    = color.RGBA{240, 240, 240, 255}
	LabelColor     = color.RGBA{200, 200, 200, 255}
	TextDarkColor  = color.RGBA{0, 0, 0, 255}
	TitleColor     = color.RGBA{127, 64, 64, 255}
	ScoreColor     = color.RGBA{191, 160, 128, 255}
	PlayerColors   = []color.RGBA{
		{231, 156, 33, 255},  // Первый игрок
		{0, 140, 49, 255},    // Второй игрок
	}
	EnemyColors = []color.RGBA{
		{180, 180, 180, 255}, // Обычный
		{140, 200, 255, 255}, // Быстрый
		{255, 120, 120, 255}, // Мощный
		{120, 255, 140, 255}, // Бронированный
	}
	BonusCarrierColor = color.RGBA{255, 0, 0, 255}
)
