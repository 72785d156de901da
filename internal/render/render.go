// internal/render/render.go
package render

import (
	"image"
	"image/color"
	"time"

	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/render/shape"
	pkgrender "go-battle-city/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// RenderSystem рисует сущности мира поверх пола арены.
type RenderSystem struct {
	world  *entity.World
	face   font.Face
	origin image.Point
}

func NewRenderSystem(world *entity.World, face font.Face, origin image.Point) *RenderSystem {
	return &RenderSystem{world: world, face: face, origin: origin}
}

// Draw рисует штаб, врагов, надписи, игроков, снаряды и бонусы - в этом
// порядке, чтобы игроки и снаряды были видны поверх врагов.
func (s *RenderSystem) Draw(screen *ebiten.Image, gameTime time.Duration) {
	w := s.world
	s.drawFortress(screen)
	for _, e := range w.Enemies {
		s.drawActor(screen, e, gameTime)
	}
	for _, l := range w.Labels {
		if l.Active {
			p := l.Pos.Add(s.origin)
			pkgrender.DrawText(screen, l.Text, s.face, p.X, p.Y, config.LabelColor)
		}
	}
	for _, p := range w.Players {
		s.drawActor(screen, p, gameTime)
	}
	for _, p := range w.Projectiles {
		s.drawProjectile(screen, p)
	}
	for _, b := range w.Bonuses {
		s.drawBonus(screen, b)
	}
}

func (s *RenderSystem) rect(screen *ebiten.Image, r image.Rectangle, clr color.Color) {
	r = r.Add(s.origin)
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

func (s *RenderSystem) drawActor(screen *ebiten.Image, a *component.Actor, gameTime time.Duration) {
	switch a.State {
	case component.ActorSpawning:
		c := shape.Center(a.Rect).Add(s.origin)
		r := shape.SpawnRadius(a.SpawnFrame)
		vector.StrokeLine(screen, float32(c.X)-r, float32(c.Y), float32(c.X)+r, float32(c.Y), 2, config.ShieldColor, false)
		vector.StrokeLine(screen, float32(c.X), float32(c.Y)-r, float32(c.X), float32(c.Y)+r, 2, config.ShieldColor, false)
	case component.ActorActive:
		// Парализованный игрок мигает
		if a.Paralysed && (gameTime/(2*config.ShieldBlink))%2 == 1 {
			return
		}
		clr := shape.TankColor(a, gameTime)
		body, barrel := shape.TankShape(a.Rect, a.Direction)
		s.rect(screen, body, clr)
		for _, tr := range shape.Tracks(body, a.Direction) {
			s.rect(screen, tr, pkgrender.DarkenColor(clr))
		}
		s.rect(screen, barrel, clr)
		if a.Shielded {
			c := shape.Center(a.Rect).Add(s.origin)
			radius := float32(config.TankSize/2 + 2 + a.ShieldFrame*2)
			vector.StrokeCircle(screen, float32(c.X), float32(c.Y), radius, 2, config.ShieldColor, true)
		}
	case component.ActorExploding:
		s.drawExplosion(screen, a.Explosion)
	}
}

func (s *RenderSystem) drawProjectile(screen *ebiten.Image, p *component.Projectile) {
	switch p.State {
	case component.ProjectileActive:
		s.rect(screen, p.Rect, config.BulletColor)
	case component.ProjectileExploding:
		s.drawExplosion(screen, p.Explosion)
	}
}

func (s *RenderSystem) drawExplosion(screen *ebiten.Image, e component.Explosion) {
	if !e.Active {
		return
	}
	c := e.Center.Add(s.origin)
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), shape.ExplosionRadius(e), config.ExplosionColor, true)
}

func (s *RenderSystem) drawFortress(screen *ebiten.Image) {
	f := s.world.Fortress
	if f.State == component.FortressStanding {
		s.rect(screen, f.Rect, config.FortressColor)
		// Флаг на древке
		c := shape.Center(f.Rect)
		s.rect(screen, image.Rect(c.X-1, f.Rect.Min.Y+4, c.X+1, f.Rect.Max.Y-4), config.TextDarkColor)
		s.rect(screen, image.Rect(c.X+1, f.Rect.Min.Y+4, c.X+10, f.Rect.Min.Y+11), config.TitleColor)
		return
	}
	s.rect(screen, f.Rect, config.RuinColor)
	if f.State == component.FortressExploding {
		s.drawExplosion(screen, f.Explosion)
	}
}

func (s *RenderSystem) drawBonus(screen *ebiten.Image, b *component.Bonus) {
	if !b.Active || !b.Visible {
		return
	}
	r := b.Rect.Add(s.origin)
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.SidebarColor, false)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, config.BonusCarrierColor, false)
	c := shape.Center(r)
	letter := shape.BonusLetter(b.Kind)
	pkgrender.DrawText(screen, letter, s.face, c.X-pkgrender.TextWidth(letter, s.face)/2, c.Y-s.face.Metrics().Height.Ceil()/2, config.TextDarkColor)
}
