package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/chickenrun/internal/application/state"
	"github.com/younwookim/chickenrun/internal/domain/entity"
)

// Colors for rendering
var (
	colorSky      = color.RGBA{250, 220, 150, 255}
	colorGround   = color.RGBA{150, 110, 60, 255}
	colorPlayer   = color.RGBA{60, 120, 200, 255}
	colorHurt     = color.RGBA{255, 255, 255, 220}
	colorDead     = color.RGBA{90, 90, 90, 255}
	colorChicken  = color.RGBA{140, 90, 50, 255}
	colorChick    = color.RGBA{240, 210, 60, 255}
	colorDying    = color.RGBA{120, 120, 120, 160}
	colorCoin     = color.RGBA{255, 215, 0, 255}
	colorPickup   = color.RGBA{70, 160, 90, 255}
	colorBottle   = color.RGBA{40, 180, 120, 255}
	colorSplash   = color.RGBA{180, 230, 200, 200}
	colorBoss     = color.RGBA{170, 60, 40, 255}
	colorBossMad  = color.RGBA{230, 40, 30, 255}
	colorHitBox   = color.RGBA{255, 0, 255, 200}
	colorOverlay  = color.RGBA{0, 0, 0, 128}
	colorWonBG    = color.RGBA{30, 90, 30, 180}
	colorLostBG   = color.RGBA{100, 0, 0, 180}
	colorOverText = color.RGBA{255, 255, 255, 255}
)

// groundLine is where walkers stand on screen
const groundLine = 430

// cameraX keeps the player CameraOffset pixels from the left edge
func (p *Playing) cameraX() float64 {
	return max(0, p.session.World().Player.X-p.opts.Tuning.Display.CameraOffset)
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)
	vector.FillRect(screen, 0, groundLine, float32(p.screenW), float32(p.screenH-groundLine), colorGround, false)

	camX := p.cameraX()
	w := p.session.World()
	debug := ebiten.IsKeyPressed(ebiten.KeyTab)

	for _, c := range w.Level.Coins {
		box := c.RawBox()
		vector.DrawFilledCircle(screen, float32(box.Left-camX+box.Width()/2), float32(box.Top+box.Height()/2), float32(c.Box().Width()/2), colorCoin, true)
	}
	for _, b := range w.Level.Bottles {
		p.drawBody(screen, &b.Body, camX, colorPickup, debug)
	}
	for _, e := range w.Level.Enemies {
		p.drawBody(screen, &e.Body, camX, enemyColor(e), debug)
	}
	if b := w.Level.Boss; b != nil {
		p.drawBody(screen, &b.Body, camX, bossColor(b), debug)
	}
	for _, b := range w.Projectiles {
		c := colorBottle
		if b.Splashing {
			c = colorSplash
		}
		p.drawBody(screen, &b.Body, camX, c, debug)
	}
	p.drawBody(screen, &w.Player.Body, camX, playerColor(w.Player), debug)

	p.hud.ShowBoss(w.Level.Boss != nil && w.Level.Boss.State != entity.BossDormant)
	p.hud.Draw(screen, p.screenW)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, colorOverlay, "PAUSED", "Esc resume   Enter restart   M mute   Q menu")
	case state.StateWon:
		p.drawOverlay(screen, colorWonBG, "YOU WIN", p.summary()+"   Enter play again   Q menu")
	case state.StateLost:
		p.drawOverlay(screen, colorLostBG, "GAME OVER", p.summary()+"   Enter retry   Q menu")
	}
}

func (p *Playing) drawBody(screen *ebiten.Image, b *entity.Body, camX float64, c color.Color, debug bool) {
	raw := b.RawBox()
	x := float32(raw.Left - camX)
	if x > float32(p.screenW) || x+float32(raw.Width()) < 0 {
		return
	}
	vector.FillRect(screen, x, float32(raw.Top), float32(raw.Width()), float32(raw.Height()), c, false)

	// Tab shows the inset hit boxes
	if debug {
		hit := b.Box()
		vector.StrokeRect(screen, float32(hit.Left-camX), float32(hit.Top), float32(hit.Width()), float32(hit.Height()), 1, colorHitBox, false)
	}
}

func (p *Playing) drawOverlay(screen *ebiten.Image, bg color.Color, title, hint string) {
	vector.FillRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), bg, false)

	faces := p.hud.faces
	tw := text.BoundString(faces.Title, title).Dx()
	text.Draw(screen, title, faces.Title, (p.screenW-tw)/2, p.screenH/2-10, colorOverText)

	hw := text.BoundString(faces.Body, hint).Dx()
	text.Draw(screen, hint, faces.Body, (p.screenW-hw)/2, p.screenH/2+30, colorOverText)
}

func (p *Playing) summary() string {
	pl := p.session.World().Player
	return fmt.Sprintf("Coins %d", pl.Coins)
}

func playerColor(pl *entity.Player) color.Color {
	switch pl.Pose {
	case entity.PoseDead:
		return colorDead
	case entity.PoseHurt:
		return colorHurt
	default:
		return colorPlayer
	}
}

func enemyColor(e *entity.Enemy) color.Color {
	if e.Dying {
		return colorDying
	}
	if e.Kind == entity.KindChick {
		return colorChick
	}
	return colorChicken
}

func bossColor(b *entity.Boss) color.Color {
	switch b.State {
	case entity.BossDead:
		return colorDead
	case entity.BossHurt:
		return colorHurt
	case entity.BossAttacking, entity.BossJumpAttacking:
		return colorBossMad
	default:
		return colorBoss
	}
}
