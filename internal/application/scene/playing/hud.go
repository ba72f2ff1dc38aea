package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/chickenrun/internal/infrastructure/font"
)

var (
	colorBarBG     = color.RGBA{60, 60, 60, 255}
	colorBarBorder = color.RGBA{20, 20, 20, 255}
	colorHealthFG  = color.RGBA{100, 200, 100, 255}
	colorHealthLow = color.RGBA{220, 80, 60, 255}
	colorBossFG    = color.RGBA{200, 90, 40, 255}
	colorHUDText   = color.RGBA{250, 250, 240, 255}
)

const (
	barW = 200
	barH = 14
)

// HUD shows the status bars. It implements service.Display.
type HUD struct {
	faces *font.Faces

	health     float64
	coins      int
	bottles    int
	bossHealth float64
	bossShown  bool
}

// NewHUD creates a HUD with full bars
func NewHUD(faces *font.Faces) *HUD {
	if faces == nil {
		faces = font.Fallback()
	}
	h := &HUD{faces: faces}
	h.Reset()
	return h
}

// Reset restores the values shown before a session starts
func (h *HUD) Reset() {
	h.health = 100
	h.coins = 0
	h.bottles = 0
	h.bossHealth = 100
	h.bossShown = false
}

func (h *HUD) SetHealthPercentage(pct float64)     { h.health = pct }
func (h *HUD) SetCoinCount(n int)                  { h.coins = n }
func (h *HUD) SetBottleCount(n int)                { h.bottles = n }
func (h *HUD) SetBossHealthPercentage(pct float64) { h.bossHealth = pct }

// ShowBoss toggles the boss bar
func (h *HUD) ShowBoss(shown bool) {
	h.bossShown = shown
}

// Draw renders the bars along the top edge of a screen screenW wide
func (h *HUD) Draw(screen *ebiten.Image, screenW int) {
	fg := colorHealthFG
	if h.health <= 30 {
		fg = colorHealthLow
	}
	drawBar(screen, 10, 10, h.health, fg)

	line := fmt.Sprintf("Coins %d   Bottles %d", h.coins, h.bottles)
	text.Draw(screen, line, h.faces.Body, 10, 10+barH+18, colorHUDText)

	if h.bossShown {
		x := float32(screenW - barW - 10)
		drawBar(screen, x, 10, h.bossHealth, colorBossFG)
		text.Draw(screen, "Boss", h.faces.Body, int(x), 10+barH+18, colorHUDText)
	}
}

func drawBar(screen *ebiten.Image, x, y float32, pct float64, fg color.Color) {
	fill := float32(min(max(pct, 0), 100) / 100 * barW)
	vector.FillRect(screen, x, y, barW, barH, colorBarBG, false)
	if fill > 0 {
		vector.FillRect(screen, x, y, fill, barH, fg, false)
	}
	vector.StrokeRect(screen, x, y, barW, barH, 2, colorBarBorder, false)
}
