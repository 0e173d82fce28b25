package starblitz

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/starblitz/internal/core"
	"github.com/vovakirdan/starblitz/internal/games/starblitz/combat"
)

// Arena glyphs.
const (
	glyphSeeker     = '◆'
	glyphWanderer   = '●'
	glyphPlayerShot = '•'
	glyphEnemyShot  = '◦'
	glyphLife       = '♥'
)

// spinnerFrames animate the spinner's independent rotation.
var spinnerFrames = []rune{'|', '/', '─', '\\'}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	shakeX, shakeY := g.camera.Offset()

	dst.DrawBox(core.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight))

	g.renderParticles(dst, shakeX, shakeY)
	g.renderProjectiles(dst, shakeX, shakeY)
	g.renderEnemies(dst, shakeX, shakeY)
	g.renderShip(dst, shakeX, shakeY)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  |  Press R to restart", g.engine.Score()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the two status rows above the arena.
func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf(" %s — Score: %d", g.Title(), g.engine.Score())
	dst.DrawTextColored(0, 0, left, core.ColorWhite)
	x := runeLen(left)

	combo, mult := g.engine.Combo()
	if mult > 1 {
		tag := fmt.Sprintf("  x%d", mult)
		color := core.ColorBrightYellow
		if mult >= 4 {
			color = core.ColorBrightMagenta
		}
		dst.DrawTextColored(x, 0, tag, color)
		x += runeLen(tag)
	}
	if combo > 1 {
		tag := fmt.Sprintf("  Combo: %d", combo)
		dst.DrawTextColored(x, 0, tag, core.ColorCyan)
	}

	lives := " Lives: " + strings.Repeat(string(glyphLife), g.ship.Lives()) + " "
	dst.DrawTextColored(dst.Width()-runeLen(lives)-1, 0, lives, core.ColorBrightRed)

	for sx := 0; sx < dst.Width(); sx++ {
		dst.SetCell(sx, 1, '─', core.ColorGray)
	}
	g.renderBossBar(dst)
}

// renderBossBar overlays the boss health bar on the separator row while a
// boss is alive.
func (g *Game) renderBossBar(dst *core.Screen) {
	cur, max, ok := g.engine.BossHealth()
	if !ok || max <= 0 {
		return
	}
	const width = 20
	filled := cur * width / max
	bar := " BOSS [" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "] "
	x := (dst.Width() - runeLen(bar)) / 2
	dst.DrawTextColored(x, 1, bar, core.ColorBrightMagenta)
}

// drawGlyph plots one arena-space position as a colored cell, clipped to
// the playfield so actors straddling the border never overdraw the frame.
func (g *Game) drawGlyph(dst *core.Screen, pos core.Vec2, shakeX, shakeY int, r rune, c core.Color) {
	x := g.arenaX + int(pos.X) + shakeX
	y := g.arenaY + int(pos.Y) + shakeY
	if x < g.arenaX || x >= g.arenaX+int(g.arenaW) || y < g.arenaY || y >= g.arenaY+int(g.arenaH) {
		return
	}
	dst.SetCell(x, y, r, c)
}

// renderShip draws the player, blinking while invulnerable.
func (g *Game) renderShip(dst *core.Screen, shakeX, shakeY int) {
	if !g.ship.Alive() {
		return
	}
	if g.ship.Invulnerable() && (g.tick/4)%2 == 1 {
		return
	}

	f := g.ship.Facing()
	glyph := '▲'
	if math.Abs(f.X) > math.Abs(f.Y) {
		if f.X > 0 {
			glyph = '►'
		} else {
			glyph = '◄'
		}
	} else if f.Y > 0 {
		glyph = '▼'
	}
	g.drawGlyph(dst, g.ship.Position(), shakeX, shakeY, glyph, core.ColorBrightCyan)
}

// renderEnemies draws every live enemy with its kind's glyph.
func (g *Game) renderEnemies(dst *core.Screen, shakeX, shakeY int) {
	for _, en := range g.engine.World().Enemies {
		switch en.Kind {
		case combat.KindSeeker:
			g.drawGlyph(dst, en.Pos, shakeX, shakeY, glyphSeeker, en.Color)
		case combat.KindWanderer:
			g.drawGlyph(dst, en.Pos, shakeX, shakeY, glyphWanderer, en.Color)
		case combat.KindSpinner:
			frame := int(en.Rotation/(math.Pi/4)) % len(spinnerFrames)
			if frame < 0 {
				frame += len(spinnerFrames)
			}
			g.drawGlyph(dst, en.Pos, shakeX, shakeY, spinnerFrames[frame], en.Color)
		case combat.KindBoss:
			g.renderBoss(dst, en, shakeX, shakeY)
		}
	}
}

// renderBoss draws the boss as a three-row hull around its center.
func (g *Game) renderBoss(dst *core.Screen, en *combat.Enemy, shakeX, shakeY int) {
	for dy := -1; dy <= 1; dy++ {
		span := 3
		if dy != 0 {
			span = 2
		}
		for dx := -span; dx <= span; dx++ {
			p := core.V(en.Pos.X+float64(dx), en.Pos.Y+float64(dy))
			g.drawGlyph(dst, p, shakeX, shakeY, '█', en.Color)
		}
	}
	g.drawGlyph(dst, en.Pos, shakeX, shakeY, '◉', core.ColorBrightRed)
}

// renderProjectiles draws both shot streams.
func (g *Game) renderProjectiles(dst *core.Screen, shakeX, shakeY int) {
	w := g.engine.World()
	for _, p := range w.PlayerShots {
		g.drawGlyph(dst, p.Pos, shakeX, shakeY, glyphPlayerShot, p.Color)
	}
	for _, p := range w.EnemyShots {
		g.drawGlyph(dst, p.Pos, shakeX, shakeY, glyphEnemyShot, p.Color)
	}
}

// renderParticles draws the effect pool under the actors.
func (g *Game) renderParticles(dst *core.Screen, shakeX, shakeY int) {
	for _, p := range g.particles.Particles() {
		if p.Text != "" {
			for i, r := range []rune(p.Text) {
				pos := core.V(p.Pos.X+float64(i), p.Pos.Y)
				g.drawGlyph(dst, pos, shakeX, shakeY, r, p.Color)
			}
			continue
		}
		g.drawGlyph(dst, p.Pos, shakeX, shakeY, p.Char, p.Color)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	g.drawCenteredText(dst, line1, boxY+1)
	g.drawCenteredText(dst, line2, boxY+3)
}

// drawCenteredText draws text centered horizontally.
func (g *Game) drawCenteredText(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	x := (dst.Width() - len(text)) / 2
	for i, ch := range text {
		px := x + i
		if px >= 0 && px < dst.Width() {
			dst.Set(px, y, ch)
		}
	}
}

// runeLen counts display cells for HUD strings with multi-byte glyphs.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
