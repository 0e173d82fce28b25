package combat

import "github.com/vovakirdan/starblitz/internal/config"

// Ledger tracks score, the combo streak, and the decaying score multiplier.
//
// The multiplier is set to a higher tier at the moment the combo count
// crosses a threshold and reverts to 1 only when its own timer expires.
// The combo count resets on its shorter window; an expired combo does not
// touch a still-running multiplier.
type Ledger struct {
	cfg config.ScoringConfig

	score      int
	comboCount int
	comboTimer int
	multiplier int
	multTimer  int

	maxCombo int
}

// NewLedger creates a ledger with the multiplier at its base tier.
func NewLedger(cfg config.ScoringConfig) *Ledger {
	return &Ledger{
		cfg:        cfg,
		multiplier: 1,
	}
}

// Tick advances both decay timers by one simulation tick.
func (l *Ledger) Tick() {
	if l.comboTimer > 0 {
		l.comboTimer--
		if l.comboTimer == 0 {
			l.comboCount = 0
		}
	}
	if l.multTimer > 0 {
		l.multTimer--
		if l.multTimer == 0 {
			l.multiplier = 1
		}
	}
}

// OnEnemyDestroyed records a kill and returns the points awarded.
// The kill is scored with the multiplier in effect before any tier change
// it triggers.
func (l *Ledger) OnEnemyDestroyed(scoreValue int) int {
	points := scoreValue * l.multiplier
	l.score += points

	l.comboCount++
	l.comboTimer = l.cfg.ComboWindow
	if l.comboCount > l.maxCombo {
		l.maxCombo = l.comboCount
	}

	switch l.comboCount {
	case l.cfg.Tier4At:
		l.multiplier = 4
		l.multTimer = l.cfg.MultiplierWindow
	case l.cfg.Tier2At:
		l.multiplier = 2
		l.multTimer = l.cfg.MultiplierWindow
	}

	return points
}

// OnBossHit awards the flat per-hit points for an accepted boss hit.
// Hit points bypass the multiplier and do not advance the combo.
func (l *Ledger) OnBossHit(points int) int {
	l.score += points
	return points
}

// Score returns the current score.
func (l *Ledger) Score() int {
	return l.score
}

// Combo returns the current streak count and the active multiplier.
func (l *Ledger) Combo() (count, multiplier int) {
	return l.comboCount, l.multiplier
}

// MaxCombo returns the highest streak reached since the ledger was created.
func (l *Ledger) MaxCombo() int {
	return l.maxCombo
}

// MultiplierTicksLeft returns the remaining ticks on the multiplier window.
func (l *Ledger) MultiplierTicksLeft() int {
	return l.multTimer
}

// ComboTicksLeft returns the remaining ticks on the combo window.
func (l *Ledger) ComboTicksLeft() int {
	return l.comboTimer
}
