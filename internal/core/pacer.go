package core

import "time"

// Pacer releases rows of a finished grid at a steady rate so a viewer can
// reveal it progressively.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time

	shown, total int
}

// NewPacer constructs a Pacer revealing total rows at rps rows per second.
func NewPacer(total, rps int) *Pacer {
	p := &Pacer{now: time.Now, total: max(total, 0)}
	p.SetRate(rps)
	return p
}

// SetRate changes the reveal rate. Non-positive rates fall back to 60.
func (p *Pacer) SetRate(rps int) {
	if rps <= 0 {
		rps = 60
	}
	p.step = time.Second / time.Duration(rps)
}

// Restart hides every row again and resets the reveal to total rows.
func (p *Pacer) Restart(total int) {
	p.total = max(total, 0)
	p.shown = 0
	p.accumulator = 0
	p.last = time.Time{}
}

// Skip reveals every remaining row at once.
func (p *Pacer) Skip() { p.shown = p.total }

// Done reports whether every row has been revealed.
func (p *Pacer) Done() bool { return p.shown >= p.total }

// Shown returns the number of rows revealed so far.
func (p *Pacer) Shown() int { return p.shown }

// Advance accounts for the time since the previous call and reveals as many
// rows as whole steps elapsed. It returns the number of rows revealed.
func (p *Pacer) Advance() int {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now

	revealed := 0
	for p.accumulator >= p.step && p.shown < p.total {
		p.accumulator -= p.step
		p.shown++
		revealed++
	}
	if p.Done() {
		p.accumulator = 0
	}
	return revealed
}
