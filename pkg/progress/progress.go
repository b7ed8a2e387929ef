// Package progress reports tile-render progress to the terminal: a
// full-width bar drawn with gdamore/tcell/v2 when stdout is a real
// terminal, or a plain percentage line when it isn't (redirected to a
// file, piped, running in CI).
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// Reporter is updated once per completed tile and closed once the render
// finishes.
type Reporter interface {
	Update(done, total int)
	Done()
}

// New picks a tcell bar when stdout is attached to a terminal, otherwise a
// plain writer. tcell.NewScreen failing (no TERM, unsupported terminal) is
// treated the same as "not a terminal" rather than as a fatal error - a
// render should never fail just because it can't draw a progress bar.
func New() Reporter {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return &plainReporter{out: os.Stdout}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return &plainReporter{out: os.Stdout}
	}
	if err := screen.Init(); err != nil {
		return &plainReporter{out: os.Stdout}
	}

	return &tcellReporter{screen: screen}
}

// barChars matches the filled/partial/empty triple of BarStyleBlock.
var barChars = [3]rune{'█', '▌', '░'}

type tcellReporter struct {
	screen tcell.Screen
}

func (r *tcellReporter) Update(done, total int) {
	width, height := r.screen.Size()
	if width < 10 || total <= 0 {
		return
	}

	pct := float64(done) / float64(total)
	if pct > 1 {
		pct = 1
	}

	label := fmt.Sprintf(" %d/%d ", done, total)
	barWidth := width - len(label)
	if barWidth < 1 {
		barWidth = 1
	}
	filled := int(float64(barWidth) * pct)

	style := tcell.StyleDefault
	row := height / 2

	for x := 0; x < barWidth; x++ {
		ch := barChars[2]
		if x < filled {
			ch = barChars[0]
		}
		r.screen.SetContent(x, row, ch, nil, style.Foreground(tcell.ColorSteelBlue))
	}
	for i, ch := range label {
		r.screen.SetContent(barWidth+i, row, ch, nil, style)
	}

	r.screen.Show()
}

func (r *tcellReporter) Done() {
	r.screen.Fini()
}

type plainReporter struct {
	out      io.Writer
	lastStep int
}

// Update prints in 5% increments rather than per-tile, so a plain pipe
// doesn't get flooded with hundreds of near-identical lines.
func (r *plainReporter) Update(done, total int) {
	if total <= 0 {
		return
	}
	pct := done * 100 / total
	step := pct / 5
	if step == r.lastStep && done != total {
		return
	}
	r.lastStep = step
	fmt.Fprintf(r.out, "rendering: %d%% (%d/%d tiles)\n", pct, done, total)
}

func (r *plainReporter) Done() {
	fmt.Fprintln(r.out, "rendering: done")
}
