package kinetic

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the Run window and loop.
type RunConfig struct {
	Title  string
	Width  int // defaults to 640
	Height int // defaults to 480
	// Draw renders each frame after the scheduler tick. Optional; the engine
	// itself draws nothing.
	Draw func(screen *ebiten.Image)
	// ShowFPS overlays actual FPS/TPS in the top-left corner.
	ShowFPS bool
}

// Run opens a window and ticks the scheduler once per display refresh,
// feeding Tick millisecond timestamps from a monotonic process clock. It
// blocks until the window is closed or the scheduler is destroyed. Ticks are
// strictly sequential; a tick is never started before the previous one
// returns.
func Run(s *Scheduler, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title == "" {
		cfg.Title = "kinetic"
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)

	return ebiten.RunGame(&runGame{
		sched: s,
		cfg:   cfg,
		start: time.Now(),
	})
}

// runGame adapts a Scheduler to ebiten.Game.
type runGame struct {
	sched *Scheduler
	cfg   RunConfig
	start time.Time
}

func (g *runGame) Update() error {
	if g.sched.IsDestroyed() {
		return ebiten.Termination
	}
	g.sched.Tick(float64(time.Since(g.start)) / float64(time.Millisecond))
	return nil
}

func (g *runGame) Draw(screen *ebiten.Image) {
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen)
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *runGame) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
