package game

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/jdeal-mediamath/clockwork"
	"github.com/meghashyamc/assassin/assets"
	"github.com/meghashyamc/assassin/config"
	"github.com/meghashyamc/assassin/geometry"
	"github.com/meghashyamc/assassin/logger"
	"github.com/meghashyamc/assassin/puzzle"
)

const instructionText = "Move the mouse to aim, drag the target to move it, R for a new puzzle"

var (
	backgroundColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	hudTextColor    = color.RGBA{0x22, 0x22, 0x22, 0xff}
)

type Game struct {
	cfg            *config.Config
	logger         logger.Logger
	rng            *rand.Rand
	arena          geometry.Rectangle
	settings       puzzle.Settings
	view           View
	puzzle         *puzzle.Puzzle
	aim            geometry.Vector
	shot           puzzle.Shot
	draggingTarget bool
	guardDebounce  *puzzle.Debouncer
}

func NewGame(cfg *config.Config) (*Game, error) {
	arena, err := geometry.NewCenteredRectangle(cfg.GetArenaWidth(), cfg.GetArenaHeight())
	if err != nil {
		return nil, fmt.Errorf("failed to build arena: %w", err)
	}

	g := &Game{
		cfg:    cfg,
		logger: logger.New(cfg.GetLogLevel()),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		arena:  arena,
		settings: puzzle.Settings{
			PointMargin:   cfg.GetPointMargin(),
			MinSeparation: cfg.GetMinSeparation(),
			ShotLength:    cfg.GetShotLength(),
			StopRadius:    cfg.GetStopRadius(),
		},
		view:          NewView(cfg.GetWindowWidth(), cfg.GetWindowHeight()),
		aim:           geometry.Vector{X: 1, Y: 0},
		guardDebounce: puzzle.NewDebouncer(clockwork.NewRealClock(), cfg.GetGuardDebounce()),
	}

	if err := g.newPuzzle(); err != nil {
		return nil, err
	}

	g.logger.Info("game initialized", "arena_width", arena.Width(), "arena_height", arena.Height(), "guard_debounce", cfg.GetGuardDebounce().String())
	return g, nil
}

func (g *Game) Run() error {
	g.logger.Info("starting game")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(g)
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

func (g *Game) newPuzzle() error {
	p, err := puzzle.NewRandom(g.arena, g.settings, g.rng)
	if err != nil {
		g.logger.Error("failed to create puzzle", "err", err)
		return fmt.Errorf("failed to create puzzle: %w", err)
	}

	g.puzzle = p
	g.draggingTarget = false
	g.guardDebounce.Reset()
	g.logger.Info("puzzle created", "puzzle_id", p.ID.String(), "assassin", p.Assassin().String(), "target", p.Target().String())
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.newPuzzle(); err != nil {
			return err
		}
	}

	cursor := g.view.currentMousePosition()
	g.updateTargetDrag(cursor)

	if !g.draggingTarget {
		if aim := cursor.Subtract(g.puzzle.Assassin()); aim.Norm() >= 1 {
			g.aim = aim
		}
	}

	if g.guardDebounce.Ready() {
		if err := g.puzzle.RecomputeGuards(); err != nil {
			g.logger.Error("failed to recompute guards", "puzzle_id", g.puzzle.ID.String(), "err", err)
			return err
		}
		g.logger.Debug("guards recomputed", "puzzle_id", g.puzzle.ID.String(), "target", g.puzzle.Target().String())
	}

	return g.updateShot()
}

func (g *Game) updateTargetDrag(cursor geometry.Vector) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && isGrabbed(g.puzzle.Target(), cursor) {
		g.draggingTarget = true
		g.logger.Debug("target picked up", "puzzle_id", g.puzzle.ID.String())
	}

	if !g.draggingTarget {
		return
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.draggingTarget = false
		g.logger.Debug("target dropped", "puzzle_id", g.puzzle.ID.String(), "target", g.puzzle.Target().String())
		return
	}

	if g.puzzle.Target().Distance(cursor) > 0 {
		g.puzzle.MoveTarget(cursor)
		g.guardDebounce.Trigger()
	}
}

func (g *Game) updateShot() error {
	shot, err := g.puzzle.Shoot(g.aim)
	if err != nil {
		g.logger.Error("failed to trace shot", "puzzle_id", g.puzzle.ID.String(), "aim", g.aim.String(), "err", err)
		return err
	}

	if shot.AbsorbedBy != g.shot.AbsorbedBy {
		g.logger.Debug("shot outcome changed", "puzzle_id", g.puzzle.ID.String(), "absorbed_by", shotOutcome(shot), "bounces", len(shot.Path)-2)
	}
	g.shot = shot
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	drawArena(screen, g.view, g.puzzle.Arena())
	drawShot(screen, g.view, g.shot)

	for _, guard := range g.puzzle.Guards() {
		drawMarker(screen, g.view, guard)
	}
	drawMarker(screen, g.view, g.puzzle.Target())
	drawMarker(screen, g.view, g.puzzle.Assassin())

	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("Puzzle %s", g.puzzle.ID.String()[:8]),
		fmt.Sprintf("Shot stopped by: %s", shotOutcome(g.shot)),
	}
	if g.guardDebounce.Pending() {
		lines = append(lines, "Placing guards...")
	}

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(20, 20+float64(i)*22)
		op.ColorScale.ScaleWithColor(hudTextColor)
		text.Draw(screen, line, assets.HUDFont, op)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(20, float64(g.cfg.GetWindowHeight())-30)
	op.ColorScale.ScaleWithColor(hudTextColor)
	text.Draw(screen, instructionText, assets.LabelFont, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight()
}
