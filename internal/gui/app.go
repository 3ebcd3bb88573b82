package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/lorenzviz/internal/anim"
	"github.com/san-kum/lorenzviz/internal/config"
	"github.com/san-kum/lorenzviz/internal/sim"
	"github.com/san-kum/lorenzviz/internal/viz"
)

const (
	screenW   = 1280
	screenH   = 720
	targetFPS = 40
	seekStep  = 10

	// camDistance is the orbit radius around the view box center, in data units.
	camDistance = 110
	// markerScale converts marker size in points to sphere radius.
	markerScale = 0.12
)

var (
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
)

type App struct {
	Scene   *viz.Scene
	Updater *anim.Updater
	Driver  *anim.Driver
	Theme   viz.Theme
	Camera  rl.Camera3D
	Running bool

	accum float32
	frame anim.Frame
}

// initWindow opens the window at 1280x720 and sets the target FPS to 40.
func initWindow() {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(screenW, screenH, "lorenzviz")
	rl.SetTargetFPS(targetFPS)
	rl.SetExitKey(0)
}

// NewApp wires an updater and driver over set. It does not touch the
// window, so the returned App can be built before InitWindow.
func NewApp(set *sim.Set, cfg *config.Config) *App {
	a := &App{
		Scene:   viz.NewScene(),
		Theme:   viz.GetTheme(cfg.Theme),
		Running: true,
		Camera: rl.NewCamera3D(
			rl.NewVector3(0, 0, camDistance),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			45.0,
			rl.CameraPerspective,
		),
	}
	a.Updater = anim.NewUpdater(a.Scene, set, cfg.Tail, cfg.Stride, anim.DefaultStyle())
	a.Driver = anim.NewDriver(a.Updater.FrameCount(), cfg.Interval, cfg.Repeat, func(f int) {
		a.frame = a.Updater.Update(f)
	})
	return a
}

// Run opens the window and plays set until the window is closed.
func Run(set *sim.Set, cfg *config.Config) {
	initWindow()
	defer rl.CloseWindow()
	app := NewApp(set, cfg)
	app.Driver.Start()
	app.Driver.Tick()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			return
		}
		a.Update()
		a.Draw()
	}
}

// Update handles input and ticks the driver at most once per display frame.
// A long display frame delays the animation rather than skipping frames.
func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.seekTo(0)
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		a.seekTo(a.Driver.Frame() + seekStep)
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		a.seekTo(a.Driver.Frame() - seekStep)
	}
	if rl.IsKeyPressed(rl.KeyT) {
		a.Theme = a.Theme.Next()
	}

	if !a.Running {
		return
	}
	a.advance(rl.GetFrameTime())
}

// advance adds elapsed seconds and ticks once the interval has passed.
// Leftover time is dropped, never carried into a second tick.
func (a *App) advance(elapsed float32) bool {
	a.accum += elapsed
	if a.accum < float32(a.Driver.Interval().Seconds()) {
		return false
	}
	a.accum = 0
	return a.Driver.Tick()
}

func (a *App) seekTo(frame int) {
	a.Driver.Seek(frame)
	a.Driver.Tick()
	a.accum = 0
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(toColor(a.Theme.BackgroundColor(), 1))

	a.Camera.Position, a.Camera.Target = orbit(a.Scene.Camera.Eye())
	rl.BeginMode3D(a.Camera)
	a.drawLines()
	a.drawMarkers()
	rl.EndMode3D()

	a.drawLabels()
	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) drawLines() {
	for _, l := range a.Scene.Lines {
		if l.Len() < 2 {
			continue
		}
		// width changes only apply to the next batch
		rl.DrawRenderBatchActive()
		rl.SetLineWidth(float32(math.Max(1, l.Style.Width)))
		col := toColor(a.Theme.Color(l.Style.Color), l.Style.Alpha)
		prev := toWorld(l.Point(0))
		for i := 1; i < l.Len(); i++ {
			p := toWorld(l.Point(i))
			rl.DrawLine3D(prev, p, col)
			prev = p
		}
	}
	rl.DrawRenderBatchActive()
	rl.SetLineWidth(1)
}

func (a *App) drawMarkers() {
	for _, m := range a.Scene.Markers {
		p, ok := m.Position()
		if !ok {
			continue
		}
		r := float32(m.Size * markerScale)
		pos := toWorld(p)
		if m.Marker.EdgeColor != "" {
			edge, err := colorful.Hex(m.Marker.EdgeColor)
			if err == nil {
				rl.DrawSphereWires(pos, r*1.05, 6, 8, toColor(edge, m.Marker.EdgeWidth))
			}
		}
		rl.DrawSphere(pos, r, toColor(a.Theme.Color(m.Marker.Color), 1))
	}
}

func (a *App) drawLabels() {
	for _, l := range a.Scene.Labels {
		text := viz.Latin1(l.Text)
		if text == "" {
			continue
		}
		size := int32(l.Style.Size * 1.5)
		w := rl.MeasureText(text, size)
		x := int32(l.Style.X * screenW)
		switch l.Style.Align {
		case anim.AlignCenter:
			x -= w / 2
		case anim.AlignRight:
			x -= w
		}
		y := int32((1-l.Style.Y)*screenH) - size
		y = max(y, 4)

		if l.Style.Shadow != "" {
			if c, err := colorful.Hex(l.Style.Shadow); err == nil {
				rl.DrawText(text, x+2, y+2, size, toColor(c, 1))
			}
		}
		c, err := colorful.Hex(l.Style.Color)
		if err != nil {
			continue
		}
		rl.DrawText(text, x, y, size, toColor(c, 1))
	}
}

func (a *App) DrawHUD() {
	status := "RUNNING"
	col := ColSelect
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	rl.DrawText(status, 30, 30, 16, col)
	rl.DrawText(fmt.Sprintf("frame %d/%d  loop %d", a.frame.Index+1, a.Driver.Frames(), a.Driver.Loops()), 30, 52, 14, ColText)
	rl.DrawText("[SPACE] PAUSE  [<-/->] SEEK  [R] RESTART  [T] THEME  [Q] QUIT", 30, screenH-30, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), screenW-90, 30, 14, ColTextDim)
}

// toWorld maps data axes (z up) onto raylib's y-up world, centered on the
// view box.
func toWorld(p viz.Vec3) rl.Vector3 {
	c := viz.LorenzBox.Center()
	return rl.NewVector3(float32(p.X-c.X), float32(p.Z-c.Z), float32(-(p.Y - c.Y)))
}

// orbit places the camera on a sphere around the box center along the
// scene camera's unit eye vector.
func orbit(eye viz.Vec3) (pos, target rl.Vector3) {
	c := viz.LorenzBox.Center()
	return toWorld(c.Add(eye.Scale(camDistance))), toWorld(c)
}

func toColor(c colorful.Color, alpha float64) rl.Color {
	r, g, b := c.RGB255()
	a := uint8(math.Round(math.Max(0, math.Min(1, alpha)) * 255))
	return rl.NewColor(r, g, b, a)
}
