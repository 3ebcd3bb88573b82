package viz

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/lorenzviz/internal/anim"
	"github.com/san-kum/lorenzviz/internal/config"
	"github.com/san-kum/lorenzviz/internal/sim"
)

const (
	width      = 80
	height     = 24
	seekStep   = 10
	chromeRows = 4
	gifName    = "lorenz.gif"
	charW      = 8
	charH      = 16
)

var (
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type TickMsg time.Time

// Model plays a trajectory set on a braille canvas.
type Model struct {
	set       *sim.Set
	scene     *Scene
	updater   *anim.Updater
	driver    *anim.Driver
	canvas    *Canvas
	theme     Theme
	interval  time.Duration
	frame     *anim.Frame
	paused    bool
	recording bool
	recorder  *Recorder
	showHelp  bool
	message   string
}

// NewModel wires an updater and driver for set using the playback settings
// of cfg.
func NewModel(set *sim.Set, cfg *config.Config) Model {
	scene := NewScene()
	u := anim.NewUpdater(scene, set, cfg.Tail, cfg.Stride, anim.DefaultStyle())
	last := &anim.Frame{Index: -1}
	d := anim.NewDriver(u.FrameCount(), cfg.Interval, cfg.Repeat, func(f int) {
		*last = u.Update(f)
	})
	return Model{
		set:      set,
		scene:    scene,
		updater:  u,
		driver:   d,
		canvas:   NewCanvas(width, height-chromeRows, GetTheme(cfg.Theme).BackgroundColor()),
		theme:    GetTheme(cfg.Theme),
		interval: cfg.Interval,
		frame:    last,
		recorder: NewRecorder(width*charW, (height-chromeRows)*charH, cfg.Interval),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	m.driver.Start()
	return m.tick()
}

func (m Model) Driver() *anim.Driver { return m.driver }

// Frame is the most recently rendered frame.
func (m Model) Frame() anim.Frame { return *m.frame }

func (m Model) Paused() bool { return m.paused }

func (m Model) Theme() Theme { return m.theme }

// Update handles input events and advances playback on each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.recording {
				m.saveGIF()
			}
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "[":
			m.seek(-seekStep)
		case "]":
			m.seek(seekStep)
		case "r":
			m.seekTo(0)
		case "t":
			m.theme = m.theme.Next()
			m.redraw()
		case "g":
			if m.recording {
				m.saveGIF()
				m.recording = false
			} else {
				m.recorder.Reset()
				m.recording = true
				m.message = ""
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		w, h := max(msg.Width, 10), max(msg.Height-chromeRows, 5)
		m.canvas = NewCanvas(w, h, m.theme.BackgroundColor())
		m.recorder.Width, m.recorder.Height = w*charW, h*charH
		m.recorder.Reset()
		m.redraw()
	case TickMsg:
		if !m.paused && m.driver.Tick() {
			m.redraw()
		}
		return m, m.tick()
	}
	return m, nil
}

// seek moves by delta frames and renders the target immediately.
func (m *Model) seek(delta int) {
	m.seekTo(max(m.driver.Frame(), 0) + delta)
}

func (m *Model) seekTo(frame int) {
	m.driver.Seek(frame)
	if m.driver.Phase() == anim.Idle {
		m.driver.Start()
	}
	if m.driver.Tick() {
		m.redraw()
	}
}

func (m *Model) redraw() {
	DrawScene(m.canvas, m.scene, m.theme)
	if m.recording {
		m.recorder.Capture(m.scene, m.theme)
	}
}

func (m *Model) saveGIF() {
	f, err := os.Create(gifName)
	if err != nil {
		m.message = err.Error()
		return
	}
	defer f.Close()
	if err := m.recorder.Encode(f); err != nil {
		m.message = err.Error()
		return
	}
	m.message = fmt.Sprintf("saved %s (%d frames)", gifName, m.recorder.Frames())
}

func (m Model) View() string {
	var top, bottom []*SceneLabel
	labels := append([]*SceneLabel(nil), m.scene.Labels...)
	sort.SliceStable(labels, func(i, j int) bool { return labels[i].Style.Y > labels[j].Style.Y })
	for _, l := range labels {
		if l.Style.Y > 0.5 {
			top = append(top, l)
		} else {
			bottom = append(bottom, l)
		}
	}

	var s strings.Builder
	for _, l := range top {
		s.WriteString(m.renderLabel(l) + "\n")
	}
	s.WriteString(m.canvas.Render() + "\n")
	for _, l := range bottom {
		s.WriteString(m.renderLabel(l) + "\n")
	}
	s.WriteString(m.status())

	if m.showHelp {
		return helpStyle.Render(strings.Join([]string{
			"Space  pause/resume",
			"[ ]    seek -/+10 frames",
			"R      restart",
			"T      cycle theme",
			"G      toggle GIF recording",
			"Q      quit",
		}, "\n")) + "\n\n" + s.String()
	}
	return s.String()
}

func (m Model) renderLabel(l *SceneLabel) string {
	style := lipgloss.NewStyle().Width(m.canvas.Width)
	switch l.Style.Align {
	case anim.AlignCenter:
		style = style.Align(lipgloss.Center)
	case anim.AlignRight:
		style = style.Align(lipgloss.Right)
	}
	if l.Text == anim.Title {
		return style.Render(GradientText(l.Text, m.theme.Primary, m.theme.Secondary))
	}
	return style.Foreground(lipgloss.Color(l.Style.Color)).Render(l.Text)
}

func (m Model) status() string {
	var state string
	switch {
	case m.recording:
		state = StatusRecording.Render("● REC")
	case m.paused:
		state = StatusPaused.Render("PAUSED")
	default:
		state = StatusRunning.Render(strings.ToUpper(m.driver.Phase().String()))
	}
	frames := m.driver.Frames()
	bar := ProgressBar(float64(m.frame.Index+1)/float64(frames), 20)
	line := fmt.Sprintf("%s %s %d/%d  loop %d  %s", state, bar, m.frame.Index+1, frames, m.driver.Loops(), m.theme.Name)
	if m.message != "" {
		line += "  " + Subtle.Render(m.message)
	}
	return line + "  " + KeyHint.Render("?:help")
}
