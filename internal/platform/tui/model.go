package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/avasilyev/tui-pong/internal/core"
	"github.com/avasilyev/tui-pong/internal/pong"
)

// tickDuration is the fixed simulation timestep, matching pong.TimeStep.
var tickStep float64 = pong.TimeStep

var tickDuration = time.Duration(float64(time.Second) * tickStep)

const (
	// maxFrameDelta caps how much wall-clock time a single frame may feed
	// the accumulator, so a suspended terminal doesn't replay seconds of
	// simulation in one burst.
	maxFrameDelta = 250 * time.Millisecond

	// keyHold is how long a key counts as held after its last press or
	// terminal auto-repeat event. Terminals report no key-up, so "currently
	// held down" is emulated from repeat events within this window.
	keyHold = 150 * time.Millisecond
)

// Model is the Bubble Tea model driving the game. It owns the fixed-timestep
// accumulator that decouples simulation rate from display rate.
type Model struct {
	world  *pong.World
	screen *core.Screen
	theme  pong.Theme
	keys   KeyMap
	logger *log.Logger
	debug  bool
	fps    int

	held        map[core.Action]time.Time
	lastFrame   time.Time
	accumulator time.Duration
	paused      bool
	quitting    bool
	err         error
}

// NewModel creates the model with a fresh world.
func NewModel(cfg core.RuntimeConfig, theme pong.Theme, logger *log.Logger, debug bool) Model {
	fps := cfg.TickRate
	if fps <= 0 {
		fps = core.DefaultConfig().TickRate
	}
	return Model{
		world:  pong.NewWorld(),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		theme:  theme,
		keys:   DefaultKeyMap(),
		logger: logger,
		debug:  debug,
		fps:    fps,
		held:   make(map[core.Action]time.Time),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world uses fixed units; only the projection changes.
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Movement keys are recorded as held;
// the input frame for each simulation tick is derived from them.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.ActionFor(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
		if !m.paused {
			// Drop time spent paused instead of simulating through it.
			m.lastFrame = time.Time{}
			m.accumulator = 0
		}
	case core.ActionNone:
	default:
		m.held[action] = time.Now()
	}
	return m, nil
}

// handleFrame advances the accumulator and runs as many fixed simulation
// ticks as the elapsed wall-clock time requires.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	next := frameCmd(m.fps)

	if m.paused {
		return m, next
	}
	if m.lastFrame.IsZero() {
		m.lastFrame = now
		return m, next
	}

	delta := now.Sub(m.lastFrame)
	m.lastFrame = now
	if delta > maxFrameDelta {
		delta = maxFrameDelta
	}
	m.accumulator += delta

	for m.accumulator >= tickDuration {
		m.accumulator -= tickDuration

		if err := m.world.Step(m.inputFrame(now)); err != nil {
			m.err = err
			m.logger.Error("simulation halted", "error", err)
			m.quitting = true
			return m, tea.Quit
		}

		if m.debug && len(m.world.Events()) > 0 {
			m.logger.Debug("collision",
				"count", len(m.world.Events()),
				"tick", m.world.Ticks(),
				"total", m.world.TotalCollisions())
		}
	}

	return m, next
}

// inputFrame builds the tick's input from the currently held keys,
// expiring entries whose hold window has lapsed.
func (m Model) inputFrame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for action, pressed := range m.held {
		if now.Sub(pressed) <= keyHold {
			frame.Set(action)
		} else {
			delete(m.held, action)
		}
	}
	return frame
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.world.Render(m.screen, m.theme)

	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ")
	}

	return RenderScreen(m.screen)
}

// Err returns the error that halted the simulation, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program and blocks until the game exits.
func Run(cfg core.RuntimeConfig, theme pong.Theme, logger *log.Logger, debug bool) error {
	model := NewModel(cfg, theme, logger, debug)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
