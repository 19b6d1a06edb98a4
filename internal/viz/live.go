// Package viz renders a running simulation in the terminal: a braille
// canvas projecting the world's x/z plane, a stats sidebar and an
// optional kinetic-energy sparkline.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/kvat/celldrift/internal/phys"
	"github.com/kvat/celldrift/internal/terrain"
	"github.com/kvat/celldrift/internal/vec"
)

const (
	canvasWidth     = 70
	canvasHeight    = 22
	framesPerSecond = 30
	historyCapacity = 300
)

type TickMsg time.Time

type particleState struct {
	pos vec.Vec3
	vel vec.Vec3
}

// Model drives the live view: it owns the simulator and steps it once
// per animation tick.
type Model struct {
	sim  *phys.Simulator
	grid *terrain.Grid
	name string
	dt   float64

	canvas   *Canvas
	view     Viewport
	terrain  [][2]int // precomputed solid pixels
	initial  []particleState
	running  bool
	showPlot bool
	t        float64

	energyHistory []float64
}

// NewModel builds a live view over sim. grid may be nil for unbounded
// worlds; the viewport then covers a fixed box around the origin.
func NewModel(sim *phys.Simulator, grid *terrain.Grid, dt float64, name string) Model {
	m := Model{
		sim:     sim,
		grid:    grid,
		name:    name,
		dt:      dt,
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		running: true,
	}

	if grid != nil {
		origin, max := grid.Origin(), grid.Max()
		m.view = Viewport{MinX: origin.X, MaxX: max.X, MinZ: origin.Z, MaxZ: max.Z}
	} else {
		m.view = Viewport{MinX: -30, MaxX: 30, MinZ: -30, MaxZ: 30}
	}

	m.terrain = solidPixels(grid, m.canvas, m.view)

	for _, p := range sim.Particles() {
		m.initial = append(m.initial, particleState{pos: *p.Center(), vel: *p.Velocity()})
	}

	return m
}

// solidPixels samples the viewport once; the terrain never changes.
func solidPixels(grid *terrain.Grid, c *Canvas, view Viewport) [][2]int {
	if grid == nil {
		return nil
	}

	// slice the world at the grid's mid-depth plane
	mid := (grid.Origin().Y + grid.Max().Y) / 2

	var pixels [][2]int
	pw, ph := c.Width*2, c.Height*4
	for py := 0; py < ph; py++ {
		z := view.MaxZ - (float64(py)+0.5)/float64(ph)*(view.MaxZ-view.MinZ)
		for px := 0; px < pw; px++ {
			x := view.MinX + (float64(px)+0.5)/float64(pw)*(view.MaxX-view.MinX)
			if grid.MaterialAt(vec.New(x, mid, z)) == terrain.Solid {
				pixels = append(pixels, [2]int{px, py})
			}
		}
	}
	return pixels
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/framesPerSecond, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "g":
			m.showPlot = !m.showPlot
		case "r":
			m.reset()
		}

	case TickMsg:
		if m.running {
			m.sim.Update(m.dt)
			m.t += m.dt
			m.recordEnergy()
		}
		return m, tick()
	}

	return m, nil
}

func (m *Model) reset() {
	for i, p := range m.sim.Particles() {
		if i >= len(m.initial) {
			break
		}
		p.SetCenter(m.initial[i].pos)
		p.SetVelocity(m.initial[i].vel)
	}
	m.t = 0
	m.energyHistory = m.energyHistory[:0]
}

func (m *Model) recordEnergy() {
	total := 0.0
	for _, p := range m.sim.Particles() {
		total += 0.5 * p.Mass() * p.Velocity().LengthSq()
	}
	if len(m.energyHistory) >= historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
	m.energyHistory = append(m.energyHistory, total)
}

func (m Model) View() string {
	m.canvas.Clear()
	for _, px := range m.terrain {
		m.canvas.Set(px[0], px[1])
	}
	for _, p := range m.sim.Particles() {
		c := p.Center()
		x, y := m.view.Project(m.canvas, c.X, c.Z)
		m.canvas.Set(x, y)
	}

	left := canvasStyle.Render(m.canvas.String())
	right := statsStyle.Render(m.stats())

	out := headerStyle.Render("celldrift · "+m.name) + "\n"
	out += lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	if m.showPlot && len(m.energyHistory) > 1 {
		plot := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(6),
			asciigraph.Width(canvasWidth),
			asciigraph.Caption("kinetic energy"))
		out += "\n" + graphStyle.Render(plot)
	}

	out += "\n" + helpStyle.Render("space pause · r reset · g energy graph · q quit")
	return out
}

func (m Model) stats() string {
	stats := m.sim.LastStats()

	energy := 0.0
	if n := len(m.energyHistory); n > 0 {
		energy = m.energyHistory[n-1]
	}

	state := "running"
	line := valueStyle.Render(state)
	if !m.running {
		line = pausedStyle.Render("paused")
	}

	rows := []struct {
		label string
		value string
	}{
		{"state", ""},
		{"time", fmt.Sprintf("%.2f s", m.t)},
		{"particles", fmt.Sprintf("%d", m.sim.Len())},
		{"moved", fmt.Sprintf("%d", stats.Moved)},
		{"blocked", fmt.Sprintf("%d", stats.Blocked)},
		{"energy", fmt.Sprintf("%.3f J", energy)},
	}

	var b strings.Builder
	for i, row := range rows {
		v := valueStyle.Render(row.value)
		if i == 0 {
			v = line
		}
		b.WriteString(labelStyle.Render(row.label) + v + "\n")
	}
	return b.String()
}

// RunLive takes over the terminal until the user quits.
func RunLive(sim *phys.Simulator, grid *terrain.Grid, dt float64, name string) error {
	p := tea.NewProgram(NewModel(sim, grid, dt, name), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
