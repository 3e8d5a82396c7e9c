// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui is the live system monitor dashboard. It samples bandwidth,
// disk, CPU and memory on a fixed tick and renders gauges for each.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jacktogon/gotools/internal/history"
	"github.com/jacktogon/gotools/internal/i18n"
	"github.com/jacktogon/gotools/internal/logging"
	"github.com/jacktogon/gotools/internal/netutil"
	"github.com/jacktogon/gotools/internal/sysinfo"
)

// sampleInterval is how often the dashboard refreshes.
const sampleInterval = 2 * time.Second

// reading is one round of host measurements.
type reading struct {
	down float64 // bytes/sec
	up   float64 // bytes/sec
	disk float64 // percent
	cpu  float64 // percent
	mem  float64 // percent
	err  error
}

type tickMsg time.Time

type readingMsg reading

// monitorModel is the dashboard's bubbletea model.
type monitorModel struct {
	spin     spinner.Model
	diskBar  progress.Model
	cpuBar   progress.Model
	memBar   progress.Model
	current  reading
	sampled  bool
	diskPath string
	store    *history.Store // nil disables recording
	width    int
}

// NewMonitor builds the dashboard model. When store is non-nil every
// bandwidth reading is recorded as a history sample.
func NewMonitor(diskPath string, store *history.Store) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	newBar := func() progress.Model {
		return progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	}

	return monitorModel{
		spin:     sp,
		diskBar:  newBar(),
		cpuBar:   newBar(),
		memBar:   newBar(),
		diskPath: diskPath,
		store:    store,
	}
}

// Run starts the dashboard and blocks until the user quits.
func Run(diskPath string, store *history.Store) error {
	p := tea.NewProgram(NewMonitor(diskPath, store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m monitorModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, sample(m.diskPath, m.store), tick())
}

func tick() tea.Cmd {
	return tea.Tick(sampleInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// sample gathers one reading off the Update loop.
func sample(diskPath string, store *history.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sampleInterval)
		defer cancel()

		var r reading
		r.down, r.up, r.err = netutil.SampleBandwidth(ctx, time.Second)
		if r.err == nil {
			if store != nil {
				err := store.Add(ctx, &history.Sample{
					Kind:   history.KindBandwidth,
					Target: "local",
					Down:   r.down,
					Up:     r.up,
				})
				if err != nil {
					logging.Debugf("monitor: failed to record sample: %v", err)
				}
			}
		}
		if v, err := sysinfo.DiskUsagePercent(ctx, diskPath); err == nil {
			r.disk = v
		} else if r.err == nil {
			r.err = err
		}
		if v, err := sysinfo.CPUPercent(ctx, 0); err == nil {
			r.cpu = v
		} else if r.err == nil {
			r.err = err
		}
		if v, err := sysinfo.MemoryPercent(ctx); err == nil {
			r.mem = v
		} else if r.err == nil {
			r.err = err
		}
		return readingMsg(r)
	}
}

func (m monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		barWidth := msg.Width - 24
		if barWidth < 10 {
			barWidth = 10
		}
		if barWidth > 60 {
			barWidth = 60
		}
		m.diskBar.Width = barWidth
		m.cpuBar.Width = barWidth
		m.memBar.Width = barWidth
		return m, nil

	case tickMsg:
		return m, tea.Batch(sample(m.diskPath, m.store), tick())

	case readingMsg:
		m.current = reading(msg)
		m.sampled = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m monitorModel) View() string {
	s := titleStyle.Render(i18n.T("monitor.title")) + "\n\n"

	if !m.sampled {
		return s + m.spin.View() + " sampling...\n\n" + helpStyle.Render(i18n.T("monitor.quit.hint")) + "\n"
	}

	if m.current.err != nil {
		s += errorStyle.Render(m.current.err.Error()) + "\n\n"
	}

	s += fmt.Sprintf("%s %s   %s %s\n\n",
		labelStyle.Render(i18n.T("monitor.down")+":"), valueStyle.Render(formatRate(m.current.down)),
		labelStyle.Render(i18n.T("monitor.up")+":"), valueStyle.Render(formatRate(m.current.up)))

	s += gaugeRow(i18n.T("monitor.disk"), m.diskBar, m.current.disk)
	s += gaugeRow(i18n.T("monitor.cpu"), m.cpuBar, m.current.cpu)
	s += gaugeRow(i18n.T("monitor.mem"), m.memBar, m.current.mem)

	s += "\n" + helpStyle.Render(i18n.T("monitor.quit.hint")) + "\n"
	return s
}

func gaugeRow(label string, bar progress.Model, pct float64) string {
	return fmt.Sprintf("%-10s %s %5.1f%%\n", label, bar.ViewAs(pct/100), pct)
}

// formatRate renders a bytes/sec rate with a binary unit.
func formatRate(bps float64) string {
	switch {
	case bps >= 1<<30:
		return fmt.Sprintf("%.2f GiB/s", bps/(1<<30))
	case bps >= 1<<20:
		return fmt.Sprintf("%.2f MiB/s", bps/(1<<20))
	case bps >= 1<<10:
		return fmt.Sprintf("%.2f KiB/s", bps/(1<<10))
	default:
		return fmt.Sprintf("%.0f B/s", bps)
	}
}
