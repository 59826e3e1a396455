package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brensch/rendezvous/match"
)

type model struct {
	maze        string
	total       int
	tally       match.Tally
	startTime   time.Time
	recentGames []string
	updates     <-chan GameUpdate
	done        bool
}

type TickMsg time.Time

type doneMsg struct{}

func initialModel(updates <-chan GameUpdate, total int, maze string) model {
	return model{
		maze:      maze,
		total:     total,
		startTime: time.Now(),
		updates:   updates,
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tea.Batch(waitForUpdate(m.updates), tickCmd())
}

func waitForUpdate(updates <-chan GameUpdate) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return doneMsg{}
		}
		return u
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tickCmd()
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case GameUpdate:
		m.tally.Add(msg.Result)
		line := fmt.Sprintf("Worker %d: game %d %s after %d rounds, %d pings",
			msg.WorkerID, msg.Index, msg.Result.Outcome, msg.Result.Rounds, msg.Result.Pings)
		m.recentGames = append([]string{line}, m.recentGames...)
		if len(m.recentGames) > 10 {
			m.recentGames = m.recentGames[:10]
		}
		return m, waitForUpdate(m.updates)
	}
	return m, nil
}

func (m model) View() string {
	duration := time.Since(m.startTime)
	gamesPerSec := 0.0
	if duration.Seconds() >= 1 {
		gamesPerSec = float64(m.tally.Games) / duration.Seconds()
	}

	s := fmt.Sprintf("Maze:           %s\n", m.maze)
	s += fmt.Sprintf("Games Played:   %d / %d\n", m.tally.Games, m.total)
	s += fmt.Sprintf("Results:        %s\n", m.tally.String())
	s += fmt.Sprintf("Avg Rounds:     %.1f\n", m.tally.AvgRounds())
	s += fmt.Sprintf("Duration:       %s\n", duration.Round(time.Second))
	s += fmt.Sprintf("Games/Sec:      %.2f\n\n", gamesPerSec)

	s += "Recent Games:\n"
	for _, g := range m.recentGames {
		s += g + "\n"
	}

	s += "\nPress q to quit.\n"
	return s
}
