package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/taskive/taskive/internal/shop"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case refreshMsg:
		m.tasks.CheckDeadlines()
		return m, refreshTick()
	case tea.KeyMsg:
		switch m.state {
		case StateAddTask:
			return m.updateAddTask(msg)
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateBrowsing(msg)
		}
	}

	if m.state == StateAddTask && m.form != nil {
		return m.updateAddTask(msg)
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		m.state = (m.tab() + 1) % 4
		m.cursor = 0
		m.statusMsg = ""
		m.dialog.Cancel()
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.tab() + 3) % 4
		m.cursor = 0
		m.statusMsg = ""
		m.dialog.Cancel()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.clampCursor()
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()
		return m, nil
	}

	switch m.state {
	case StateTasks:
		return m.updateTasksTab(msg)
	case StateStore:
		return m.updateStoreTab(msg)
	}
	return m, nil
}

func (m Model) updateTasksTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	active := m.tasks.Tasks()
	switch {
	case key.Matches(msg, m.keys.Add):
		m.taskForm = &taskFormValues{}
		m.form = newTaskForm(m.taskForm)
		m.state = StateAddTask
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Complete):
		if m.cursor < len(active) {
			t := active[m.cursor]
			m.tasks.UpdateTask(t.ID, t.Title, "", "", t.Description, true)
			m.statusMsg = fmt.Sprintf("Completed %q", t.Title)
			m.clampCursor()
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(active) {
			m.pendingDeleteID = active[m.cursor].ID
			m.state = StateConfirmDelete
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateStoreTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.dialog.Cancel()
		m.cursor = 0
		return m, nil
	}
	if !key.Matches(msg, m.keys.Enter) {
		return m, nil
	}

	switch m.dialog.State() {
	case shop.StateIdle:
		items := m.storeItems()
		if m.cursor < len(items) {
			m.dialog.Select(items[m.cursor])
		}
	case shop.StateItemSelected:
		item, _ := m.dialog.Item()
		if err := m.dialog.Confirm(); err != nil {
			m.statusMsg = err.Error()
		} else if m.dialog.State() == shop.StatePetTargetSelection {
			m.cursor = 0
			m.statusMsg = "Choose a pet to feed"
		} else {
			m.statusMsg = fmt.Sprintf("Bought %s", item.Name)
		}
	case shop.StatePetTargetSelection:
		pets := m.user.Pets()
		if m.cursor < len(pets) {
			if err := m.dialog.ChooseTarget(pets[m.cursor].ID); err != nil {
				m.statusMsg = err.Error()
			} else {
				m.statusMsg = fmt.Sprintf("Fed %s", pets[m.cursor].Name)
			}
			m.cursor = 0
		}
	}
	return m, nil
}

func (m Model) updateAddTask(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.form = nil
		m.taskForm = nil
		m.state = StateTasks
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		t := m.tasks.AddTask(m.taskForm.Title, m.taskForm.Date, m.taskForm.Time, m.taskForm.Description)
		m.statusMsg = fmt.Sprintf("Added %q (%s)", t.Title, t.TimeLeft)
		m.form = nil
		m.taskForm = nil
		m.state = StateTasks
		m.clampCursor()
		return m, nil
	case huh.StateAborted:
		m.form = nil
		m.taskForm = nil
		m.state = StateTasks
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if t, ok := m.tasks.TaskByID(m.pendingDeleteID); ok {
			m.tasks.DeleteTask(t.ID)
			m.statusMsg = fmt.Sprintf("Deleted %q", t.Title)
		}
		m.pendingDeleteID = ""
		m.state = StateTasks
		m.clampCursor()
	case "n", "N", "esc":
		m.pendingDeleteID = ""
		m.state = StateTasks
	}
	return m, nil
}
