package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskive/taskive/internal/catalog"
	"github.com/taskive/taskive/internal/models"
	"github.com/taskive/taskive/internal/shop"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateAddTask:
		if m.form != nil {
			return docStyle.Render(m.form.View())
		}
	case StateConfirmDelete:
		return m.viewConfirmDelete()
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	switch m.tab() {
	case StateDashboard:
		b.WriteString(m.viewDashboard())
	case StateTasks:
		b.WriteString(m.viewTasks())
	case StatePets:
		b.WriteString(m.viewPets())
	case StateStore:
		b.WriteString(m.viewStore())
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.statusMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}

func (m Model) viewTabs() string {
	rendered := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if SessionState(i) == m.tab() {
			rendered = append(rendered, activeTabStyle.Render(name))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewDashboard() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  (level %d)\n", selectedStyle.Render(m.user.Username()), m.user.Level())
	fmt.Fprintf(&b, "XP: %d/%d    Coins: %d    Completed: %d\n",
		m.user.XP(), m.user.XPRequired(), m.user.Coins(), m.user.CompletedCount())

	b.WriteString("\nRecent tasks\n")
	recent := m.tasks.RecentTasks()
	if len(recent) == 0 {
		b.WriteString(dimStyle.Render("  nothing yet"))
		b.WriteString("\n")
	}
	for _, t := range recent {
		fmt.Fprintf(&b, "  %s %s\n", t.Title, dimStyle.Render("("+t.TimeLeft+")"))
	}

	b.WriteString("\nPets\n")
	pets := m.user.Pets()
	if len(pets) == 0 {
		b.WriteString(dimStyle.Render("  none, visit the store"))
		b.WriteString("\n")
	}
	for _, p := range pets {
		fmt.Fprintf(&b, "  %s\n", renderPet(p))
	}
	return b.String()
}

func (m Model) viewTasks() string {
	active := m.tasks.Tasks()
	if len(active) == 0 {
		return dimStyle.Render("No active tasks. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, t := range active {
		line := fmt.Sprintf("%s  %s", t.Title, dimStyle.Render(t.TimeLeft))
		if t.AssignedPetID != nil {
			if p, ok := m.user.PetByID(*t.AssignedPetID); ok {
				line += dimStyle.Render("  ♥ " + p.Name)
			}
		}
		b.WriteString(cursorLine(i == m.cursor, line))
	}
	return b.String()
}

func (m Model) viewPets() string {
	pets := m.user.Pets()
	if len(pets) == 0 {
		return dimStyle.Render("No pets yet. Buy one in the store.")
	}

	var b strings.Builder
	for i, p := range pets {
		b.WriteString(cursorLine(i == m.cursor, renderPet(p)))
	}
	return b.String()
}

func (m Model) viewStore() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Coins: %d\n\n", m.user.Coins())

	if m.dialog.State() == shop.StatePetTargetSelection {
		if item, ok := m.dialog.Item(); ok {
			fmt.Fprintf(&b, "Feed %s (+%d HP) to which pet?\n\n", item.Name, item.HealingPoints)
		}
		for i, p := range m.user.Pets() {
			b.WriteString(cursorLine(i == m.cursor, renderPet(p)))
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("enter: feed  esc: cancel"))
		return b.String()
	}

	for i, item := range m.storeItems() {
		b.WriteString(cursorLine(i == m.cursor, m.renderStoreItem(item)))
	}

	if m.dialog.State() == shop.StateItemSelected {
		if item, ok := m.dialog.Item(); ok {
			b.WriteString("\n")
			fmt.Fprintf(&b, "Buy %s for %d coins? ", item.Name, item.Price)
			b.WriteString(dimStyle.Render("enter: confirm  esc: cancel"))
		}
	}
	return b.String()
}

func (m Model) renderStoreItem(item catalog.Item) string {
	switch item.Kind {
	case catalog.KindFood:
		return fmt.Sprintf("%s  %dc  %s", item.Name, item.Price,
			dimStyle.Render(fmt.Sprintf("heals %d HP", item.HealingPoints)))
	default:
		line := fmt.Sprintf("%s  %dc  %s", item.Name, item.Price,
			dimStyle.Render(fmt.Sprintf("%d HP", item.HealthPoints)))
		if item.MinLevel > 1 {
			line += dimStyle.Render(fmt.Sprintf("  (level %d+)", item.MinLevel))
		}
		if m.shop.Owned(item.ID) {
			line += statusStyle.Render("  owned")
		}
		return line
	}
}

func (m Model) viewConfirmDelete() string {
	title := "this task"
	if t, ok := m.tasks.TaskByID(m.pendingDeleteID); ok {
		title = fmt.Sprintf("%q", t.Title)
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 3).
		Render(fmt.Sprintf("Delete %s?\n\n%s", title, dimStyle.Render("y: delete  n: keep")))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func renderPet(p models.Pet) string {
	line := fmt.Sprintf("%s  %d/%d HP", p.Name, p.Health, p.MaxHealth)
	switch p.Status {
	case models.PetDead:
		return line + dangerStyle.Render("  dead")
	case models.PetSick:
		return line + dimStyle.Render("  sick")
	default:
		return line
	}
}

func cursorLine(selected bool, line string) string {
	if selected {
		return selectedStyle.Render("> ") + line + "\n"
	}
	return "  " + line + "\n"
}
