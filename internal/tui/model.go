package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/taskive/taskive/internal/catalog"
	"github.com/taskive/taskive/internal/shop"
	"github.com/taskive/taskive/internal/tasks"
	"github.com/taskive/taskive/internal/user"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateTasks
	StatePets
	StateStore
	StateAddTask
	StateConfirmDelete
)

var tabNames = []string{"Dashboard", "Tasks", "Pets", "Store"}

// refreshMsg drives the periodic redraw so countdown labels stay current
// while the background watcher mutates state.
type refreshMsg time.Time

const refreshInterval = 30 * time.Second

type Model struct {
	user   *user.Store
	tasks  *tasks.Store
	shop   *shop.Shop
	dialog *shop.Dialog

	state    SessionState
	keys     KeyMap
	help     help.Model
	cursor   int
	form     *huh.Form
	taskForm *taskFormValues

	pendingDeleteID string
	statusMsg       string
	quitting        bool
	width           int
	height          int
}

func NewModel(userStore *user.Store, taskStore *tasks.Store, shopStore *shop.Shop) Model {
	return Model{
		user:   userStore,
		tasks:  taskStore,
		shop:   shopStore,
		dialog: shop.NewDialog(shopStore),
		state:  StateDashboard,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return refreshTick()
}

func refreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

// tab reports which browsing tab the session is on, treating modal states
// as belonging to the tab they were opened from.
func (m Model) tab() SessionState {
	switch m.state {
	case StateAddTask, StateConfirmDelete:
		return StateTasks
	default:
		return m.state
	}
}

func (m Model) cursorMax() int {
	switch m.state {
	case StateTasks:
		return len(m.tasks.Tasks()) - 1
	case StatePets:
		return len(m.user.Pets()) - 1
	case StateStore:
		if m.dialog.State() == shop.StatePetTargetSelection {
			return len(m.user.Pets()) - 1
		}
		return len(m.storeItems()) - 1
	default:
		return 0
	}
}

// storeItems lists the purchasable catalog, pets first then food.
func (m Model) storeItems() []catalog.Item {
	items := catalog.Pets()
	return append(items, catalog.Foods()...)
}

func (m *Model) clampCursor() {
	max := m.cursorMax()
	if max < 0 {
		m.cursor = 0
		return
	}
	if m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
