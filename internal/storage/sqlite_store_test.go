package storage

import (
	"path/filepath"
	"testing"

	"github.com/taskive/taskive/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "taskive.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_InitSeedsDefaultProfile(t *testing.T) {
	s := newTestSQLiteStore(t)

	u, err := s.GetUser()
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if u.Username != "User" || u.Level != 1 || u.Coins != 200 {
		t.Errorf("default user = %+v, want User/level 1/200 coins", u)
	}
}

func TestSQLiteStore_InitIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskive.db")
	s := NewSQLiteStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	u, _ := s.GetUser()
	u.Coins = 999
	if err := s.SaveUser(u); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}
	s.Close()

	// Re-initializing an existing database must not reset the profile.
	again := NewSQLiteStore(path)
	if err := again.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	defer again.Close()

	got, err := again.GetUser()
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got.Coins != 999 {
		t.Errorf("Coins = %d after re-init, want 999", got.Coins)
	}
}

func TestSQLiteStore_LoadMissingFileFails(t *testing.T) {
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "taskive.db"))

	if err := s.Load(); err == nil {
		t.Error("Load without Init succeeded, want an error")
	}
}

func TestSQLiteStore_AbsentRecordsAreEmpty(t *testing.T) {
	s := newTestSQLiteStore(t)

	tasks, err := s.GetTasks()
	if err != nil {
		t.Fatalf("GetTasks failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("GetTasks = %v, want empty", tasks)
	}

	completed, err := s.GetCompletedTasks()
	if err != nil {
		t.Fatalf("GetCompletedTasks failed: %v", err)
	}
	if len(completed) != 0 {
		t.Errorf("GetCompletedTasks = %v, want empty", completed)
	}

	ids, err := s.GetPurchasedPetIDs()
	if err != nil {
		t.Fatalf("GetPurchasedPetIDs failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("GetPurchasedPetIDs = %v, want empty", ids)
	}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskive.db")
	s := NewSQLiteStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if err := s.SaveTasks([]models.Task{{ID: "t1", Title: "write report", TimeLeft: "No due date"}}); err != nil {
		t.Fatalf("SaveTasks failed: %v", err)
	}
	if err := s.SaveCompletedTasks([]models.Task{{ID: "t0", Title: "done", Completed: true}}); err != nil {
		t.Fatalf("SaveCompletedTasks failed: %v", err)
	}
	if err := s.SavePurchasedPetIDs([]int{2}); err != nil {
		t.Fatalf("SavePurchasedPetIDs failed: %v", err)
	}
	s.Close()

	reloaded := NewSQLiteStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reloaded.Close()

	tasks, err := reloaded.GetTasks()
	if err != nil {
		t.Fatalf("GetTasks failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "t1" {
		t.Errorf("GetTasks = %+v, want the saved task", tasks)
	}

	completed, err := reloaded.GetCompletedTasks()
	if err != nil {
		t.Fatalf("GetCompletedTasks failed: %v", err)
	}
	if len(completed) != 1 || !completed[0].Completed {
		t.Errorf("GetCompletedTasks = %+v, want the saved task", completed)
	}

	ids, err := reloaded.GetPurchasedPetIDs()
	if err != nil {
		t.Fatalf("GetPurchasedPetIDs failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != 2 {
		t.Errorf("GetPurchasedPetIDs = %v, want [2]", ids)
	}
}
