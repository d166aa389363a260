package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/taskive/taskive/internal/models"
)

func TestJSONStore_InitCreatesDefaultProfile(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "taskive.json"))

	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	u, err := s.GetUser()
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if u.Username != "User" || u.Level != 1 || u.Coins != 200 {
		t.Errorf("default user = %+v, want User/level 1/200 coins", u)
	}
}

func TestJSONStore_DoubleInitFails(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "taskive.json"))

	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := s.Init(); err == nil {
		t.Error("second Init succeeded, want an error")
	}
}

func TestJSONStore_LoadBeforeInitFails(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "taskive.json"))

	if err := s.Load(); err == nil {
		t.Error("Load without Init succeeded, want an error")
	}
}

func TestJSONStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskive.json")
	s := NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	deadline := time.Date(2026, 3, 11, 23, 59, 0, 0, time.UTC)
	petID := 1
	tasks := []models.Task{{
		ID:            "t1",
		Title:         "write report",
		Datetime:      "11/03/2026",
		TimeLeft:      "1 day left",
		Deadline:      &deadline,
		AssignedPetID: &petID,
	}}
	if err := s.SaveTasks(tasks); err != nil {
		t.Fatalf("SaveTasks failed: %v", err)
	}
	if err := s.SavePurchasedPetIDs([]int{1, 2}); err != nil {
		t.Fatalf("SavePurchasedPetIDs failed: %v", err)
	}
	user, _ := s.GetUser()
	user.Coins = 42
	user.Pets = []models.Pet{{ID: 1, Name: "Cat", Health: 70, MaxHealth: 100, Status: models.PetSick}}
	if err := s.SaveUser(user); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	reloaded := NewJSONStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got, err := reloaded.GetTasks()
	if err != nil {
		t.Fatalf("GetTasks failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "t1" || got[0].Deadline == nil || !got[0].Deadline.Equal(deadline) {
		t.Errorf("GetTasks = %+v, want the saved task back", got)
	}
	if got[0].AssignedPetID == nil || *got[0].AssignedPetID != 1 {
		t.Error("assigned pet id lost in round trip")
	}

	ids, err := reloaded.GetPurchasedPetIDs()
	if err != nil {
		t.Fatalf("GetPurchasedPetIDs failed: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("GetPurchasedPetIDs = %v, want [1 2]", ids)
	}

	u, err := reloaded.GetUser()
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if u.Coins != 42 || len(u.Pets) != 1 || u.Pets[0].Status != models.PetSick {
		t.Errorf("GetUser = %+v, want the saved profile back", u)
	}
}

func TestJSONStore_GettersReturnCopies(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "taskive.json"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := s.SaveTasks([]models.Task{{ID: "t1", Title: "a"}}); err != nil {
		t.Fatalf("SaveTasks failed: %v", err)
	}

	got, _ := s.GetTasks()
	got[0].Title = "mutated"

	again, _ := s.GetTasks()
	if again[0].Title != "a" {
		t.Error("GetTasks returned a view into internal state")
	}
}
