package shop

import (
	"errors"
	"testing"

	"github.com/taskive/taskive/internal/catalog"
	"github.com/taskive/taskive/internal/models"
)

func TestDialog_PetPurchaseFlow(t *testing.T) {
	wallet := &fakeWallet{coins: 500, level: 1}
	keeper := &fakeKeeper{}
	d := NewDialog(newTestShop(t, wallet, keeper))

	cat, _ := catalog.PetByID(1)
	d.Select(cat)
	if d.State() != StateItemSelected {
		t.Fatalf("State = %v after Select, want StateItemSelected", d.State())
	}

	if err := d.Confirm(); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if d.State() != StateIdle {
		t.Errorf("State = %v after pet purchase, want StateIdle", d.State())
	}
	if len(keeper.added) != 1 {
		t.Errorf("added %d pets, want 1", len(keeper.added))
	}
}

func TestDialog_FoodPurchaseNeedsTarget(t *testing.T) {
	wallet := &fakeWallet{coins: 100, level: 1}
	keeper := &fakeKeeper{pets: map[int]models.Pet{
		1: {ID: 1, Name: "Cat", Health: 50, MaxHealth: 100, Status: models.PetSick},
	}}
	d := NewDialog(newTestShop(t, wallet, keeper))

	sushi, _ := catalog.FoodByID(3)
	d.Select(sushi)
	if err := d.Confirm(); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if d.State() != StatePetTargetSelection {
		t.Fatalf("State = %v after confirming food, want StatePetTargetSelection", d.State())
	}
	if wallet.coins != 100 {
		t.Errorf("coins = %d before target is chosen, want 100", wallet.coins)
	}

	if err := d.ChooseTarget(1); err != nil {
		t.Fatalf("ChooseTarget failed: %v", err)
	}
	if d.State() != StateIdle {
		t.Errorf("State = %v after feeding, want StateIdle", d.State())
	}
	if wallet.coins != 50 {
		t.Errorf("coins = %d, want 50", wallet.coins)
	}
	if keeper.healed[1] != 40 {
		t.Errorf("healed = %d, want 40", keeper.healed[1])
	}
}

func TestDialog_RefusalReturnsToIdle(t *testing.T) {
	wallet := &fakeWallet{coins: 0, level: 1}
	d := NewDialog(newTestShop(t, wallet, &fakeKeeper{}))

	cat, _ := catalog.PetByID(1)
	d.Select(cat)
	if err := d.Confirm(); !errors.Is(err, ErrInsufficientCoins) {
		t.Fatalf("Confirm = %v, want ErrInsufficientCoins", err)
	}
	if d.State() != StateIdle {
		t.Errorf("State = %v after refusal, want StateIdle", d.State())
	}
}

func TestDialog_CancelHasNoEffect(t *testing.T) {
	wallet := &fakeWallet{coins: 500, level: 1}
	keeper := &fakeKeeper{}
	d := NewDialog(newTestShop(t, wallet, keeper))

	cat, _ := catalog.PetByID(1)
	d.Select(cat)
	d.Cancel()

	if d.State() != StateIdle {
		t.Errorf("State = %v after Cancel, want StateIdle", d.State())
	}
	if wallet.coins != 500 || len(keeper.added) != 0 {
		t.Error("Cancel changed state")
	}
}

func TestDialog_ConfirmWithoutSelection(t *testing.T) {
	d := NewDialog(newTestShop(t, &fakeWallet{coins: 500, level: 1}, &fakeKeeper{}))

	if err := d.Confirm(); err == nil {
		t.Error("Confirm with nothing selected succeeded")
	}
	if err := d.ChooseTarget(1); err == nil {
		t.Error("ChooseTarget with nothing selected succeeded")
	}
}

func TestDialog_SelectRestartsFlow(t *testing.T) {
	keeper := &fakeKeeper{pets: map[int]models.Pet{
		1: {ID: 1, Name: "Cat", Health: 50, MaxHealth: 100, Status: models.PetSick},
	}}
	d := NewDialog(newTestShop(t, &fakeWallet{coins: 500, level: 1}, keeper))

	sushi, _ := catalog.FoodByID(3)
	d.Select(sushi)
	if err := d.Confirm(); err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}

	cat, _ := catalog.PetByID(1)
	d.Select(cat)
	if d.State() != StateItemSelected {
		t.Errorf("State = %v after re-select, want StateItemSelected", d.State())
	}
	if item, ok := d.Item(); !ok || item.ID != cat.ID {
		t.Errorf("Item = %+v, want the newly selected cat", item)
	}
}
