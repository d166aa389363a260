package shop

import (
	"errors"

	"github.com/taskive/taskive/internal/catalog"
)

// DialogState is the purchase dialog's position.
type DialogState int

const (
	// StateIdle means no item is selected.
	StateIdle DialogState = iota
	// StateItemSelected means an item is tapped and awaits confirm/cancel.
	StateItemSelected
	// StatePetTargetSelection follows a confirmed food purchase intent:
	// healing needs a target pet before any coins move.
	StatePetTargetSelection
)

var errNoSelection = errors.New("no item selected")

// Dialog is the purchase flow state machine: Idle -> ItemSelected ->
// {Confirmed | Cancelled} -> Idle, with a PetTargetSelection stage inserted
// for food. Cancel at any stage returns to Idle without effect.
type Dialog struct {
	shop  *Shop
	state DialogState
	item  catalog.Item
}

// NewDialog creates an idle dialog over the shop.
func NewDialog(shop *Shop) *Dialog {
	return &Dialog{shop: shop}
}

// State returns the current dialog state.
func (d *Dialog) State() DialogState {
	return d.state
}

// Item returns the selected item while one is selected.
func (d *Dialog) Item() (catalog.Item, bool) {
	if d.state == StateIdle {
		return catalog.Item{}, false
	}
	return d.item, true
}

// Select moves Idle -> ItemSelected. Selecting while a flow is in progress
// restarts the flow with the new item.
func (d *Dialog) Select(item catalog.Item) {
	d.item = item
	d.state = StateItemSelected
}

// Confirm applies a pet purchase and returns to Idle, or advances a food
// purchase to target selection. The returned error is the shop's refusal
// reason, if any; refusals also return the dialog to Idle.
func (d *Dialog) Confirm() error {
	if d.state != StateItemSelected {
		return errNoSelection
	}

	if d.item.Kind == catalog.KindFood {
		d.state = StatePetTargetSelection
		return nil
	}

	err := d.shop.BuyPet(d.item.ID)
	d.state = StateIdle
	return err
}

// ChooseTarget completes a food purchase against the chosen pet and returns
// to Idle.
func (d *Dialog) ChooseTarget(petID int) error {
	if d.state != StatePetTargetSelection {
		return errNoSelection
	}

	err := d.shop.BuyFood(d.item.ID, petID)
	d.state = StateIdle
	return err
}

// Cancel abandons the flow with no effect.
func (d *Dialog) Cancel() {
	d.state = StateIdle
}
