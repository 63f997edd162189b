package models

import "encoding/json"

// PendingActionKind identifies an unresolved choice blocking a player.
type PendingActionKind string

const (
	PendingBuyHearts              PendingActionKind = "buy_hearts"
	PendingBuyStars               PendingActionKind = "buy_stars"
	PendingBuyExperience          PendingActionKind = "buy_experience"
	PendingBuyInsurance           PendingActionKind = "buy_insurance"
	PendingSelectDegree           PendingActionKind = "select_degree"
	PendingGamble                 PendingActionKind = "gamble"
	PendingStayOrMove             PendingActionKind = "stay_or_move"
	PendingTakeShortcut           PendingActionKind = "take_shortcut"
	PendingCashLossOrUnemployment PendingActionKind = "cash_loss_or_unemployment"
	PendingBankrupt               PendingActionKind = "bankrupt"
)

// PendingAction is one unresolved choice.
type PendingAction struct {
	Kind       PendingActionKind `json:"pending_action_type"`
	Amount     int               `json:"pending_amount"`
	Dice       []int             `json:"pending_dice,omitempty"`
	SquareName string            `json:"pending_game_square_name,omitempty"`
}

// PendingActions holds at most one entry per kind.
type PendingActions struct {
	items []PendingAction
}

// Add appends the action unless one of its kind is already queued. Returns
// false and leaves the queue unchanged on a duplicate.
func (q *PendingActions) Add(a PendingAction) bool {
	if q.FindByKind(a.Kind) != nil {
		return false
	}
	q.items = append(q.items, a)
	return true
}

func (q *PendingActions) FindByKind(kind PendingActionKind) *PendingAction {
	for i := range q.items {
		if q.items[i].Kind == kind {
			return &q.items[i]
		}
	}
	return nil
}

func (q *PendingActions) RemoveByKind(kind PendingActionKind) bool {
	for i := range q.items {
		if q.items[i].Kind == kind {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAllExcept drops every queued action except the given kind. Used when
// resolving one choice discards the player's other open offers.
func (q *PendingActions) RemoveAllExcept(kind PendingActionKind) {
	kept := q.items[:0]
	for _, a := range q.items {
		if a.Kind == kind {
			kept = append(kept, a)
		}
	}
	q.items = kept
}

func (q *PendingActions) Clear() {
	q.items = nil
}

func (q *PendingActions) Size() int {
	return len(q.items)
}

// List returns a copy of the queued actions in insertion order.
func (q *PendingActions) List() []PendingAction {
	out := make([]PendingAction, len(q.items))
	copy(out, q.items)
	return out
}

// MarshalJSON serializes the queue as a plain action array.
func (q PendingActions) MarshalJSON() ([]byte, error) {
	if q.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(q.items)
}

func (q *PendingActions) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &q.items)
}
