// Package workflow implements the article lifecycle state machine.
// It is a pure predicate engine: the caller checks a transition here and
// then persists the new state itself, atomically, to avoid racing a stale
// from-state past validation.
package workflow

import (
	"pressroom-backend/domain/core/valueobjects"
	pkgerrors "pressroom-backend/pkg/errors"
)

// transitions is the adjacency table of legal state changes. It is built
// once at package load and never mutated. Self-transitions are handled
// separately and are always valid.
var transitions = map[valueobjects.ArticleState][]valueobjects.ArticleState{
	valueobjects.StateDraft: {
		valueobjects.StateSaved,
		valueobjects.StateDeleted,
	},
	valueobjects.StateSaved: {
		valueobjects.StateDraft,
		valueobjects.StatePendingReview,
		valueobjects.StateDeleted,
	},
	valueobjects.StatePendingReview: {
		valueobjects.StateSaved,
		valueobjects.StatePublished,
		valueobjects.StateDeleted,
	},
	valueobjects.StatePublished: {
		valueobjects.StateArchived,
		valueobjects.StateDeleted,
	},
	valueobjects.StateArchived: {
		valueobjects.StatePublished,
		valueobjects.StateDeleted,
	},
	valueobjects.StateDeleted: {
		valueobjects.StateDraft,
	},
}

// InitialState is the state every newly created article starts in
func InitialState() valueobjects.ArticleState {
	return valueobjects.StateDraft
}

// IsValidTransition reports whether from -> to is a legal state change.
// Identity transitions are always allowed so that saving an article in
// place stays idempotent.
func IsValidTransition(from, to valueobjects.ArticleState) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns an invalid-transition error when from -> to
// is not legal. State machine violations are caller errors, so this is
// the one place in the engine that raises on misuse rather than degrading.
func ValidateTransition(from, to valueobjects.ArticleState) error {
	if !IsValidTransition(from, to) {
		return pkgerrors.NewInvalidTransitionError(from.String(), to.String())
	}
	return nil
}

// ValidNextStates returns the set of states reachable from the given state,
// not counting the identity transition. Unrecognized states yield an empty
// set.
func ValidNextStates(from valueobjects.ArticleState) []valueobjects.ArticleState {
	row, ok := transitions[from]
	if !ok {
		return []valueobjects.ArticleState{}
	}
	next := make([]valueobjects.ArticleState, len(row))
	copy(next, row)
	return next
}

// CanEdit reports whether article content may be edited in this state
func CanEdit(state valueobjects.ArticleState) bool {
	return state == valueobjects.StateDraft || state == valueobjects.StateSaved
}

// CanPublish reports whether the article may be published from this state
func CanPublish(state valueobjects.ArticleState) bool {
	return state == valueobjects.StatePendingReview
}

// CanSubmitForReview reports whether the article may be submitted for review
func CanSubmitForReview(state valueobjects.ArticleState) bool {
	return state == valueobjects.StateSaved
}
