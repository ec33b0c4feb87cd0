package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pressroom-backend/domain/core/valueobjects"
)

func TestInitialState(t *testing.T) {
	assert.Equal(t, valueobjects.StateDraft, InitialState())
}

func TestIsValidTransition_Table(t *testing.T) {
	cases := []struct {
		name  string
		from  valueobjects.ArticleState
		to    valueobjects.ArticleState
		valid bool
	}{
		{"draft to saved", valueobjects.StateDraft, valueobjects.StateSaved, true},
		{"draft to pending review", valueobjects.StateDraft, valueobjects.StatePendingReview, false},
		{"draft to published", valueobjects.StateDraft, valueobjects.StatePublished, false},
		{"saved back to draft", valueobjects.StateSaved, valueobjects.StateDraft, true},
		{"saved to pending review", valueobjects.StateSaved, valueobjects.StatePendingReview, true},
		{"saved to published", valueobjects.StateSaved, valueobjects.StatePublished, false},
		{"pending review back to saved", valueobjects.StatePendingReview, valueobjects.StateSaved, true},
		{"pending review to published", valueobjects.StatePendingReview, valueobjects.StatePublished, true},
		{"pending review to archived", valueobjects.StatePendingReview, valueobjects.StateArchived, false},
		{"published to archived", valueobjects.StatePublished, valueobjects.StateArchived, true},
		{"published back to saved", valueobjects.StatePublished, valueobjects.StateSaved, false},
		{"published back to draft", valueobjects.StatePublished, valueobjects.StateDraft, false},
		{"archived back to published", valueobjects.StateArchived, valueobjects.StatePublished, true},
		{"archived to draft", valueobjects.StateArchived, valueobjects.StateDraft, false},
		{"deleted restores to draft", valueobjects.StateDeleted, valueobjects.StateDraft, true},
		{"deleted to saved", valueobjects.StateDeleted, valueobjects.StateSaved, false},
		{"deleted to published", valueobjects.StateDeleted, valueobjects.StatePublished, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValidTransition(tc.from, tc.to))
		})
	}
}

func TestIsValidTransition_DeleteReachableFromEveryState(t *testing.T) {
	for _, state := range valueobjects.AllArticleStates() {
		if state == valueobjects.StateDeleted {
			continue
		}
		assert.True(t, IsValidTransition(state, valueobjects.StateDeleted),
			"delete should be reachable from %s", state)
	}
}

func TestIsValidTransition_SelfTransitionAlwaysAllowed(t *testing.T) {
	for _, state := range valueobjects.AllArticleStates() {
		assert.True(t, IsValidTransition(state, state),
			"self-transition should be allowed for %s", state)
	}
}

func TestValidateTransition_IllegalMove(t *testing.T) {
	err := ValidateTransition(valueobjects.StateDraft, valueobjects.StatePublished)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "draft")
	assert.Contains(t, err.Error(), "published")
}

func TestValidNextStates_ExcludesIdentity(t *testing.T) {
	next := ValidNextStates(valueobjects.StateSaved)

	assert.ElementsMatch(t, []valueobjects.ArticleState{
		valueobjects.StateDraft,
		valueobjects.StatePendingReview,
		valueobjects.StateDeleted,
	}, next)
	assert.NotContains(t, next, valueobjects.StateSaved)
}

func TestValidNextStates_UnknownStateYieldsEmptySet(t *testing.T) {
	next := ValidNextStates(valueobjects.ArticleState("bogus"))

	assert.Empty(t, next)
}

func TestValidNextStates_ReturnsCopy(t *testing.T) {
	first := ValidNextStates(valueobjects.StateDraft)
	first[0] = valueobjects.StatePublished

	second := ValidNextStates(valueobjects.StateDraft)
	assert.Equal(t, valueobjects.StateSaved, second[0])
}

func TestCapabilityPredicates(t *testing.T) {
	assert.True(t, CanEdit(valueobjects.StateDraft))
	assert.True(t, CanEdit(valueobjects.StateSaved))
	assert.False(t, CanEdit(valueobjects.StatePendingReview))
	assert.False(t, CanEdit(valueobjects.StatePublished))
	assert.False(t, CanEdit(valueobjects.StateArchived))
	assert.False(t, CanEdit(valueobjects.StateDeleted))

	assert.True(t, CanPublish(valueobjects.StatePendingReview))
	assert.False(t, CanPublish(valueobjects.StateSaved))

	assert.True(t, CanSubmitForReview(valueobjects.StateSaved))
	assert.False(t, CanSubmitForReview(valueobjects.StateDraft))
}
