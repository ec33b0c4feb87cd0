package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseArticleState_KnownCodes(t *testing.T) {
	for _, state := range AllArticleStates() {
		assert.Equal(t, state, ParseArticleState(state.String()))
	}
}

func TestParseArticleState_UnknownCodeFallsBackToDraft(t *testing.T) {
	assert.Equal(t, StateDraft, ParseArticleState("in_review"))
	assert.Equal(t, StateDraft, ParseArticleState(""))
	assert.Equal(t, StateDraft, ParseArticleState("DRAFT"))
}

func TestArticleState_IsValid(t *testing.T) {
	assert.True(t, StatePendingReview.IsValid())
	assert.False(t, ArticleState("pending-review").IsValid())
}
