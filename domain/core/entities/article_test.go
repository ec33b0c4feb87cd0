package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pressroom-backend/domain/core/valueobjects"
	pkgerrors "pressroom-backend/pkg/errors"
)

func TestNewArticle_StartsInDraft(t *testing.T) {
	article, err := NewArticle("tpl-1", "author-1", "First Post")
	require.NoError(t, err)

	assert.Equal(t, valueobjects.StateDraft, article.State())
	assert.Equal(t, 1, article.Version())
	assert.True(t, article.Content().IsEmpty())
	assert.Len(t, article.GetUncommittedEvents(), 1)
}

func TestNewArticle_RequiresTemplateAndAuthor(t *testing.T) {
	_, err := NewArticle("", "author-1", "Post")
	assert.Error(t, err)

	_, err = NewArticle("tpl-1", "", "Post")
	assert.Error(t, err)
}

func TestArticle_SaveContent_OnlyWhileEditable(t *testing.T) {
	article, err := NewArticle("tpl-1", "author-1", "Post")
	require.NoError(t, err)

	text := "body"
	payload := valueobjects.ContentPayload{Elements: []valueobjects.ContentEntry{
		{ID: "el-1", Type: "text", Content: &text},
	}}

	require.NoError(t, article.SaveContent(payload))
	assert.Equal(t, 1, article.Content().Len())

	require.NoError(t, article.TransitionTo(valueobjects.StateSaved))
	require.NoError(t, article.TransitionTo(valueobjects.StatePendingReview))

	err = article.SaveContent(payload)
	assert.ErrorIs(t, err, pkgerrors.ErrArticleNotEditable)
}

func TestArticle_TransitionTo_FullLifecycle(t *testing.T) {
	article, err := NewArticle("tpl-1", "author-1", "Post")
	require.NoError(t, err)

	steps := []valueobjects.ArticleState{
		valueobjects.StateSaved,
		valueobjects.StatePendingReview,
		valueobjects.StatePublished,
		valueobjects.StateArchived,
		valueobjects.StatePublished,
		valueobjects.StateDeleted,
		valueobjects.StateDraft,
	}
	for _, to := range steps {
		require.NoError(t, article.TransitionTo(to), "transition to %s", to)
		assert.Equal(t, to, article.State())
	}
}

func TestArticle_TransitionTo_Idempotent(t *testing.T) {
	article, err := NewArticle("tpl-1", "author-1", "Post")
	require.NoError(t, err)
	article.MarkEventsAsCommitted()
	versionBefore := article.Version()

	require.NoError(t, article.TransitionTo(valueobjects.StateDraft))

	assert.Equal(t, versionBefore, article.Version(), "self-transition does not bump the version")
	assert.Empty(t, article.GetUncommittedEvents(), "self-transition emits no event")
}

func TestArticle_TransitionTo_IllegalMove(t *testing.T) {
	article, err := NewArticle("tpl-1", "author-1", "Post")
	require.NoError(t, err)

	err = article.TransitionTo(valueobjects.StatePublished)
	assert.Error(t, err)
	assert.Equal(t, valueobjects.StateDraft, article.State())
}

func TestArticle_DeleteAndRestore(t *testing.T) {
	article, err := NewArticle("tpl-1", "author-1", "Post")
	require.NoError(t, err)
	require.NoError(t, article.TransitionTo(valueobjects.StateSaved))

	require.NoError(t, article.Delete())
	assert.Equal(t, valueobjects.StateDeleted, article.State())

	require.NoError(t, article.Restore())
	assert.Equal(t, valueobjects.StateDraft, article.State())
}

func TestReconstructArticle_UnknownStateFallsBackToDraft(t *testing.T) {
	now := time.Now()
	article, err := ReconstructArticle(
		"art-1", "tpl-1", "author-1", "Post",
		valueobjects.EmptyContentPayload(),
		valueobjects.ArticleState("limbo"),
		now, now, 3,
	)
	require.NoError(t, err)

	assert.Equal(t, valueobjects.StateDraft, article.State())
	assert.Equal(t, 3, article.Version())
}
