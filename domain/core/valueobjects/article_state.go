package valueobjects

// ArticleState represents the lifecycle state of an article.
// The lowercase codes are the stable serialization form used at the
// storage boundary.
type ArticleState string

const (
	StateDraft         ArticleState = "draft"
	StateSaved         ArticleState = "saved"
	StatePendingReview ArticleState = "pending_review"
	StatePublished     ArticleState = "published"
	StateArchived      ArticleState = "archived"
	StateDeleted       ArticleState = "deleted"
)

// AllArticleStates returns every lifecycle state
func AllArticleStates() []ArticleState {
	return []ArticleState{
		StateDraft,
		StateSaved,
		StatePendingReview,
		StatePublished,
		StateArchived,
		StateDeleted,
	}
}

// ParseArticleState converts a stored state code into an ArticleState.
// Unrecognized codes deserialize to draft so that articles persisted by
// older or newer versions of the system remain usable.
func ParseArticleState(code string) ArticleState {
	s := ArticleState(code)
	if !s.IsValid() {
		return StateDraft
	}
	return s
}

// String returns the serialization code of the state
func (s ArticleState) String() string {
	return string(s)
}

// IsValid reports whether the state is one of the six lifecycle states
func (s ArticleState) IsValid() bool {
	switch s {
	case StateDraft, StateSaved, StatePendingReview, StatePublished, StateArchived, StateDeleted:
		return true
	default:
		return false
	}
}
