package memory

import (
	"context"
	"sort"
	"sync"

	"pressroom-backend/domain/core/entities"
	pkgerrors "pressroom-backend/pkg/errors"
)

// ArticleStore is an in-memory implementation of ports.ArticleRepository
type ArticleStore struct {
	mu       sync.RWMutex
	articles map[string]*entities.Article
}

// NewArticleStore creates a new in-memory article store
func NewArticleStore() *ArticleStore {
	return &ArticleStore{
		articles: make(map[string]*entities.Article),
	}
}

// Save persists an article snapshot
func (s *ArticleStore) Save(ctx context.Context, article *entities.Article) error {
	if article == nil {
		return pkgerrors.NewValidationError("article cannot be nil")
	}

	snapshot, err := copyArticle(article)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.articles[article.ID()] = snapshot
	return nil
}

// GetByID retrieves an article by its ID
func (s *ArticleStore) GetByID(ctx context.Context, id string) (*entities.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	article, exists := s.articles[id]
	if !exists {
		return nil, pkgerrors.ErrArticleNotFound
	}

	return copyArticle(article)
}

// GetByAuthorID retrieves all articles for an author, newest first
func (s *ArticleStore) GetByAuthorID(ctx context.Context, authorID string) ([]*entities.Article, error) {
	return s.filter(func(a *entities.Article) bool {
		return a.AuthorID() == authorID
	})
}

// GetByTemplateID retrieves all articles authored from a template
func (s *ArticleStore) GetByTemplateID(ctx context.Context, templateID string) ([]*entities.Article, error) {
	return s.filter(func(a *entities.Article) bool {
		return a.TemplateID() == templateID
	})
}

// Delete removes an article record entirely
func (s *ArticleStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.articles[id]; !exists {
		return pkgerrors.ErrArticleNotFound
	}

	delete(s.articles, id)
	return nil
}

func (s *ArticleStore) filter(keep func(*entities.Article) bool) ([]*entities.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*entities.Article
	for _, article := range s.articles {
		if !keep(article) {
			continue
		}
		snapshot, err := copyArticle(article)
		if err != nil {
			return nil, err
		}
		result = append(result, snapshot)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt().After(result[j].UpdatedAt())
	})

	return result, nil
}

func copyArticle(article *entities.Article) (*entities.Article, error) {
	return entities.ReconstructArticle(
		article.ID(),
		article.TemplateID(),
		article.AuthorID(),
		article.Title(),
		article.Content(),
		article.State(),
		article.CreatedAt(),
		article.UpdatedAt(),
		article.Version(),
	)
}
