// Package memory provides in-memory repository implementations used in
// development and tests. Stores hand out reconstructed copies so callers
// never share mutable aggregate state with the store.
package memory

import (
	"context"
	"sort"
	"sync"

	"pressroom-backend/domain/core/aggregates"
	"pressroom-backend/domain/core/entities"
	pkgerrors "pressroom-backend/pkg/errors"
)

// TemplateStore is an in-memory implementation of ports.TemplateRepository
type TemplateStore struct {
	mu        sync.RWMutex
	templates map[aggregates.TemplateID]*aggregates.Template
}

// NewTemplateStore creates a new in-memory template store
func NewTemplateStore() *TemplateStore {
	return &TemplateStore{
		templates: make(map[aggregates.TemplateID]*aggregates.Template),
	}
}

// Save persists a template snapshot
func (s *TemplateStore) Save(ctx context.Context, template *aggregates.Template) error {
	if template == nil {
		return pkgerrors.NewValidationError("template cannot be nil")
	}

	snapshot, err := copyTemplate(template)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.templates[template.ID()] = snapshot
	return nil
}

// GetByID retrieves a template by its ID
func (s *TemplateStore) GetByID(ctx context.Context, id aggregates.TemplateID) (*aggregates.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	template, exists := s.templates[id]
	if !exists {
		return nil, pkgerrors.ErrTemplateNotFound
	}

	return copyTemplate(template)
}

// GetByOwnerID retrieves all templates for an owner, newest first
func (s *TemplateStore) GetByOwnerID(ctx context.Context, ownerID string) ([]*aggregates.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*aggregates.Template
	for _, template := range s.templates {
		if template.OwnerID() != ownerID {
			continue
		}
		snapshot, err := copyTemplate(template)
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

// Delete removes a template
func (s *TemplateStore) Delete(ctx context.Context, id aggregates.TemplateID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.templates[id]; !exists {
		return pkgerrors.ErrTemplateNotFound
	}

	delete(s.templates, id)
	return nil
}

func copyTemplate(template *aggregates.Template) (*aggregates.Template, error) {
	elements := template.Elements()
	cloned := make([]*entities.Element, 0, len(elements))
	for _, element := range elements {
		cloned = append(cloned, element.Clone())
	}

	return aggregates.ReconstructTemplate(
		template.ID(),
		template.OwnerID(),
		template.Name(),
		template.Canvas(),
		cloned,
		template.CreatedAt(),
		template.UpdatedAt(),
		template.Version(),
	)
}
