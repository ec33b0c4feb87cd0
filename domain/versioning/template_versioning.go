package versioning

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"pressroom-backend/domain/core/aggregates"
)

// TemplateVersion is a lightweight snapshot record of a template at a point
// in time. Articles keep their already-serialized content when a template
// changes, so versions exist for audit and diffing, not for live binding.
type TemplateVersion struct {
	TemplateID   string    `json:"template_id"`
	Version      int       `json:"version"`
	Checksum     string    `json:"checksum"`
	ElementCount int       `json:"element_count"`
	CreatedAt    time.Time `json:"created_at"`
	CreatedBy    string    `json:"created_by"`
	Description  string    `json:"description"`
}

// VersioningService produces template version records
type VersioningService struct {
	maxVersions int
}

// NewVersioningService creates a new versioning service
func NewVersioningService(maxVersions int) *VersioningService {
	return &VersioningService{maxVersions: maxVersions}
}

// MaxVersions returns how many versions a retention sweep should keep
func (s *VersioningService) MaxVersions() int {
	return s.maxVersions
}

// CreateVersion creates a version record for the template's current state
func (s *VersioningService) CreateVersion(
	template *aggregates.Template,
	userID string,
	description string,
) (*TemplateVersion, error) {
	if template == nil {
		return nil, fmt.Errorf("template cannot be nil")
	}

	checksum, err := s.calculateChecksum(template)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate checksum: %w", err)
	}

	return &TemplateVersion{
		TemplateID:   template.ID().String(),
		Version:      template.Version(),
		Checksum:     checksum,
		ElementCount: template.ElementCount(),
		CreatedAt:    time.Now(),
		CreatedBy:    userID,
		Description:  description,
	}, nil
}

// HasChanged reports whether the template's layout differs from a prior version
func (s *VersioningService) HasChanged(template *aggregates.Template, last *TemplateVersion) (bool, error) {
	if last == nil {
		return true, nil
	}
	checksum, err := s.calculateChecksum(template)
	if err != nil {
		return false, err
	}
	return checksum != last.Checksum, nil
}

// calculateChecksum hashes the template's serialized layout. The layout
// codec emits elements in ascending zIndex order, which keeps the
// representation deterministic.
func (s *VersioningService) calculateChecksum(template *aggregates.Template) (string, error) {
	layout := aggregates.EncodeLayout(template)

	jsonData, err := json.Marshal(layout)
	if err != nil {
		return "", err
	}

	hash := sha256.Sum256(jsonData)
	return hex.EncodeToString(hash[:]), nil
}
