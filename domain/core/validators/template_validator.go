package validators

import (
	"fmt"
	"regexp"
	"strings"

	"pressroom-backend/domain/config"
	"pressroom-backend/domain/core/entities"
	"pressroom-backend/pkg/errors"
)

// TemplateValidator validates template-related domain rules beyond the
// invariants the aggregate itself enforces: naming, property bag limits
// and hosted image URL shape.
type TemplateValidator struct {
	nameMaxLength    int
	maxProperties    int
	maxValueLength   int
	hexColorPattern  *regexp.Regexp
	hostedURLPattern *regexp.Regexp
}

// NewTemplateValidator creates a template validator with default rules
func NewTemplateValidator() *TemplateValidator {
	return NewTemplateValidatorWithConfig(config.DefaultDomainConfig())
}

// NewTemplateValidatorWithConfig creates a template validator from domain configuration
func NewTemplateValidatorWithConfig(cfg *config.DomainConfig) *TemplateValidator {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &TemplateValidator{
		nameMaxLength:    cfg.MaxTemplateNameLength,
		maxProperties:    cfg.MaxPropertiesPerElement,
		maxValueLength:   cfg.MaxPropertyValueLength,
		hexColorPattern:  regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`),
		hostedURLPattern: regexp.MustCompile(`^https?://[^\s]+$`),
	}
}

// ValidateName validates a template name
func (v *TemplateValidator) ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.NewDomainError(errors.DomainValidationError, "TEMPLATE_NAME_REQUIRED", "Template name is required")
	}
	if len(name) > v.nameMaxLength {
		return errors.NewDomainError(
			errors.DomainValidationError,
			"TEMPLATE_NAME_TOO_LONG",
			fmt.Sprintf("Template name exceeds maximum length of %d characters", v.nameMaxLength),
		).WithDetail("max_length", v.nameMaxLength)
	}
	return nil
}

// ValidateBackgroundColor validates a canvas background color
func (v *TemplateValidator) ValidateBackgroundColor(color string) error {
	if color == "" {
		return nil // Default is substituted downstream
	}
	if !v.hexColorPattern.MatchString(color) {
		return errors.NewDomainError(
			errors.DomainValidationError,
			"INVALID_BACKGROUND_COLOR",
			"Background color must be a six digit hex color",
		).WithDetail("color", color)
	}
	return nil
}

// ValidateElement validates an element's property bag against configured limits
func (v *TemplateValidator) ValidateElement(element *entities.Element) error {
	validationErrors := errors.NewValidationErrors()

	props := element.Properties()
	if len(props) > v.maxProperties {
		validationErrors.Add("properties", fmt.Sprintf("element carries more than %d properties", v.maxProperties))
	}

	for key, value := range props {
		if s, ok := value.(string); ok && len(s) > v.maxValueLength {
			validationErrors.Add(key, fmt.Sprintf("property value exceeds maximum length of %d", v.maxValueLength))
		}
	}

	if element.Type().IsImage() {
		if url, ok := element.StringProperty(entities.PropURL); ok && url != "" {
			if !v.hostedURLPattern.MatchString(url) {
				validationErrors.Add(entities.PropURL, "image url must be an absolute http(s) URL")
			}
		}
	}

	if validationErrors.HasErrors() {
		return validationErrors
	}

	return nil
}
