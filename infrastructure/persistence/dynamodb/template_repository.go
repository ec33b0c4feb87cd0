package dynamodb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"pressroom-backend/domain/core/aggregates"
	"pressroom-backend/domain/core/valueobjects"
	pkgerrors "pressroom-backend/pkg/errors"
)

// TemplateRepository implements ports.TemplateRepository using DynamoDB.
// Templates live in the single table as one item per template; the element
// layout is stored as a JSON document attribute.
type TemplateRepository struct {
	client    *dynamodb.Client
	tableName string
	indexName string
	logger    *zap.Logger
}

// NewTemplateRepository creates a new TemplateRepository
func NewTemplateRepository(client *dynamodb.Client, tableName, indexName string, logger *zap.Logger) *TemplateRepository {
	return &TemplateRepository{
		client:    client,
		tableName: tableName,
		indexName: indexName,
		logger:    logger,
	}
}

// templateItem represents the DynamoDB item structure for a template
type templateItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	GSI1PK     string `dynamodbav:"GSI1PK"`
	GSI1SK     string `dynamodbav:"GSI1SK"`
	EntityType string `dynamodbav:"EntityType"`
	TemplateID string `dynamodbav:"TemplateID"`
	OwnerID    string `dynamodbav:"OwnerID"`
	Name       string `dynamodbav:"Name"`
	Layout     string `dynamodbav:"Layout"`
	CreatedAt  string `dynamodbav:"CreatedAt"`
	UpdatedAt  string `dynamodbav:"UpdatedAt"`
	Version    int    `dynamodbav:"Version"`
}

// Save persists a template to DynamoDB
func (r *TemplateRepository) Save(ctx context.Context, template *aggregates.Template) error {
	layout, err := json.Marshal(aggregates.EncodeLayout(template))
	if err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}

	item := templateItem{
		PK:         fmt.Sprintf("OWNER#%s", template.OwnerID()),
		SK:         fmt.Sprintf("TEMPLATE#%s", template.ID().String()),
		GSI1PK:     fmt.Sprintf("TEMPLATEID#%s", template.ID().String()),
		GSI1SK:     "METADATA",
		EntityType: "TEMPLATE",
		TemplateID: template.ID().String(),
		OwnerID:    template.OwnerID(),
		Name:       template.Name(),
		Layout:     string(layout),
		CreatedAt:  template.CreatedAt().Format(time.RFC3339),
		UpdatedAt:  template.UpdatedAt().Format(time.RFC3339),
		Version:    template.Version(),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal template: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to save template to DynamoDB",
			zap.Error(err),
			zap.String("templateID", template.ID().String()),
		)
		return pkgerrors.NewDatabaseError("save template", err)
	}

	r.logger.Debug("Saved template to DynamoDB",
		zap.String("templateID", template.ID().String()),
		zap.String("ownerID", template.OwnerID()),
		zap.Int("elementCount", template.ElementCount()),
	)

	return nil
}

// GetByID retrieves a template by its ID
func (r *TemplateRepository) GetByID(ctx context.Context, id aggregates.TemplateID) (*aggregates.Template, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.indexName),
		KeyConditionExpression: aws.String("GSI1PK = :pk AND GSI1SK = :sk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: fmt.Sprintf("TEMPLATEID#%s", id.String())},
			":sk": &types.AttributeValueMemberS{Value: "METADATA"},
		},
		Limit: aws.Int32(1),
	}

	result, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("query template", err)
	}

	if len(result.Items) == 0 {
		return nil, pkgerrors.ErrTemplateNotFound
	}

	var item templateItem
	if err := attributevalue.UnmarshalMap(result.Items[0], &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal template: %w", err)
	}

	return templateFromItem(item)
}

// GetByOwnerID retrieves all templates for an owner
func (r *TemplateRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]*aggregates.Template, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: fmt.Sprintf("OWNER#%s", ownerID)},
			":sk": &types.AttributeValueMemberS{Value: "TEMPLATE#"},
		},
	}

	result, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("query templates", err)
	}

	templates := make([]*aggregates.Template, 0, len(result.Items))
	for _, raw := range result.Items {
		var item templateItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			r.logger.Warn("Failed to unmarshal template item", zap.Error(err))
			continue
		}

		template, err := templateFromItem(item)
		if err != nil {
			r.logger.Warn("Failed to reconstruct template from item",
				zap.String("templateID", item.TemplateID),
				zap.Error(err),
			)
			continue
		}
		templates = append(templates, template)
	}

	return templates, nil
}

// Delete removes a template
func (r *TemplateRepository) Delete(ctx context.Context, id aggregates.TemplateID) error {
	template, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("OWNER#%s", template.OwnerID())},
			"SK": &types.AttributeValueMemberS{Value: fmt.Sprintf("TEMPLATE#%s", id.String())},
		},
	}

	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		return pkgerrors.NewDatabaseError("delete template", err)
	}

	r.logger.Debug("Template deleted",
		zap.String("templateID", id.String()),
		zap.String("ownerID", template.OwnerID()),
	)

	return nil
}

func templateFromItem(item templateItem) (*aggregates.Template, error) {
	var layout aggregates.LayoutJSON
	if err := json.Unmarshal([]byte(item.Layout), &layout); err != nil {
		// A corrupt layout document should not make the template unreadable
		layout = aggregates.LayoutJSON{}
	}

	canvas, err := valueobjects.NewCanvasProperties(layout.CanvasWidth, layout.CanvasHeight, layout.BackgroundColor)
	if err != nil {
		canvas = valueobjects.DefaultCanvasProperties()
	}

	createdAt, err := time.Parse(time.RFC3339, item.CreatedAt)
	if err != nil {
		createdAt = time.Now()
	}
	updatedAt, err := time.Parse(time.RFC3339, item.UpdatedAt)
	if err != nil {
		updatedAt = createdAt
	}

	template, err := aggregates.ReconstructTemplate(
		aggregates.TemplateID(item.TemplateID),
		item.OwnerID,
		item.Name,
		canvas,
		aggregates.ElementsFromJSON(layout.Elements),
		createdAt,
		updatedAt,
		item.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct template: %w", err)
	}

	return template, nil
}
