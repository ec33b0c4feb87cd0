package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"pressroom-backend/domain/core/entities"
	"pressroom-backend/domain/core/valueobjects"
	pkgerrors "pressroom-backend/pkg/errors"
)

// ArticleRepository implements ports.ArticleRepository using DynamoDB.
// Saves use a conditional write on the version attribute so two writers
// racing on the same article cannot silently overwrite each other.
type ArticleRepository struct {
	client      *dynamodb.Client
	tableName   string
	authorIndex string
	logger      *zap.Logger
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(client *dynamodb.Client, tableName, authorIndex string, logger *zap.Logger) *ArticleRepository {
	return &ArticleRepository{
		client:      client,
		tableName:   tableName,
		authorIndex: authorIndex,
		logger:      logger,
	}
}

// articleItem represents the DynamoDB item structure for an article
type articleItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	GSI2PK     string `dynamodbav:"GSI2PK"`
	GSI2SK     string `dynamodbav:"GSI2SK"`
	EntityType string `dynamodbav:"EntityType"`
	ArticleID  string `dynamodbav:"ArticleID"`
	TemplateID string `dynamodbav:"TemplateID"`
	AuthorID   string `dynamodbav:"AuthorID"`
	Title      string `dynamodbav:"Title"`
	State      string `dynamodbav:"State"`
	Content    string `dynamodbav:"Content"`
	CreatedAt  string `dynamodbav:"CreatedAt"`
	UpdatedAt  string `dynamodbav:"UpdatedAt"`
	Version    int    `dynamodbav:"Version"`
}

// Save persists an article to DynamoDB
func (r *ArticleRepository) Save(ctx context.Context, article *entities.Article) error {
	content, err := article.Content().Encode()
	if err != nil {
		return fmt.Errorf("failed to encode content: %w", err)
	}

	item := articleItem{
		PK:         fmt.Sprintf("ARTICLE#%s", article.ID()),
		SK:         "METADATA",
		GSI2PK:     fmt.Sprintf("AUTHOR#%s", article.AuthorID()),
		GSI2SK:     fmt.Sprintf("ARTICLE#%s", article.ID()),
		EntityType: "ARTICLE",
		ArticleID:  article.ID(),
		TemplateID: article.TemplateID(),
		AuthorID:   article.AuthorID(),
		Title:      article.Title(),
		State:      article.State().String(),
		Content:    string(content),
		CreatedAt:  article.CreatedAt().Format(time.RFC3339),
		UpdatedAt:  article.UpdatedAt().Format(time.RFC3339),
		Version:    article.Version(),
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal article: %w", err)
	}

	// Accept the write when the item is new or when we hold the
	// immediately preceding version
	cond := expression.AttributeNotExists(expression.Name("PK")).
		Or(expression.Name("Version").LessThan(expression.Value(article.Version())))

	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("failed to build condition: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return pkgerrors.ErrConcurrentModification
		}
		r.logger.Error("Failed to save article to DynamoDB",
			zap.Error(err),
			zap.String("articleID", article.ID()),
		)
		return pkgerrors.NewDatabaseError("save article", err)
	}

	r.logger.Debug("Saved article to DynamoDB",
		zap.String("articleID", article.ID()),
		zap.String("state", article.State().String()),
		zap.Int("version", article.Version()),
	)

	return nil
}

// GetByID retrieves an article by its ID
func (r *ArticleRepository) GetByID(ctx context.Context, id string) (*entities.Article, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("ARTICLE#%s", id)},
			"SK": &types.AttributeValueMemberS{Value: "METADATA"},
		},
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get article", err)
	}

	if result.Item == nil {
		return nil, pkgerrors.ErrArticleNotFound
	}

	var item articleItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal article: %w", err)
	}

	return articleFromItem(item)
}

// GetByAuthorID retrieves all articles for an author
func (r *ArticleRepository) GetByAuthorID(ctx context.Context, authorID string) ([]*entities.Article, error) {
	keyCond := expression.Key("GSI2PK").Equal(expression.Value(fmt.Sprintf("AUTHOR#%s", authorID)))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build key condition: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(r.authorIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	result, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("query articles", err)
	}

	return r.articlesFromItems(result.Items)
}

// GetByTemplateID retrieves all articles authored from a template
func (r *ArticleRepository) GetByTemplateID(ctx context.Context, templateID string) ([]*entities.Article, error) {
	filter := expression.Name("TemplateID").Equal(expression.Value(templateID)).
		And(expression.Name("EntityType").Equal(expression.Value("ARTICLE")))

	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build filter: %w", err)
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	result, err := r.client.Scan(ctx, input)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("scan articles", err)
	}

	return r.articlesFromItems(result.Items)
}

// Delete removes an article record entirely
func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("ARTICLE#%s", id)},
			"SK": &types.AttributeValueMemberS{Value: "METADATA"},
		},
		ConditionExpression: aws.String("attribute_exists(PK)"),
	}

	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return pkgerrors.ErrArticleNotFound
		}
		return pkgerrors.NewDatabaseError("delete article", err)
	}

	return nil
}

func (r *ArticleRepository) articlesFromItems(items []map[string]types.AttributeValue) ([]*entities.Article, error) {
	articles := make([]*entities.Article, 0, len(items))
	for _, raw := range items {
		var item articleItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			r.logger.Warn("Failed to unmarshal article item", zap.Error(err))
			continue
		}

		article, err := articleFromItem(item)
		if err != nil {
			r.logger.Warn("Failed to reconstruct article from item",
				zap.String("articleID", item.ArticleID),
				zap.Error(err),
			)
			continue
		}
		articles = append(articles, article)
	}

	return articles, nil
}

func articleFromItem(item articleItem) (*entities.Article, error) {
	createdAt, err := time.Parse(time.RFC3339, item.CreatedAt)
	if err != nil {
		createdAt = time.Now()
	}
	updatedAt, err := time.Parse(time.RFC3339, item.UpdatedAt)
	if err != nil {
		updatedAt = createdAt
	}

	article, err := entities.ReconstructArticle(
		item.ArticleID,
		item.TemplateID,
		item.AuthorID,
		item.Title,
		valueobjects.ParseContentPayload([]byte(item.Content)),
		valueobjects.ParseArticleState(item.State),
		createdAt,
		updatedAt,
		item.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct article: %w", err)
	}

	return article, nil
}
