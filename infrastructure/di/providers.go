package di

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"

	"pressroom-backend/application/commands"
	"pressroom-backend/application/commands/bus"
	"pressroom-backend/application/ports"
	"pressroom-backend/application/queries"
	querybus "pressroom-backend/application/queries/bus"
	queries_handlers "pressroom-backend/application/queries/handlers"
	"pressroom-backend/application/services"
	domainconfig "pressroom-backend/domain/config"
	"pressroom-backend/domain/core/validators"
	domainservices "pressroom-backend/domain/services"
	"pressroom-backend/domain/versioning"
	"pressroom-backend/infrastructure/config"
	"pressroom-backend/infrastructure/imagehost"
	"pressroom-backend/infrastructure/messaging"
	"pressroom-backend/infrastructure/messaging/eventbridge"
	"pressroom-backend/infrastructure/persistence/dynamodb"
	"pressroom-backend/infrastructure/persistence/memory"
)

// versionRetention is how many layout versions the versioning service keeps
const versionRetention = 20

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = level

	return zapCfg.Build()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideDomainConfig loads environment-specific domain limits
func ProvideDomainConfig(cfg *config.Config) *domainconfig.DomainConfig {
	return domainconfig.LoadDomainConfig(cfg.Environment)
}

// ProvideTemplateRepository creates a template repository for the
// configured persistence driver
func ProvideTemplateRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.TemplateRepository {
	if cfg.PersistenceDriver == "dynamodb" {
		return dynamodb.NewTemplateRepository(client, cfg.DynamoDBTable, cfg.OwnerIndex, logger)
	}
	return memory.NewTemplateStore()
}

// ProvideArticleRepository creates an article repository for the
// configured persistence driver
func ProvideArticleRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ArticleRepository {
	if cfg.PersistenceDriver == "dynamodb" {
		return dynamodb.NewArticleRepository(client, cfg.DynamoDBTable, cfg.AuthorIndex, logger)
	}
	return memory.NewArticleStore()
}

// ProvideResourceLock creates a resource lock matching the persistence driver
func ProvideResourceLock(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ResourceLock {
	if cfg.PersistenceDriver == "dynamodb" {
		return dynamodb.NewDistributedLock(client, cfg.DynamoDBTable, logger)
	}
	return memory.NewLocalLock()
}

// ProvideEventPublisher creates the event publisher
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	if cfg.EnableEventPublishing {
		return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
	}
	return messaging.NewNoopPublisher()
}

// ProvideImageHost creates the image hosting collaborator
func ProvideImageHost(cfg *config.Config) ports.ImageHost {
	return imagehost.NewLocalHost(cfg.ImageBaseURL)
}

// ProvideMapper creates the content mapper
func ProvideMapper() domainservices.Mapper {
	return domainservices.NewContentMapper()
}

// ProvideTemplateValidator creates the template validator
func ProvideTemplateValidator(domainCfg *domainconfig.DomainConfig) *validators.TemplateValidator {
	return validators.NewTemplateValidatorWithConfig(domainCfg)
}

// ProvideVersioningService creates the layout versioning service
func ProvideVersioningService() *versioning.VersioningService {
	return versioning.NewVersioningService(versionRetention)
}

// ProvideTemplateService creates the template application service
func ProvideTemplateService(
	templateRepo ports.TemplateRepository,
	versioningService *versioning.VersioningService,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *services.TemplateService {
	return services.NewTemplateService(templateRepo, versioningService, publisher, logger)
}

// ProvideArticleService creates the article application service
func ProvideArticleService(
	articleRepo ports.ArticleRepository,
	templateRepo ports.TemplateRepository,
	mapper domainservices.Mapper,
	publisher ports.EventPublisher,
	lock ports.ResourceLock,
	logger *zap.Logger,
) *services.ArticleService {
	return services.NewArticleService(articleRepo, templateRepo, mapper, publisher, lock, logger)
}

// ProvideInMemoryCache creates a simple in-memory query cache.
// In production this would be Redis or similar.
func ProvideInMemoryCache() querybus.Cache {
	return NewInMemoryCache()
}

// CommandHandlerAdapter adapts typed command handlers to the generic interface
type CommandHandlerAdapter struct {
	handler func(context.Context, bus.Command) error
}

// Handle implements bus.CommandHandler
func (a *CommandHandlerAdapter) Handle(ctx context.Context, cmd bus.Command) error {
	return a.handler(ctx, cmd)
}

// ProvideCommandBus creates a command bus with every command registered.
// Handlers that return data are also exposed directly on the container;
// the bus drops their results.
func ProvideCommandBus(
	createTemplate *commands.CreateTemplateHandler,
	addElement *commands.AddElementHandler,
	updateElement *commands.UpdateElementHandler,
	removeElement *commands.RemoveElementHandler,
	setCanvas *commands.SetCanvasHandler,
	attachImage *commands.AttachImageHandler,
	createArticle *commands.CreateArticleHandler,
	saveContent *commands.SaveArticleContentHandler,
	transition *commands.TransitionArticleHandler,
) *bus.CommandBus {
	commandBus := bus.NewCommandBus()

	commandBus.Register(commands.CreateTemplateCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			c, ok := cmd.(commands.CreateTemplateCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := createTemplate.Handle(ctx, c)
			return err
		},
	})

	commandBus.Register(commands.AddElementCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			c, ok := cmd.(commands.AddElementCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := addElement.Handle(ctx, c)
			return err
		},
	})

	commandBus.Register(commands.UpdateElementCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			c, ok := cmd.(commands.UpdateElementCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return updateElement.Handle(ctx, c)
		},
	})

	commandBus.Register(commands.RemoveElementCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			c, ok := cmd.(commands.RemoveElementCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return removeElement.Handle(ctx, c)
		},
	})

	commandBus.Register(commands.SetCanvasCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			c, ok := cmd.(commands.SetCanvasCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return setCanvas.Handle(ctx, c)
		},
	})

	commandBus.Register(commands.AttachImageCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			c, ok := cmd.(commands.AttachImageCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := attachImage.Handle(ctx, c)
			return err
		},
	})

	commandBus.Register(commands.CreateArticleCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			c, ok := cmd.(commands.CreateArticleCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := createArticle.Handle(ctx, c)
			return err
		},
	})

	commandBus.Register(commands.SaveArticleContentCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			c, ok := cmd.(commands.SaveArticleContentCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return saveContent.Handle(ctx, c)
		},
	})

	commandBus.Register(commands.TransitionArticleCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			c, ok := cmd.(commands.TransitionArticleCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := transition.Handle(ctx, c)
			return err
		},
	})

	return commandBus
}

// QueryHandlerAdapter adapts typed query handlers to the generic interface
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

// Handle implements querybus.QueryHandler
func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates a query bus with registered handlers. Template
// reads sit behind the caching middleware; article reads are always fresh
// because workflow state drives what the editor may do next.
func ProvideQueryBus(
	templateService *services.TemplateService,
	articleService *services.ArticleService,
	cache querybus.Cache,
	cfg *config.Config,
	logger *zap.Logger,
) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()
	caching := querybus.NewCachingMiddleware(cache, cfg.CacheTTLSeconds)

	getTemplateHandler := queries_handlers.NewGetTemplateHandler(templateService, logger)
	queryBus.Register(queries.GetTemplateQuery{}, caching.Wrap(&QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.GetTemplateQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getTemplateHandler.Handle(ctx, q)
		},
	}))

	listTemplatesHandler := queries_handlers.NewListTemplatesHandler(templateService, logger)
	queryBus.Register(queries.ListTemplatesQuery{}, caching.Wrap(&QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.ListTemplatesQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listTemplatesHandler.Handle(ctx, q)
		},
	}))

	getArticleHandler := queries_handlers.NewGetArticleHandler(articleService, logger)
	queryBus.Register(queries.GetArticleQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.GetArticleQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getArticleHandler.Handle(ctx, q)
		},
	})

	listArticlesHandler := queries_handlers.NewListArticlesHandler(articleService, logger)
	queryBus.Register(queries.ListArticlesQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.ListArticlesQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listArticlesHandler.Handle(ctx, q)
		},
	})

	buildSkeletonHandler := queries_handlers.NewBuildSkeletonHandler(articleService, logger)
	queryBus.Register(queries.BuildSkeletonQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.BuildSkeletonQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return buildSkeletonHandler.Handle(ctx, q)
		},
	})

	return queryBus
}
