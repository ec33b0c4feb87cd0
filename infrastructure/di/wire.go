//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"pressroom-backend/application/commands"
	"pressroom-backend/infrastructure/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideDomainConfig,
	ProvideTemplateRepository,
	ProvideArticleRepository,
	ProvideResourceLock,
	ProvideEventPublisher,
	ProvideImageHost,
	ProvideMapper,
	ProvideTemplateValidator,
	ProvideVersioningService,
	ProvideTemplateService,
	ProvideArticleService,
	ProvideInMemoryCache,
	commands.NewCreateTemplateHandler,
	commands.NewAddElementHandler,
	commands.NewUpdateElementHandler,
	commands.NewRemoveElementHandler,
	commands.NewSetCanvasHandler,
	commands.NewAttachImageHandler,
	commands.NewCreateArticleHandler,
	commands.NewSaveArticleContentHandler,
	commands.NewTransitionArticleHandler,
	ProvideCommandBus,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
