package di

import (
	"go.uber.org/zap"

	"pressroom-backend/application/commands"
	"pressroom-backend/application/commands/bus"
	"pressroom-backend/application/ports"
	querybus "pressroom-backend/application/queries/bus"
	"pressroom-backend/application/services"
	domainconfig "pressroom-backend/domain/config"
	"pressroom-backend/infrastructure/config"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	DomainConfig *domainconfig.DomainConfig

	TemplateRepo   ports.TemplateRepository
	ArticleRepo    ports.ArticleRepository
	EventPublisher ports.EventPublisher
	ImageHost      ports.ImageHost
	Lock           ports.ResourceLock

	TemplateService *services.TemplateService
	ArticleService  *services.ArticleService

	// Typed handlers for commands whose results the transport layer needs
	CreateTemplate     *commands.CreateTemplateHandler
	AddElement         *commands.AddElementHandler
	UpdateElement      *commands.UpdateElementHandler
	RemoveElement      *commands.RemoveElementHandler
	SetCanvas          *commands.SetCanvasHandler
	AttachImage        *commands.AttachImageHandler
	CreateArticle      *commands.CreateArticleHandler
	SaveArticleContent *commands.SaveArticleContentHandler
	TransitionArticle  *commands.TransitionArticleHandler

	CommandBus *bus.CommandBus
	QueryBus   *querybus.QueryBus
	Cache      querybus.Cache
}
