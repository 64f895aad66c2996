package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"nc-news-api/internal/docs"
	"nc-news-api/internal/handler"
	"nc-news-api/internal/metrics"
	"nc-news-api/internal/middleware"
	"nc-news-api/internal/repository"
	"nc-news-api/internal/service"
	"nc-news-api/internal/util"
)

const defaultBasePath = "/api"

// Config holds everything the router needs to build the HTTP surface
type Config struct {
	DB               *gorm.DB
	Logger           *zap.Logger
	BasePath         string
	Metrics          *metrics.Metrics
	Gatherer         prometheus.Gatherer
	AllowedOrigins   []string
	SanitizeComments bool
}

// Setup wires repositories, services and handlers onto a gin engine
func Setup(cfg Config) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	basePath := cfg.BasePath
	if basePath == "" || basePath == "/" {
		basePath = defaultBasePath
	}
	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	docs.SwaggerInfo.BasePath = basePath

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Repositories
	topicRepo := repository.NewTopicRepository(cfg.DB)
	userRepo := repository.NewUserRepository(cfg.DB)
	articleRepo := repository.NewArticleRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)

	// Services
	var sanitizer util.Sanitizer = util.NoopSanitizer{}
	if cfg.SanitizeComments {
		sanitizer = util.NewHTMLSanitizer()
	}
	verifier := service.NewExistenceVerifier(topicRepo, userRepo, articleRepo, commentRepo, logger)
	topicService := service.NewTopicService(topicRepo, logger)
	userService := service.NewUserService(userRepo, logger)
	articleService := service.NewArticleService(articleRepo, verifier, cfg.Metrics, logger)
	commentService := service.NewCommentService(commentRepo, verifier, sanitizer, cfg.Metrics, logger)

	// Handlers
	apiHandler := handler.NewAPIHandler(docs.Endpoints)
	healthHandler := handler.NewHealthHandler(cfg.DB)
	topicHandler := handler.NewTopicHandler(topicService)
	userHandler := handler.NewUserHandler(userService)
	articleHandler := handler.NewArticleHandler(articleService)
	commentHandler := handler.NewCommentHandler(commentService)

	metricsHandler := gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.GET("/", apiHandler.Welcome)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", metricsHandler)

	api := r.Group(basePath)
	{
		api.GET("", apiHandler.GetEndpoints)
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)
		api.GET("/metrics", metricsHandler)
		api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

		api.GET("/topics", topicHandler.GetTopics)

		api.GET("/articles", articleHandler.GetArticles)
		api.GET("/articles/:article_id", articleHandler.GetArticle)
		api.PATCH("/articles/:article_id", articleHandler.UpdateArticleVotes)
		api.GET("/articles/:article_id/comments", commentHandler.GetComments)
		api.POST("/articles/:article_id/comments", commentHandler.PostComment)

		api.DELETE("/comments/:comment_id", commentHandler.DeleteComment)

		api.GET("/users", userHandler.GetUsers)
		api.GET("/users/:username", userHandler.GetUser)
	}

	r.NoRoute(handler.RouteNotFound)

	return r
}
