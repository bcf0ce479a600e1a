package server

import (
	"time"

	"publisher-gateway/infrastructure/configuration"
	httpHandler "publisher-gateway/interfaces/http"
	"publisher-gateway/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func InitiateRouter(
	config *configuration.Config,
	healthHandler httpHandler.IHealthHandler,
	facebookHandler httpHandler.IFacebookHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(cors.New(corsConfig(config.App.CORSAllowedOrigins)))

	router.GET("/", healthHandler.Home)
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/facebook")
	api.Use(middleware.APIKey(config.App.APIKey))
	{
		// Publishing
		api.POST("/post", facebookHandler.PostText)
		api.POST("/post-photo", facebookHandler.PostPhoto)
		api.POST("/post-video", facebookHandler.PostVideo)
		api.POST("/post-video-thumbnail", facebookHandler.PostVideoWithThumbnail)
		api.POST("/post-media", facebookHandler.PostMedia)

		// Analytics
		api.GET("/post-ids", facebookHandler.GetPostIDs)
		api.GET("/post-analytics/:postId", facebookHandler.GetPostAnalytics)
		api.GET("/posts-analytics", facebookHandler.GetPostsAnalytics)
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	conf := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.APIKeyHeader, middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			conf.AllowAllOrigins = true
			return conf
		}
	}
	conf.AllowOrigins = origins
	return conf
}
