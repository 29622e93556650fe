package server

import (
	"fmt"
	"time"

	"github.com/codescope-coders/codescope-rework/internal/api/middleware"
	"github.com/codescope-coders/codescope-rework/internal/api/routes"
	"github.com/codescope-coders/codescope-rework/internal/app"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
	app    *app.Application // Store the application container
}

func NewServer(application *app.Application) *Server {
	router := gin.New()
	router.Use(middleware.Logger(application.Logger))
	router.Use(gin.Recovery())

	application.Logger.Info("configuring CORS",
		zap.Strings("allowedOrigins", application.Config.CORS.AllowedOrigins))
	corsConfig := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, allowed := range application.Config.CORS.AllowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	router.SetTrustedProxies(nil)

	return &Server{
		router: router,
		app:    application,
	}
}

// Router exposes the underlying engine, mostly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start() error {
	routes.RegisterRoutes(s.router, s.app)

	addr := fmt.Sprintf("%s:%d", s.app.Config.Server.Host, s.app.Config.Server.Port)
	s.app.Logger.Info("server starting", zap.String("addr", addr))
	return s.router.Run(addr)
}
