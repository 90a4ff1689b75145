package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"brand-dna/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	userH *UserHandler,
	workshopH *WorkshopHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	users := r.Group("/users")
	users.POST("", userH.Register)

	auth := r.Group("/auth")
	auth.POST("/login", userH.Login)
	auth.POST("/refresh", userH.RefreshToken)
	auth.POST("/logout", userH.Logout)

	workshop := r.Group("/workshop")
	workshop.Use(JWTAuthMiddleware(jwtSvc))
	workshop.POST("/classify", workshopH.Classify)
	workshop.POST("/uvp", workshopH.ConstructUVP)
	workshop.POST("/mission", workshopH.GenerateMission)
	workshop.POST("/hooks", workshopH.GenerateHooks)
	workshop.POST("/snapshots", workshopH.CreateSnapshot)
	workshop.GET("/snapshots", workshopH.ListSnapshots)
	workshop.GET("/snapshots/similar", workshopH.SimilarSnapshots)
	workshop.POST("/report", workshopH.SendReport)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
