package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"business_directory/internal/handler"
	"business_directory/internal/middleware"
	"business_directory/internal/service"
	"business_directory/internal/utils"

	"github.com/gin-gonic/gin"
)

// Pinger reports database reachability for the health check
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services bundles what the router needs to serve the API
type Services struct {
	Users      service.UserService
	Businesses service.BusinessService
	Photos     service.PhotoService
	Reviews    service.ReviewService
}

// Options configures the cross-cutting middleware
type Options struct {
	Logger      *slog.Logger
	CORSOrigins []string
	DB          Pinger
}

// NewRouter builds the gin engine with middleware and every API route registered
func NewRouter(svcs Services, jwtUtil *utils.JWTUtil, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		middleware.CORS(opts.CORSOrigins),
		middleware.ErrorHandler(logger),
	)

	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	root := &router.RouterGroup

	handler.NewUserHandler(svcs.Users, jwtUtil).RegisterUserRoutes(root, jwtAuthMW)
	handler.NewBusinessHandler(svcs.Businesses).RegisterBusinessRoutes(root, jwtAuthMW)
	handler.NewPhotoHandler(svcs.Photos).RegisterPhotoRoutes(root, jwtAuthMW)
	handler.NewReviewHandler(svcs.Reviews).RegisterReviewRoutes(root, jwtAuthMW)

	router.GET("/health", healthHandler(opts.DB))
	router.NoRoute(handler.NotFound)

	return router
}

func healthHandler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	}
}
