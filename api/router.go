package api

import (
	"net/http"

	"github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/gin-gonic/gin"
)

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
	engine      *gin.Engine

	authorizationMiddleware gin.HandlerFunc
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	GinMode     string // Gin mode (release, debug, test)
	Controllers []i.Controller

	// AuthorizationMiddleware guards protected routes. Without it no
	// protected route is mounted.
	AuthorizationMiddleware gin.HandlerFunc
}

// NewRouter creates a new Router instance with the given configuration and
// registers every controller's routes under <BaseURL>/v1.
func NewRouter(config Config) *Router {
	if config.GinMode != "" {
		gin.SetMode(config.GinMode)
	}
	gin.ForceConsoleColor()

	r := &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		engine:      gin.Default(),

		authorizationMiddleware: config.AuthorizationMiddleware,
	}
	r.routes()
	return r
}

func (r *Router) routes() {
	// Setting up routes under baseURL
	api := r.engine.Group(r.baseURL)
	{
		// Public routes (accessible without authentication)
		publicRoutes := api.Group("/v1")
		{
			for _, c := range r.controllers {
				c.RegisterPublic(publicRoutes)
			}
		}

		if r.authorizationMiddleware == nil {
			return
		}

		// Protected routes (authentication required)
		protectedRoutes := api.Group("/v1")
		protectedRoutes.Use(r.authorizationMiddleware)
		{
			for _, c := range r.controllers {
				c.RegisterProtected(protectedRoutes)
			}
		}
	}
}

// Handler exposes the underlying HTTP handler.
func (r *Router) Handler() http.Handler {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	return r.engine.Run(r.addr)
}
