// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"collegeblog/internal/delivery/http/middleware"
	"collegeblog/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	BlogHandler    *handler.BlogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	blogHandler    *handler.BlogHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		blogHandler:    params.BlogHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	api.POST("/register", r.userHandler.Register)
	api.POST("/login", r.userHandler.Login)

	api.GET("/blogs", r.blogHandler.ListBlogs)
	api.GET("/blogs/:id", r.blogHandler.GetBlog)
	api.GET("/blogs/:id/comments", r.blogHandler.ListComments)
	api.GET("/blogs/:id/qrcode", r.blogHandler.BlogQRCode)

	// Gated per route so unknown /api paths still 404 instead of hitting the gate.
	gate := r.authMiddleware.Authenticate
	api.POST("/blogs", r.blogHandler.CreateBlog, gate)
	api.POST("/blogs/:id/comments", r.blogHandler.CreateComment, gate)
	api.POST("/blogs/:id/like", r.blogHandler.LikeBlog, gate)
}
