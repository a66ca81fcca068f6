package router

import (
	"inkwell/internal/handlers"
	"inkwell/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler()
	categoryHandler := handlers.NewCategoryHandler()
	profileHandler := handlers.NewProfileHandler()
	commentHandler := handlers.NewCommentHandler()

	// Public Routes
	r.GET("/", postHandler.Index)
	r.GET("/posts/:id", postHandler.Detail)
	r.GET("/category/:slug", categoryHandler.Posts)
	r.GET("/profile/:username", profileHandler.Profile)

	r.GET("/signup", authHandler.ShowRegister)
	r.POST("/signup", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/posts/create", postHandler.ShowCreate)
		authorized.POST("/posts/create", postHandler.Create)
		authorized.GET("/posts/:id/edit", postHandler.ShowEdit)
		authorized.POST("/posts/:id/edit", postHandler.Update)
		authorized.POST("/posts/:id/delete", postHandler.Delete)

		authorized.POST("/posts/:id/comment", commentHandler.Create)
		authorized.GET("/posts/:id/edit_comment/:cid", commentHandler.ShowEdit)
		authorized.POST("/posts/:id/edit_comment/:cid", commentHandler.Update)
		authorized.POST("/posts/:id/delete_comment/:cid", commentHandler.Delete)

		authorized.GET("/profile/:username/edit", profileHandler.ShowEdit)
		authorized.POST("/profile/:username/edit", profileHandler.Update)
	}
}
