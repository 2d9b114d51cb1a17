package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitforge/workout-app/internal/catalog"
	"fitforge/workout-app/internal/service"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	programService service.ProgramService,
	cat *catalog.Catalog,
) {
	authHandler := NewAuthHandler(authService)
	programHandler := NewProgramHandler(programService)
	exerciseHandler := NewExerciseHandler(cat)

	authMiddleware := AuthMiddleware(jwtSecret)

	// Wrong-method requests get a JSON 405 instead of gin's default 404.
	methodNotAllowed := func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	}
	router.HandleMethodNotAllowed = true
	router.NoMethod(methodNotAllowed)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr})
		})

		protected.GET("/exercises", exerciseHandler.ListExercises)

		programGroup := protected.Group("/programs")
		{
			programGroup.POST("/generate", programHandler.GenerateProgram)
			// GET and DELETE on /generate would otherwise fall into the :id
			// routes below (id="generate") and answer 400; they must be 405.
			programGroup.GET("/generate", methodNotAllowed)
			programGroup.DELETE("/generate", methodNotAllowed)
			programGroup.GET("", programHandler.ListPrograms)
			// Static segment wins over :id in gin's routing tree.
			programGroup.GET("/any", programHandler.HasAnyPrograms)
			programGroup.GET("/:id", programHandler.GetProgram)
			programGroup.DELETE("/:id", programHandler.DeleteProgram)
			programGroup.GET("/:id/artifact", programHandler.GetArtifactURL)
		}
	}
}
