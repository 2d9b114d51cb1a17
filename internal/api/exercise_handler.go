package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitforge/workout-app/internal/catalog"
)

// ExerciseHandler serves the static exercise catalog.
type ExerciseHandler struct {
	catalog *catalog.Catalog
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(cat *catalog.Catalog) *ExerciseHandler {
	return &ExerciseHandler{catalog: cat}
}

// ListExercises godoc
// @Summary List the exercise catalog
// @Description Returns every catalog exercise in stable uid order. The
// @Description catalog is fixed at deploy time.
// @Tags Exercises
// @Produce json
// @Success 200 {array} domain.ExerciseDefinition "Catalog exercises"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.All())
}
