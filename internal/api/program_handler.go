package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"fitforge/workout-app/internal/domain"
	"fitforge/workout-app/internal/service"
)

// ProgramHandler holds the program service dependency.
type ProgramHandler struct {
	programService service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// --- Request/Response Structs ---

// GenerateProgramRequest carries the generation parameters. No binding:"required"
// tags here: the service owns validation so the error messages stay exact.
type GenerateProgramRequest struct {
	Days        int                 `json:"days"`
	SplitType   domain.SplitType    `json:"split_type"`
	Preferences *domain.Preferences `json:"preferences,omitempty"`
}

// GenerateProgramResponse is the success envelope of the generate endpoint.
type GenerateProgramResponse struct {
	Success bool                     `json:"success"`
	Data    *service.EnrichedProgram `json:"data"`
}

// GenerateProgramErrorResponse is the failure envelope of the generate endpoint.
type GenerateProgramErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// --- Handler Methods ---

// GenerateProgram godoc
// @Summary Generate a workout program
// @Description Builds a prompt from the exercise catalog, calls the model,
// @Description validates and persists the result, and returns it enriched.
// @Tags Programs
// @Accept json
// @Produce json
// @Param request body GenerateProgramRequest true "Generation parameters"
// @Success 200 {object} GenerateProgramResponse "Program generated"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} GenerateProgramErrorResponse "Generation or persistence failed"
// @Router /programs/generate [post]
func (h *ProgramHandler) GenerateProgram(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req GenerateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	enriched, err := h.programService.GenerateProgram(c.Request.Context(), userID, domain.GenerationRequest{
		Days:        req.Days,
		SplitType:   req.SplitType,
		Preferences: req.Preferences,
	})
	if err != nil {
		// Input problems are the caller's fault and use the plain error shape.
		if errors.Is(err, service.ErrInvalidDays) ||
			errors.Is(err, service.ErrSplitTypeRequired) ||
			errors.Is(err, service.ErrInvalidSplitType) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		// Generation, validation and persistence failures all use the
		// success/error envelope, including catalog rejections of
		// hallucinated exercise uids.
		c.JSON(http.StatusInternalServerError, GenerateProgramErrorResponse{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, GenerateProgramResponse{Success: true, Data: enriched})
}

// ListPrograms godoc
// @Summary List the caller's programs
// @Description Returns non-deleted programs, newest first, without workout trees.
// @Tags Programs
// @Produce json
// @Success 200 {array} domain.WorkoutProgram "Programs"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /programs [get]
func (h *ProgramHandler) ListPrograms(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	programs, err := h.programService.ListPrograms(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list programs")
		return
	}
	c.JSON(http.StatusOK, programs)
}

// GetProgram godoc
// @Summary Get one program
// @Description Returns the program with nested workouts and exercises,
// @Description enriched with catalog details. Soft-deleted programs remain
// @Description retrievable by id.
// @Tags Programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} service.ProgramDetail "Program with workout tree"
// @Failure 400 {object} gin.H "Invalid program ID"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Program not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /programs/{id} [get]
func (h *ProgramHandler) GetProgram(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	programID, ok := requireProgramID(c)
	if !ok {
		return
	}

	detail, err := h.programService.GetProgram(c.Request.Context(), userID, programID)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to get program")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// DeleteProgram godoc
// @Summary Delete a program
// @Description Soft delete: the row is retained with deleted_at set and
// @Description disappears from listings.
// @Tags Programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} gin.H "Program deleted"
// @Failure 400 {object} gin.H "Invalid program ID"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Program not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /programs/{id} [delete]
func (h *ProgramHandler) DeleteProgram(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	programID, ok := requireProgramID(c)
	if !ok {
		return
	}

	if err := h.programService.DeleteProgram(c.Request.Context(), userID, programID); err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete program")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Program deleted"})
}

// HasAnyPrograms godoc
// @Summary Check whether the caller has any programs
// @Description Existence check excluding soft-deleted programs. Used by
// @Description clients to pick the onboarding flow.
// @Tags Programs
// @Produce json
// @Success 200 {object} gin.H "has_programs flag"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /programs/any [get]
func (h *ProgramHandler) HasAnyPrograms(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	has, err := h.programService.HasActivePrograms(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to check programs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"has_programs": has})
}

// GetArtifactURL godoc
// @Summary Get a download URL for the raw generation artifact
// @Description Returns a presigned URL for the archived prompt and raw model
// @Description output of the program's generation.
// @Tags Programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} gin.H "Presigned download URL"
// @Failure 400 {object} gin.H "Invalid program ID"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Program not found or archiving disabled"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /programs/{id}/artifact [get]
func (h *ProgramHandler) GetArtifactURL(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	programID, ok := requireProgramID(c)
	if !ok {
		return
	}

	url, err := h.programService.ArtifactDownloadURL(c.Request.Context(), userID, programID)
	if err != nil {
		if errors.Is(err, service.ErrProgramNotFound) || errors.Is(err, service.ErrArtifactNotAvailable) {
			abortWithError(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to generate download URL")
		return
	}
	c.JSON(http.StatusOK, gin.H{"download_url": url})
}

// --- Helpers ---

// requireUserID extracts the authenticated user id set by AuthMiddleware.
func requireUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Invalid user ID in token")
		return primitive.NilObjectID, false
	}
	return userID, true
}

// requireProgramID parses the :id path parameter.
func requireProgramID(c *gin.Context) (primitive.ObjectID, bool) {
	programID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid program ID format")
		return primitive.NilObjectID, false
	}
	return programID, true
}
