package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KimTaekGwan/FinancialFlowApp/internal/command"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/middleware"
	"github.com/KimTaekGwan/FinancialFlowApp/internal/repository"
)

// respondWithServiceError maps service errors onto the API's taxonomy:
// invalid input → 400, missing entity → 404, anything else → 500.
func respondWithServiceError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		middleware.RespondWithError(c, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, command.ErrInvalidInput):
		middleware.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrDuplicateEmail):
		middleware.RespondWithError(c, http.StatusBadRequest, "Email already exists")
	default:
		middleware.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
