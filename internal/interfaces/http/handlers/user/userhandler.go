package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusguard/internal/application/user/usecases"
	"campusguard/internal/shared/logger"
	"campusguard/internal/shared/utils"
)

type UserHandler struct {
	searchStudentsUC usecases.SearchStudentsExecutor
	logger           logger.Interface
}

func NewUserHandler(searchStudentsUC usecases.SearchStudentsExecutor) *UserHandler {
	return &UserHandler{
		searchStudentsUC: searchStudentsUC,
		logger:           logger.NewLogger(),
	}
}

// SearchStudents handles GET /users/search
func (h *UserHandler) SearchStudents(c *gin.Context) {
	results, err := h.searchStudentsUC.Execute(c.Request.Context(), usecases.SearchStudentsQuery{
		NameQuery: c.Query("q"),
		RollNo:    c.Query("roll_no"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", results)
}
