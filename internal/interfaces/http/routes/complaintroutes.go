package routes

import (
	"github.com/gin-gonic/gin"

	complainthandlers "campusguard/internal/interfaces/http/handlers/complaint"
	"campusguard/internal/interfaces/http/middleware"
	"campusguard/internal/shared/authorization"
)

type ComplaintRouteConfig struct {
	ComplaintHandler *complainthandlers.ComplaintHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupComplaintRoutes(engine *gin.Engine, config *ComplaintRouteConfig) {
	complaints := engine.Group("/api/complaints")
	complaints.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths BEFORE parameterized paths to avoid
		// route conflicts.
		complaints.GET("/assigned",
			authorization.RequireOperation(authorization.OpListAssigned),
			config.ComplaintHandler.ListAssigned)

		complaints.POST("",
			authorization.RequireOperation(authorization.OpCreateComplaint),
			config.ComplaintHandler.CreateComplaint)

		complaints.POST("/:id/evidence",
			authorization.RequireOperation(authorization.OpAttachEvidence),
			config.ComplaintHandler.AttachEvidence)
		complaints.PATCH("/:id/assign",
			authorization.RequireOperation(authorization.OpAssignFaculty),
			config.ComplaintHandler.AssignFaculty)

		complaints.GET("/:id",
			config.ComplaintHandler.GetComplaint)
	}
}
