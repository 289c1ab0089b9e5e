package routes

import (
	"buffet_festas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEvents      = "/events"
	PathClients     = "/clients"
	PathFreelancers = "/freelancers"
	PathAssignments = "/assignments"
)

func addEventRoutes(rg *gin.RouterGroup, eventHandler *handlers.EventHandler, assignmentHandler *handlers.AssignmentHandler, budgetHandler *handlers.BudgetHandler) {
	events := rg.Group(PathEvents)
	{
		events.POST("", eventHandler.CreateEvent)
		events.GET("", eventHandler.ListEvents)
		events.GET("/:id", eventHandler.GetEvent)
		events.PATCH("/:id/status", eventHandler.ChangeStatus)

		events.POST("/:id/assignments", assignmentHandler.Assign)
		events.GET("/:id/assignments", assignmentHandler.ListByEvent)

		// Orçamento: one per event, keyed by the event id.
		events.POST("/:id/budget", budgetHandler.CreateBudget)
		events.GET("/:id/budget", budgetHandler.GetBudget)
		events.PUT("/:id/budget/items", budgetHandler.UpdateItems)
		events.PATCH("/:id/budget/approve", budgetHandler.ApproveBudget)
		events.PATCH("/:id/budget/reject", budgetHandler.RejectBudget)
		events.PATCH("/:id/budget/cancel", budgetHandler.CancelBudget)
	}
}

func addRegistryRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler, notificationHandler *handlers.NotificationHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
	}

	freelancers := rg.Group(PathFreelancers)
	{
		freelancers.POST("", clientHandler.CreateFreelancer)
		freelancers.GET("", clientHandler.ListFreelancers)
		freelancers.GET("/:id", clientHandler.GetFreelancer)
		freelancers.GET("/:id/notification", notificationHandler.Preview)
		freelancers.POST("/:id/notification", notificationHandler.Send)
	}
}

func addAssignmentRoutes(rg *gin.RouterGroup, assignmentHandler *handlers.AssignmentHandler) {
	assignments := rg.Group(PathAssignments)
	{
		assignments.PATCH("/:id/payment-status", assignmentHandler.SetPaymentStatus)
		assignments.PATCH("/:id/bonus", assignmentHandler.SetBonus)
	}
}
