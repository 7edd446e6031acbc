package routes

import (
	"wrenchworks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs         = "/jobs"
	PathBids         = "/bids"
	PathChangeOrders = "/change-orders"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	jobHandler *handlers.JobHandler,
	bidHandler *handlers.BidHandler,
	scheduleHandler *handlers.ScheduleHandler,
	changeOrderHandler *handlers.ChangeOrderHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/available", jobHandler.ListAvailable)
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.PATCH("/:job_id/start", jobHandler.StartJob)
		jobs.PATCH("/:job_id/complete", jobHandler.CompleteJob)
		jobs.PATCH("/:job_id/cancel", jobHandler.CancelJob)

		jobs.POST("/:job_id/bids", bidHandler.PlaceBid)
		jobs.GET("/:job_id/bids", bidHandler.ListBids)

		jobs.POST("/:job_id/schedule", scheduleHandler.Propose)
		jobs.GET("/:job_id/schedule", scheduleHandler.GetPending)
		jobs.PATCH("/:job_id/schedule/accept", scheduleHandler.Accept)
		jobs.PATCH("/:job_id/schedule/reject", scheduleHandler.Reject)

		jobs.POST("/:job_id/change-orders", changeOrderHandler.RequestChangeOrder)
		jobs.GET("/:job_id/change-orders", changeOrderHandler.ListChangeOrders)

		jobs.GET("/:job_id/payment/quote", paymentHandler.QuoteDeposit)
		jobs.POST("/:job_id/payment", paymentHandler.ChargeDeposit)
	}

	rg.GET("/customers/:customer_id/jobs", jobHandler.ListCustomerJobs)
	rg.GET("/mechanics/:mechanic_id/jobs", jobHandler.ListMechanicJobs)

	bids := rg.Group(PathBids)
	{
		bids.PATCH("/:bid_id/withdraw", bidHandler.WithdrawBid)
		bids.PATCH("/:bid_id/accept", bidHandler.AcceptBid)
	}

	changeOrders := rg.Group(PathChangeOrders)
	{
		changeOrders.PATCH("/:change_order_id/resolve", changeOrderHandler.ResolveChangeOrder)
	}
}
