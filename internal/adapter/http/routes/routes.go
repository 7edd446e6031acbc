package routes

import (
	"log"
	"os"
	"strconv"

	_ "wrenchworks/docs" // This will be auto-generated
	"wrenchworks/internal/adapter/http/handlers"
	"wrenchworks/internal/adapter/persistence/repository"
	"wrenchworks/internal/infrastructure/database"
	"wrenchworks/internal/infrastructure/notifications"
	"wrenchworks/internal/infrastructure/payments"
	"wrenchworks/internal/usecase"
	"wrenchworks/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	jobRepo := repository.NewJobDynamoRepository(ddb)
	bidRepo := repository.NewBidDynamoRepository(ddb)
	proposalRepo := repository.NewScheduleProposalDynamoRepository(ddb)
	changeOrderRepo := repository.NewChangeOrderDynamoRepository(ddb)

	notifier := notifications.NewLogNotifier()

	workflowUseCase := usecase.NewWorkflowUseCase(jobRepo, bidRepo, proposalRepo, changeOrderRepo, notifier)
	biddingUseCase := usecase.NewBiddingUseCase(bidRepo, workflowUseCase)
	scheduleUseCase := usecase.NewScheduleUseCase(proposalRepo, workflowUseCase)
	changeOrderUseCase := usecase.NewChangeOrderUseCase(changeOrderRepo, workflowUseCase)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewPaymentUseCase(paymentGateway, usecase.LoadPricingConfig(), workflowUseCase)

	jobHandler := handlers.NewJobHandler(workflowUseCase)
	bidHandler := handlers.NewBidHandler(biddingUseCase)
	scheduleHandler := handlers.NewScheduleHandler(scheduleUseCase)
	changeOrderHandler := handlers.NewChangeOrderHandler(changeOrderUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, jobHandler, bidHandler, scheduleHandler, changeOrderHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
