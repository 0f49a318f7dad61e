package routes

import (
	"log"
	"os"
	"strconv"

	_ "grantflow/docs" // This will be auto-generated
	"grantflow/internal/adapter/http/handlers"
	repository2 "grantflow/internal/adapter/persistence/repository"
	"grantflow/internal/infrastructure/database"
	"grantflow/internal/infrastructure/payments"
	"grantflow/internal/usecase"
	"grantflow/internal/usecase/interfaces"

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

	budgetRepo := repository2.NewBudgetRequestDynamoRepository(ddb)
	fundRepo := repository2.NewFundRequestDynamoRepository(ddb)
	utilizationRepo := repository2.NewUtilizationDynamoRepository(ddb)
	projects := repository2.NewProjectDirectoryDynamo(ddb)

	var disbursals interfaces.IDisbursementGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("[disbursement][routes] gateway not configured, final approvals will skip disbursement: %v", err)
	} else {
		disbursals = mpGateway
	}

	budgetUseCase := usecase.NewBudgetRequestUseCase(budgetRepo, projects)
	fundUseCase := usecase.NewFundRequestUseCase(fundRepo, budgetRepo, projects, disbursals)
	utilizationUseCase := usecase.NewUtilizationUseCase(utilizationRepo, fundRepo, budgetRepo)

	budgetHandler := handlers.NewBudgetRequestHandler(budgetUseCase)
	fundHandler := handlers.NewFundRequestHandler(fundUseCase)
	utilizationHandler := handlers.NewUtilizationHandler(utilizationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addGrantRoutes(v1, budgetHandler, fundHandler, utilizationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
