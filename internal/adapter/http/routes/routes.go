package routes

import (
	"log"
	"strconv"

	_ "printfarm_ops/docs" // This will be auto-generated
	"printfarm_ops/internal/adapter/http/handlers"
	repository2 "printfarm_ops/internal/adapter/persistence/repository"
	"printfarm_ops/internal/infrastructure/database"
	"printfarm_ops/internal/usecase"

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

	filamentRepo := repository2.NewFilamentDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	printerTypeRepo := repository2.NewPrinterTypeDynamoRepository(ddb)
	printerRepo := repository2.NewPrinterDynamoRepository(ddb)
	printJobRepo := repository2.NewPrintJobDynamoRepository(ddb)

	costingUseCase := usecase.NewCostingUseCase(filamentRepo, productRepo, printerRepo, printerTypeRepo)
	filamentUseCase := usecase.NewFilamentUseCase(filamentRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, filamentRepo, costingUseCase)
	printerTypeUseCase := usecase.NewPrinterTypeUseCase(printerTypeRepo, printerRepo)
	printerUseCase := usecase.NewPrinterUseCase(printerRepo, printerTypeRepo)
	printJobUseCase := usecase.NewPrintJobUseCase(printJobRepo, productRepo, printerTypeRepo, costingUseCase)

	filamentHandler := handlers.NewFilamentHandler(filamentUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	printerTypeHandler := handlers.NewPrinterTypeHandler(printerTypeUseCase, costingUseCase)
	printerHandler := handlers.NewPrinterHandler(printerUseCase)
	printJobHandler := handlers.NewPrintJobHandler(printJobUseCase, costingUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTrackerRoutes(v1, filamentHandler, productHandler, printerTypeHandler, printerHandler, printJobHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
