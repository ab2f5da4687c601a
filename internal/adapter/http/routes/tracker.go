package routes

import (
	"net/http"

	"printfarm_ops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathFilaments    = "/filaments"
	PathProducts     = "/products"
	PathPrinterTypes = "/printer-types"
	PathPrinters     = "/printers"
	PathPrintJobs    = "/print-jobs"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addTrackerRoutes(
	rg *gin.RouterGroup,
	filamentHandler *handlers.FilamentHandler,
	productHandler *handlers.ProductHandler,
	printerTypeHandler *handlers.PrinterTypeHandler,
	printerHandler *handlers.PrinterHandler,
	printJobHandler *handlers.PrintJobHandler,
) {
	filaments := rg.Group(PathFilaments)
	{
		filaments.POST("", filamentHandler.CreateFilament)
		filaments.GET("", filamentHandler.ListFilaments)
		filaments.GET("/:id", filamentHandler.GetFilament)
		filaments.PUT("/:id", filamentHandler.UpdateFilament)
		filaments.DELETE("/:id", filamentHandler.DeleteFilament)
	}

	products := rg.Group(PathProducts)
	{
		products.POST("", productHandler.CreateProduct)
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.PUT("/:id", productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
	}

	printerTypes := rg.Group(PathPrinterTypes)
	{
		printerTypes.POST("", printerTypeHandler.CreatePrinterType)
		printerTypes.GET("", printerTypeHandler.ListPrinterTypes)
		printerTypes.GET("/:id", printerTypeHandler.GetPrinterType)
		printerTypes.PUT("/:id", printerTypeHandler.UpdatePrinterType)
		printerTypes.DELETE("/:id", printerTypeHandler.DeletePrinterType)
	}

	printers := rg.Group(PathPrinters)
	{
		printers.POST("", printerHandler.CreatePrinter)
		printers.GET("", printerHandler.ListPrinters)
		printers.GET("/:id", printerHandler.GetPrinter)
		printers.PUT("/:id", printerHandler.UpdatePrinter)
		printers.DELETE("/:id", printerHandler.DeletePrinter)
	}

	printJobs := rg.Group(PathPrintJobs)
	{
		printJobs.POST("/preview", printJobHandler.PreviewCogs)
		printJobs.POST("", printJobHandler.CreatePrintJob)
		printJobs.GET("", printJobHandler.ListPrintJobs)
		printJobs.GET("/:id", printJobHandler.GetPrintJob)
		printJobs.PUT("/:id", printJobHandler.UpdatePrintJob)
		printJobs.DELETE("/:id", printJobHandler.DeletePrintJob)
	}
}
