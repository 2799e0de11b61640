package httpserver

import (
	"log"

	"clees-keys/internal/repository/appointment"
	"clees-keys/internal/repository/billing"
	"clees-keys/internal/repository/customer"
	"clees-keys/internal/repository/inventory"
	"clees-keys/internal/repository/order"
	"clees-keys/internal/repository/servicelog"
	"clees-keys/internal/search"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the gateways each resource handler consumes. Both gateways
// are injected so handlers stay testable with substitutable fakes.
type Deps struct {
	OrderRepo       order.Repository
	InventoryRepo   inventory.Repository
	ServiceLogRepo  servicelog.Repository
	AppointmentRepo appointment.Repository
	BillingRepo     billing.Repository
	CustomerRepo    customer.Repository
	Search          search.Backend
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), cors.Default())

	router.GET("/health", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	oh := orderHandlers{repo: deps.OrderRepo, backend: deps.Search, logger: logger}
	orders := api.Group("/orders")
	orders.GET("", oh.list)
	orders.GET("/autocomplete", oh.autocomplete)
	orders.GET("/:id", oh.get)
	orders.POST("", oh.create)
	orders.PATCH("/:id", oh.updateStatus)
	orders.DELETE("/:id", oh.delete)

	ih := inventoryHandlers{repo: deps.InventoryRepo, backend: deps.Search, logger: logger}
	inv := api.Group("/inventory")
	inv.GET("", ih.list)
	inv.GET("/search", ih.search)
	inv.GET("/:id", ih.get)
	inv.POST("", ih.create)
	inv.PATCH("/:id", ih.updateQuantity)

	lh := serviceLogHandlers{repo: deps.ServiceLogRepo, backend: deps.Search, logger: logger}
	logs := api.Group("/service-logs")
	logs.GET("", lh.list)
	logs.GET("/search", lh.search)
	logs.GET("/fuzzy", lh.fuzzy)
	logs.GET("/:id", lh.get)
	logs.POST("", lh.create)

	ah := appointmentHandlers{repo: deps.AppointmentRepo, logger: logger}
	appts := api.Group("/appointments")
	appts.GET("", ah.list)
	appts.GET("/:id", ah.get)
	appts.POST("", ah.create)
	appts.PATCH("/:id", ah.updateStatus)
	appts.DELETE("/:id", ah.delete)

	bh := billingHandlers{repo: deps.BillingRepo, logger: logger}
	bills := api.Group("/billing")
	bills.GET("", bh.list)
	bills.GET("/:id", bh.get)
	bills.POST("", bh.create)
	bills.PATCH("/:id", bh.update)

	ch := customerHandlers{repo: deps.CustomerRepo, orders: deps.OrderRepo, backend: deps.Search, logger: logger}
	customers := api.Group("/customers")
	customers.GET("", ch.list)
	customers.GET("/search", ch.search)
	customers.GET("/lookup", ch.lookup)
	customers.GET("/nearby", ch.nearby)
	customers.GET("/:id", ch.get)
	customers.POST("", ch.create)

	th := technicianHandlers{backend: deps.Search, logger: logger}
	techs := api.Group("/technicians")
	techs.GET("/search", th.search)
	techs.GET("/performance", th.performance)
	techs.GET("/leaderboard", th.leaderboard)
	techs.GET("/utilization", th.utilization)

	dh := dashboardHandlers{backend: deps.Search, logger: logger}
	dash := api.Group("/dashboard")
	dash.GET("/revenue", dh.revenue)
	dash.GET("/service-breakdown", dh.serviceBreakdown)
	dash.GET("/inventory-facets", dh.inventoryFacets)

	return router
}
