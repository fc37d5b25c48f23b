package routes

import (
	"github.com/dhp131/beaute-project-BE/controllers"
	"github.com/dhp131/beaute-project-BE/middleware"
	"github.com/dhp131/beaute-project-BE/models"
	"github.com/gin-gonic/gin"
)

// Controllers bundles everything RegisterRoutes wires up.
type Controllers struct {
	Auth      *controllers.AuthController
	Products  *controllers.ProductController
	SkinTypes *controllers.SkinTypeController
	Orders    *controllers.OrderController
	Dashboard *controllers.DashboardController
}

// RegisterRoutes registers all application routes. Identity-bearing and
// mutating routes sit behind the JWT middleware.
func RegisterRoutes(r *gin.Engine, ctrl Controllers, jwtSecret string) {
	authRequired := middleware.AuthMiddleware(jwtSecret)

	auth := r.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
	}

	products := r.Group("/products")
	{
		products.GET("", ctrl.Products.GetProducts)
		products.GET("/:id", ctrl.Products.GetProductByID)
		products.POST("", authRequired, ctrl.Products.CreateProduct)
		products.PUT("/:id", authRequired, ctrl.Products.UpdateProduct)
		products.DELETE("/:id", authRequired, ctrl.Products.DeleteProduct)
		products.PATCH("/:id/inventory", authRequired, ctrl.Products.UpdateInventory)
	}

	skinTypes := r.Group("/skintypes")
	{
		skinTypes.GET("", ctrl.SkinTypes.GetAllSkinTypes)
		skinTypes.GET("/:id", ctrl.SkinTypes.GetSkinTypeByID)
		skinTypes.POST("", authRequired, ctrl.SkinTypes.CreateSkinType)
		skinTypes.PUT("/:id", authRequired, ctrl.SkinTypes.UpdateSkinType)
		skinTypes.DELETE("/:id", authRequired, ctrl.SkinTypes.DeleteSkinType)
		skinTypes.POST("/:id/routines/:routineId", authRequired, ctrl.SkinTypes.AddRoutineToSkinType)
		skinTypes.DELETE("/:id/routines/:routineId", authRequired, ctrl.SkinTypes.RemoveRoutineFromSkinType)
		skinTypes.POST("/quiz", authRequired, ctrl.SkinTypes.SubmitQuiz)
		skinTypes.GET("/quiz/history", authRequired, ctrl.SkinTypes.GetQuizHistory)
	}

	orders := r.Group("/orders", authRequired)
	{
		orders.POST("", ctrl.Orders.CreateOrder)
		orders.GET("", ctrl.Orders.GetMyOrders)
		orders.GET("/:id", ctrl.Orders.GetOrderByID)
		orders.PUT("/:id/status", ctrl.Orders.UpdateOrderStatus)
		orders.PUT("/:id/paid", ctrl.Orders.MarkOrderPaid)
	}

	dashboard := r.Group("/dashboard", authRequired, middleware.RequireRole(models.RoleStaff, models.RoleManager))
	{
		dashboard.GET("/orders", ctrl.Dashboard.OrdersByDate)
		dashboard.GET("/orders/status", ctrl.Dashboard.OrdersByDateAndStatus)
		dashboard.GET("/accounts", ctrl.Dashboard.AccountsByRole)
		dashboard.GET("/customers/quiz", ctrl.Dashboard.CustomersCompletedQuiz)
	}
}
