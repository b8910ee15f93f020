package routes

import (
	"restaurant-pos/constants"
	"restaurant-pos/controllers/auth"
	"restaurant-pos/controllers/backup"
	"restaurant-pos/controllers/customer"
	"restaurant-pos/controllers/employee"
	"restaurant-pos/controllers/menu"
	"restaurant-pos/controllers/order"
	"restaurant-pos/controllers/sales"
	"restaurant-pos/controllers/server"
	"restaurant-pos/controllers/setting"
	"restaurant-pos/controllers/tripreport"
	"restaurant-pos/controllers/user"
	"restaurant-pos/middleware"
	authService "restaurant-pos/services/auth"
	backupService "restaurant-pos/services/backup"
	"restaurant-pos/services/catalog"
	customerService "restaurant-pos/services/customer"
	employeeService "restaurant-pos/services/employee"
	"restaurant-pos/services/idempotency"
	salesService "restaurant-pos/services/sales"
	settingService "restaurant-pos/services/setting"
	"restaurant-pos/services/tracker"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Dependencies are the services the HTTP layer is wired to.
type Dependencies struct {
	DB          *gorm.DB
	Auth        *middleware.Auth
	Tracker     *tracker.Tracker
	Catalog     *catalog.Service
	Employees   *employeeService.Service
	Customers   *customerService.Service
	Sales       *salesService.Service
	Users       *authService.Service
	Backup      *backupService.Service
	Settings    *settingService.Service
	Idempotency idempotency.Store
}

func SetupRoutes(app *fiber.App, deps Dependencies) {
	authController := auth.NewAuthController(deps.Users)
	userController := user.NewUserController(deps.Users)
	serverController := server.NewServerController(deps.DB)
	orderController := order.NewOrderController(deps.Tracker)
	tripController := tripreport.NewTripReportController(deps.Tracker)
	employeeController := employee.NewEmployeeController(deps.Employees)
	menuController := menu.NewMenuController(deps.Catalog)
	customerController := customer.NewCustomerController(deps.Customers)
	salesController := sales.NewSalesController(deps.Sales)
	backupController := backup.NewBackupController(deps.Backup)
	settingController := setting.NewSettingController(deps.Settings)

	mw := deps.Auth

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Get("/health", serverController.Health)
	api.Post("/login", authController.Login)

	/*=============================================================================
	| Protected Routes
	===============================================================================*/
	authGroup := api.Group("/auth").Use(mw.RequireAnyPermission())
	authGroup.Get("/profile", userController.GetUserInfo)
	authGroup.Post("/logout", authController.LogOut)
	api.Post("/register", mw.RequirePermissions(constants.PermAdminFull), authController.Register)

	/*=============================================================================
	| Active Orders
	===============================================================================*/
	orders := api.Group("/activeorders")
	orders.Get("/", mw.RequirePermissions(constants.KitchenPermissions...), orderController.Index)
	orders.Post("/", mw.RequirePermissions(constants.FrontOfHousePermissions...),
		middleware.Idempotent(deps.Idempotency), orderController.Store)
	orders.Get("/:orderId", mw.RequirePermissions(constants.KitchenPermissions...), orderController.Show)
	orders.Put("/:orderId", mw.RequirePermissions(constants.FrontOfHousePermissions...), orderController.Update)
	orders.Delete("/:orderId", mw.RequirePermissions(constants.FrontOfHousePermissions...), orderController.Delete)

	orders.Post("/:orderId/items/:itemId/mark-prepared", mw.RequirePermissions(
		constants.KitchenPermissions...,
	), orderController.MarkPrepared)

	orders.Post("/:orderId/items/:itemId/mark-pickedup", mw.RequirePermissions(
		constants.KitchenPermissions...,
	), orderController.MarkPickedUp)

	/*=============================================================================
	| Kitchen Display & Pickup History
	===============================================================================*/
	kitchen := mw.RequirePermissions(constants.KitchenPermissions...)
	api.Get("/kitchen-saved", kitchen, orderController.KitchenOrders)
	api.Post("/kitchen-saved/reconcile", mw.RequirePermissions(constants.PermAdminFull), orderController.Reconcile)
	api.Get("/picked-up-items", kitchen, orderController.PickedUpItems)
	api.Delete("/picked-up-items/:id", mw.RequirePermissions(constants.PermAdminFull), orderController.DeletePickedUpItem)

	/*=============================================================================
	| Trip Reports
	===============================================================================*/
	trips := api.Group("/tripreports").Use(mw.RequirePermissions(constants.DeliveryPermissions...))
	trips.Get("/:employeeId", tripController.Index)
	trips.Post("/orders/:orderId/pickedup", tripController.MarkPickedUp)

	/*=============================================================================
	| Employees & Users
	===============================================================================*/
	employees := api.Group("/employees")
	employees.Get("/", mw.RequirePermissions(constants.FrontOfHousePermissions...), employeeController.Index)
	employees.Post("/", mw.RequirePermissions(constants.PermAdminFull), employeeController.Store)
	employees.Put("/:employeeId", mw.RequirePermissions(constants.PermAdminFull), employeeController.Update)
	employees.Delete("/:employeeId", mw.RequirePermissions(constants.PermAdminFull), employeeController.Delete)

	users := api.Group("/users").Use(mw.RequirePermissions(constants.PermAdminFull))
	users.Get("/", userController.Index)
	users.Delete("/:email", userController.Delete)

	/*=============================================================================
	| Menu
	===============================================================================*/
	frontOfHouse := mw.RequirePermissions(constants.FrontOfHousePermissions...)
	admin := mw.RequirePermissions(constants.PermAdminFull)

	api.Get("/kitchens", mw.RequireAuthentication(), menuController.Kitchens)
	api.Post("/kitchens", admin, menuController.StoreKitchen)
	api.Put("/kitchens/:kitchenId", admin, menuController.UpdateKitchen)
	api.Delete("/kitchens/:kitchenId", admin, menuController.DeleteKitchen)

	api.Get("/items", mw.RequireAuthentication(), menuController.Items)
	api.Get("/items/:identifier", mw.RequireAuthentication(), menuController.ShowItem)
	api.Post("/items", admin, menuController.StoreItem)
	api.Put("/items/:itemId", admin, menuController.UpdateItem)
	api.Delete("/items/:itemId", admin, menuController.DeleteItem)
	api.Put("/items/:itemId/offer", admin, menuController.UpdateOffer)

	api.Get("/item-groups", mw.RequireAuthentication(), menuController.ItemGroups)
	api.Post("/item-groups", admin, menuController.StoreItemGroup)
	api.Put("/item-groups/:groupId", admin, menuController.UpdateItemGroup)
	api.Delete("/item-groups/:groupId", admin, menuController.DeleteItemGroup)

	api.Get("/variants", mw.RequireAuthentication(), menuController.Variants)
	api.Get("/variants/:variantId", mw.RequireAuthentication(), menuController.ShowVariant)
	api.Post("/variants", admin, menuController.StoreVariant)
	api.Put("/variants/:variantId", admin, menuController.UpdateVariant)
	api.Delete("/variants/heading/:heading", admin, menuController.DeleteVariantsByHeading)
	api.Delete("/variants/:variantId", admin, menuController.DeleteVariant)

	/*=============================================================================
	| Tables & Settings
	===============================================================================*/
	api.Get("/tables", mw.RequireAuthentication(), menuController.Tables)
	api.Post("/tables", admin, menuController.StoreTable)
	api.Put("/tables/:tableNumber", admin, menuController.UpdateTable)
	api.Delete("/tables/:tableNumber", admin, menuController.DeleteTable)

	api.Get("/settings", mw.RequireAuthentication(), settingController.Show)
	api.Post("/settings", admin, settingController.Store)

	/*=============================================================================
	| Customers & Sales
	===============================================================================*/
	api.Get("/customers", frontOfHouse, customerController.Index)
	api.Post("/customers", frontOfHouse, customerController.Store)
	api.Get("/customers/:customerId", frontOfHouse, customerController.Show)
	api.Put("/customers/:customerId", frontOfHouse, customerController.Update)
	api.Delete("/customers/:customerId", admin, customerController.Delete)

	api.Post("/sales", frontOfHouse, salesController.Store)
	api.Get("/sales", frontOfHouse, salesController.Index)
	api.Get("/sales/:invoiceNo", frontOfHouse, salesController.Show)
	api.Put("/sales/:invoiceNo/status", frontOfHouse, salesController.UpdateStatus)

	/*=============================================================================
	| Backup
	===============================================================================*/
	api.Get("/export-all-to-excel", admin, backupController.Export)
	api.Get("/backup-to-excel", admin, backupController.Backup)
}
