package FiberConfig

import (
	"fmt"
	"os"

	"Warsha/Controllers"
	"Warsha/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, dbPath string) {
	// Initialize handlers
	authController := Controllers.NewAuthController(db)
	inspectionController := Controllers.NewInspectionController(db)
	bundleController := Controllers.NewBundleController(db)
	serviceController := Controllers.NewServiceController(db)
	employeeController := Controllers.NewEmployeeController(db)
	entryController := Controllers.NewEntryController(db)
	withdrawalController := Controllers.NewWithdrawalController(db)
	absenceController := Controllers.NewAbsenceController(db)
	leaveController := Controllers.NewLeaveController(db)
	liftController := Controllers.NewLiftController(db)
	attendanceController := Controllers.NewAttendanceController(db)
	messageController := Controllers.NewMessageController(db)
	reportController := Controllers.NewReportController(db, dbPath)

	// API group
	api := app.Group("/api")

	// Auth routes
	api.Post("/login", authController.Login)
	api.Post("/logout", authController.Logout)
	api.Get("/user", middleware.Verify(db, 1), authController.CurrentUser)

	// Inspection routes
	api.Get("/inspection-terms", middleware.Verify(db, 1), inspectionController.GetInspectionTerms)
	inspections := api.Group("/inspections", middleware.Verify(db, 1))
	inspections.Get("/", inspectionController.GetAllInspections)
	inspections.Get("/search", inspectionController.SearchInspections)
	inspections.Get("/terms", inspectionController.GetInspectionTerms)
	inspections.Get("/inspector/:id", inspectionController.GetInspectionsByInspector)
	inspections.Get("/inspector/:id/stats", inspectionController.GetInspectorStats)
	inspections.Get("/:id", inspectionController.GetInspection)
	inspections.Post("/", inspectionController.CreateInspection)
	inspections.Put("/:id", inspectionController.UpdateInspection)

	// Bundle routes
	bundles := api.Group("/inspection-bundles", middleware.Verify(db, 1))
	bundles.Get("/", bundleController.GetBundles)
	bundles.Post("/", middleware.Verify(db, 3), bundleController.CreateBundle)
	bundles.Put("/:id", middleware.Verify(db, 3), bundleController.UpdateBundle)
	bundles.Delete("/:id", middleware.Verify(db, 3), bundleController.DeleteBundle)
	bundles.Post("/regenerate", middleware.Verify(db, 3), bundleController.RegenerateBundles)

	// Service catalog routes
	services := api.Group("/services", middleware.Verify(db, 1))
	services.Get("/", serviceController.GetServices)
	services.Post("/", middleware.Verify(db, 3), serviceController.CreateService)
	services.Put("/:id", middleware.Verify(db, 3), serviceController.UpdateService)
	services.Delete("/:id", middleware.Verify(db, 3), serviceController.DeleteService)

	// Employee routes. Stats, entries and withdrawals are reachable by the
	// employees themselves; management stays admin-only.
	employees := api.Group("/employees")
	employees.Get("/", middleware.Verify(db, 3), employeeController.GetEmployees)
	employees.Post("/", middleware.Verify(db, 3), employeeController.CreateEmployee)
	employees.Get("/:id/stats", middleware.Verify(db, 1), employeeController.GetEmployeeStats)
	employees.Get("/:id/entries", middleware.Verify(db, 1), entryController.GetEmployeeEntries)
	employees.Get("/:id/withdrawals", middleware.Verify(db, 1), withdrawalController.GetEmployeeWithdrawals)
	employees.Put("/:id/income", middleware.Verify(db, 3), entryController.ReplaceEmployeeIncome)
	employees.Put("/:id", middleware.Verify(db, 3), employeeController.UpdateEmployee)
	employees.Delete("/:id", middleware.Verify(db, 3), employeeController.DeleteEmployee)

	api.Get("/sections", middleware.Verify(db, 1), employeeController.GetSections)
	api.Get("/sections/summary", middleware.Verify(db, 3), employeeController.GetSectionsSummary)

	// Entry routes
	entries := api.Group("/entries", middleware.Verify(db, 3))
	entries.Post("/", entryController.CreateEntry)
	entries.Put("/:id", entryController.UpdateEntry)
	entries.Delete("/:id", entryController.DeleteEntry)

	// Withdrawal routes
	withdrawals := api.Group("/withdrawals", middleware.Verify(db, 1))
	withdrawals.Post("/", withdrawalController.CreateWithdrawal)
	withdrawals.Get("/", middleware.Verify(db, 3), withdrawalController.GetAllWithdrawals)
	withdrawals.Get("/pending", middleware.Verify(db, 3), withdrawalController.GetPendingWithdrawals)
	withdrawals.Put("/:id/status", middleware.Verify(db, 3), withdrawalController.UpdateWithdrawalStatus)
	withdrawals.Post("/batch", middleware.Verify(db, 3), withdrawalController.CreateBatchWithdrawals)

	// Absence routes
	absences := api.Group("/absences", middleware.Verify(db, 3))
	absences.Post("/", absenceController.CreateAbsence)
	absences.Get("/", absenceController.GetAbsences)

	// Leave routes
	leaves := api.Group("/leave-requests", middleware.Verify(db, 1))
	leaves.Post("/", leaveController.CreateLeaveRequest)
	leaves.Get("/", middleware.Verify(db, 3), leaveController.GetLeaveRequests)
	leaves.Get("/employee/:id", leaveController.GetEmployeeLeaveRequests)
	leaves.Put("/:id", middleware.Verify(db, 3), leaveController.UpdateLeaveStatus)
	api.Get("/leave-balance/:employee_id", middleware.Verify(db, 1), leaveController.GetLeaveBalance)
	api.Get("/leave-balances", middleware.Verify(db, 3), leaveController.GetLeaveBalances)

	// Lift board routes
	lifts := api.Group("/lifts", middleware.Verify(db, 1))
	lifts.Get("/", liftController.GetLifts)
	lifts.Put("/:id", liftController.UpdateLift)
	lifts.Post("/:id/release", liftController.ReleaseLift)

	// Attendance routes
	attendance := api.Group("/attendance", middleware.Verify(db, 1))
	attendance.Post("/check-in", attendanceController.CheckIn)
	attendance.Post("/check-out", attendanceController.CheckOut)
	attendance.Get("/status/:employee_id", attendanceController.GetStatus)

	// Messaging and notifications
	api.Get("/messages/:employee_id", middleware.Verify(db, 1), messageController.GetMessages)
	api.Post("/messages", middleware.Verify(db, 1), messageController.CreateMessage)
	api.Get("/notifications", middleware.Verify(db, 3), messageController.GetNotifications)

	// Reports and backup
	api.Get("/reports/inspections", middleware.Verify(db, 3), reportController.ExportInspections)
	api.Get("/backup", middleware.Verify(db, 3), reportController.DownloadBackup)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

func FiberConfig(db *gorm.DB, dbPath string) {
	fmt.Println("Server Up...")
	app := fiber.New()
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*", // Allow all origins
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true, // Important for cookies
		MaxAge:           300,  // Max age for preflight requests caching (5 minutes)
	}))

	SetupRoutes(app, db, dbPath)
	app.Static("/static", "static/")

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	app.Listen(":" + port)
}
