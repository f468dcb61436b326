package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-pos-backend/internal/handler"
	"go-pos-backend/internal/middleware"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/service"
	"go-pos-backend/internal/ws"
	"go-pos-backend/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// 2. Setup Database
	db := database.ConnectDB()

	// 3. Setup WebSocket Hub (live sale/layout feed)
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	store := repository.NewStore(db)
	userRepo := repository.NewUserRepo(db)
	businessRepo := repository.NewBusinessRepo(db)
	tabRepo := repository.NewTabRepo(db)
	cardRepo := repository.NewCardRepo(db)
	itemRepo := repository.NewItemRepo(db)
	tillRepo := repository.NewTillRepo(db)
	employeeRepo := repository.NewEmployeeRepo(db)
	transactionRepo := repository.NewTransactionRepo(db)

	authService := service.NewAuthService(userRepo)
	businessService := service.NewBusinessService(businessRepo, userRepo, tillRepo, store)
	layoutService := service.NewLayoutService(tabRepo, cardRepo, itemRepo, store, wsHub)
	tillService := service.NewTillService(tillRepo, employeeRepo, businessRepo, userRepo, store)
	transactionService := service.NewTransactionService(transactionRepo, tillRepo, employeeRepo, itemRepo, store, wsHub)

	userHandler := handler.NewUserHandler(authService)
	businessHandler := handler.NewBusinessHandler(businessService)
	cardHandler := handler.NewCardHandler(layoutService)
	tabHandler := handler.NewTabHandler(layoutService)
	itemHandler := handler.NewItemHandler(layoutService)
	tillHandler := handler.NewTillHandler(tillService)
	transactionHandler := handler.NewTransactionHandler(transactionService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "POS Backend v1.0",
	})

	// Middleware
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes (all POST, matching the frontend contract)
	auth := middleware.RequireAuth()
	admin := middleware.RequireAdmin(userRepo, businessRepo)

	user := app.Group("/user")
	user.Post("/login", userHandler.Login)
	user.Post("/register", userHandler.Register)
	user.Post("/business", auth, userHandler.Business)
	user.Post("/name", auth, userHandler.Name)
	user.Post("/password", auth, userHandler.Password)

	business := app.Group("/business", auth)
	business.Post("/create", businessHandler.Create)
	business.Post("/get", businessHandler.Get)
	business.Post("/edit", businessHandler.Edit)
	business.Post("/admins", businessHandler.Admins)
	business.Post("/tills", businessHandler.Tills)
	business.Post("/edittills", businessHandler.EditTills)

	card := app.Group("/card", auth)
	card.Post("/get", cardHandler.Get)
	card.Post("/getall", cardHandler.GetAll)
	card.Post("/create", admin, cardHandler.Create)
	card.Post("/modifyposition", admin, cardHandler.ModifyPosition)
	card.Post("/update", admin, cardHandler.Update)
	card.Post("/delete", admin, cardHandler.Delete)

	tab := app.Group("/tab", auth)
	tab.Post("/create", admin, tabHandler.Create)
	tab.Post("/getall", tabHandler.GetAll)

	item := app.Group("/item", auth)
	item.Post("/create", admin, itemHandler.Create)
	item.Post("/update", admin, itemHandler.Update)

	till := app.Group("/till", auth)
	till.Post("/create", admin, tillHandler.Create)
	till.Post("/get", tillHandler.Get)
	till.Post("/employees", admin, tillHandler.Employees)

	app.Post("/employee/create", auth, admin, tillHandler.CreateEmployee)

	transaction := app.Group("/transaction", auth)
	transaction.Post("/create", transactionHandler.Create)
	transaction.Post("/get", transactionHandler.Get)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
