package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/groupup/groupup-backend/internal/cache"
	"github.com/groupup/groupup-backend/internal/handlers"
	"github.com/groupup/groupup-backend/internal/middleware"
	"github.com/groupup/groupup-backend/internal/repository"
	"github.com/groupup/groupup-backend/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName: "GroupUp Backend",
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     os.Getenv("ALLOWED_ORIGINS"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// Initialize database connection
	db, err := repository.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis cache
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if parsedDB, err := strconv.Atoi(dbStr); err == nil {
			redisDB = parsedDB
		}
	}

	redisCache := cache.NewRedisCache(redisAddr, redisPassword, redisDB)
	if err := redisCache.Ping(); err != nil {
		log.Printf("WARNING: Redis connection failed: %v. Running without cache.", err)
		redisCache = nil
	} else {
		log.Println("Redis cache connected successfully")
	}

	groupCache := cache.NewGroupCache(redisCache)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	requestRepo := repository.NewJoinRequestRepository(db)
	moderationRepo := repository.NewModerationRepository(db)
	inviteRepo := repository.NewInviteRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	groupService := service.NewGroupService(groupRepo, groupCache)
	membershipService := service.NewMembershipService(groupRepo, requestRepo, moderationRepo)
	inviteService := service.NewInviteService(inviteRepo, membershipService)
	notificationService := service.NewNotificationService(moderationRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	groupHandler := handlers.NewGroupHandler(groupService)
	membershipHandler := handlers.NewMembershipHandler(groupService, membershipService)
	inviteHandler := handlers.NewInviteHandler(inviteService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Public routes
	api := app.Group("/api")
	auth := api.Group("/auth", limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Group routes. Static segments are registered before the
	// parameterized ones so "my-groups" and friends never match as a
	// group ID.
	groups := api.Group("/groups", middleware.AuthRequired())
	groups.Post("/create", groupHandler.CreateGroup)
	groups.Post("/join", membershipHandler.JoinByCode)
	groups.Post("/join/:token", inviteHandler.AcceptInviteByToken)
	groups.Get("/my-groups", groupHandler.GetMyGroups)
	groups.Get("/user-notifications", notificationHandler.GetNotifications)
	groups.Delete("/notifications/:id", notificationHandler.DismissNotification)
	groups.Get("/invites/pending", inviteHandler.GetPendingInvites)
	groups.Post("/invites/:inviteId/accept", inviteHandler.AcceptInvite)
	groups.Delete("/invites/:inviteId", inviteHandler.RevokeInvite)

	// Doubled /groups prefix kept for compatibility with existing clients.
	groups.Get("/groups/check-blocked/:groupCode", membershipHandler.CheckBlocked)
	groups.Post("/groups/:groupId/members/:memberId/block", membershipHandler.BlockMember)
	groups.Post("/groups/:groupId/members/:memberId/unblock", membershipHandler.UnblockMember)
	groups.Get("/groups/:groupId/blocked-members", membershipHandler.GetBlockedMembers)

	groups.Get("/:groupId", middleware.RequireMember(membershipService), groupHandler.GetGroup)
	groups.Delete("/:groupId", groupHandler.DeleteGroup)
	groups.Get("/:groupId/members", middleware.RequireMember(membershipService), membershipHandler.GetMembers)
	groups.Get("/:groupId/requests", membershipHandler.GetPendingRequests)
	groups.Put("/:groupId/requests/:requestId/approve", membershipHandler.ApproveRequest)
	groups.Put("/:groupId/requests/:requestId/reject", membershipHandler.RejectRequest)
	groups.Post("/:groupId/members/:memberId/remove", membershipHandler.RemoveMember)
	groups.Get("/:groupId/verify-membership", membershipHandler.VerifyMembership)
	groups.Post("/:groupId/invite", inviteHandler.CreateInvite)

	// Current user
	api.Get("/users/me", middleware.AuthRequired(), authHandler.GetCurrentUser)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "GroupUp is running",
		})
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s...", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
