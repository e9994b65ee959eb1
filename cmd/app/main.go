package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"utsav/cmd/fx/config_fx"
	"utsav/cmd/fx/controllers_fx"
	"utsav/cmd/fx/conversation_fx"
	"utsav/cmd/fx/db_fx"
	"utsav/cmd/fx/logger_fx"
	"utsav/cmd/fx/memcache_fx"
	"utsav/cmd/fx/planner_fx"
	"utsav/cmd/fx/request_fx"
	"utsav/cmd/fx/vendor_fx"
	"utsav/internal/api/controllers"
	"utsav/internal/infra"
	"utsav/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		planner_fx.Module,
		vendor_fx.Module,
		request_fx.Module,
		conversation_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	conversationController *controllers.ConversationController,
	requestController *controllers.RequestController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.OptionalIdentityMiddleware())

	RegisterRoutes(r, conversationController, requestController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	conversationController *controllers.ConversationController,
	requestController *controllers.RequestController) {

	conversations := r.Group("/conversations")
	conversations.POST("", conversationController.StartConversation)
	conversations.GET("/:sessionId", conversationController.GetConversation)
	conversations.POST("/:sessionId/event-type", conversationController.SelectEventType)
	conversations.POST("/:sessionId/checklist/toggle", conversationController.ToggleChecklistItem)
	conversations.POST("/:sessionId/checklist/confirm", conversationController.ConfirmChecklist)
	conversations.POST("/:sessionId/location", conversationController.ConfirmLocation)
	conversations.POST("/:sessionId/budget", conversationController.ConfirmBudget)
	conversations.POST("/:sessionId/split-mode", conversationController.SetSplitMode)
	conversations.GET("/:sessionId/recommendations", conversationController.GetRecommendations)
	conversations.POST("/:sessionId/vendors/toggle", conversationController.ToggleVendor)
	conversations.POST("/:sessionId/selection/confirm", conversationController.ConfirmSelection)
	conversations.POST("/:sessionId/submit", conversationController.Submit)
	conversations.POST("/:sessionId/restart", conversationController.Restart)

	requests := r.Group("/requests")
	requests.GET("/:requestId", requestController.GetRequestById)
}
