package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dinushadev/real-estate-agent-sg/internal/config"
	"github.com/dinushadev/real-estate-agent-sg/internal/handler"
	"github.com/dinushadev/real-estate-agent-sg/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("AI Real Estate Agent for Singapore")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize Firecrawl extraction client
	firecrawlClient := service.NewFirecrawlClient(&cfg.Firecrawl)
	if cfg.Firecrawl.Enabled {
		log.Printf("✅ Firecrawl client initialized")
		log.Printf("   - API Base: %s", cfg.Firecrawl.APIBase)
		log.Printf("   - Timeout: %ds", cfg.Firecrawl.Timeout)
	} else {
		log.Println("⚠️  Firecrawl is disabled - property extraction will not work")
		log.Println("   Set FIRECRAWL_API_KEY environment variable to enable it")
	}

	// Initialize OpenAI completion client
	openaiClient := service.NewOpenAIClient(&cfg.OpenAI)
	if cfg.OpenAI.Enabled {
		log.Printf("✅ OpenAI client initialized")
		log.Printf("   - API Base: %s", cfg.OpenAI.APIBase)
		log.Printf("   - Chat model: %s", cfg.OpenAI.ChatModel)
		log.Printf("   - Chat Temperature: %.2f", cfg.OpenAI.ChatTemperature)
		log.Printf("   - Chat MaxTokens: %d", cfg.OpenAI.ChatMaxTokens)
	} else {
		log.Println("⚠️  OpenAI is disabled - report generation will not work")
		log.Println("   Set OPENAI_API_KEY environment variable to enable it")
	}

	// Initialize services
	finder := service.NewPropertyFinder(firecrawlClient, openaiClient)
	log.Println("✅ Services initialized")

	// Initialize handlers
	searchHandler := handler.NewSearchHandler(finder)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "real-estate-agent-sg",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/properties/search", searchHandler.Search)
		apiV1.POST("/properties/search/stream", searchHandler.SearchStream)
		apiV1.GET("/locations/trends", searchHandler.LocationTrends)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API Documentation: http://localhost:%d/api/v1", cfg.Server.Port)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
