package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"resumelift/config"
	"resumelift/handlers"
	"resumelift/middleware"
	"resumelift/parsers"
	"resumelift/renderer"
	"resumelift/services"
	"resumelift/utils"
)

func main() {
	// .env is optional; environment variables alone are fine in deployment.
	_ = godotenv.Load()

	cfg := config.GetAppConfig()
	logger := utils.NewLogger()
	utils.GlobalLogger = logger

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	parser := parsers.NewResumeParser(logger)
	extractor := parsers.NewPDFExtractor()
	analyzer := services.NewJDAnalyzer(logger)
	optimizer := services.NewOptimizer(logger)
	formatter := services.NewFormatter()
	llm := services.NewLLMService(cfg.LLM, logger)
	pdfRenderer := renderer.NewPDFRenderer(renderer.DefaultTemplate(), logger)

	s3, err := services.NewS3Service()
	if err != nil {
		logger.Warn("S3 not configured, PDFs will stream inline", map[string]interface{}{"error": err.Error()})
		s3 = nil
	}

	transformHandler := handlers.NewTransformHandler(parser, analyzer, optimizer, formatter, llm, logger)
	pdfHandler := handlers.NewPDFHandler(pdfRenderer, s3, logger)
	parseHandler := handlers.NewParseHandler(parser, extractor, logger)
	wordHandler := handlers.NewWordHandler(logger)

	limiters := middleware.CreateRateLimiters()
	cache := middleware.NewResponseCache(10 * time.Minute)

	r := gin.Default()
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.MaxRequestSize(10 << 20))

	api := r.Group("/api/resume")
	api.Use(limiters["general"].Limit())
	api.Use(middleware.ValidateContentType("application/x-www-form-urlencoded", "multipart/form-data"))
	{
		api.POST("/transform", limiters["transform"].Limit(), cache.Cache(), transformHandler.Transform)
		api.POST("/pdf", limiters["render"].Limit(), pdfHandler.Render)
		api.POST("/parse", cache.Cache(), parseHandler.Parse)
		api.POST("/word", limiters["render"].Limit(), wordHandler.Export)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	logger.Info("server starting", map[string]interface{}{"port": cfg.Port})
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("server exited", err)
	}
}
