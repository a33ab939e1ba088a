package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-stock-insight/internal/market/config"
	delivery "golang-stock-insight/internal/market/delivery/http"
	_ "golang-stock-insight/internal/market/docs"
	"golang-stock-insight/internal/market/repository"
	"golang-stock-insight/internal/market/service"
	"golang-stock-insight/pkg/logger"

	"github.com/patrickmn/go-cache"
	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the market API server",
	Run:   runServe,
}

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "Prints the companies in the dataset",
	RunE:  runCompanies,
}

var predictCmd = &cobra.Command{
	Use:   "predict <company>",
	Short: "Prints the price prediction for a company",
	Args:  cobra.ExactArgs(1),
	RunE:  runPredict,
}

// bootstrap loads configuration, the logger and the dataset. A dataset that fails
// to load is logged and replaced by an absent table so the API can still answer.
func bootstrap() (*config.Config, *logger.Logger, repository.StockPriceRepository) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	table, err := repository.LoadTable(cfg.Dataset.Path)
	if err != nil {
		appLogger.Error("Failed to load dataset", logger.StringField("path", cfg.Dataset.Path), logger.ErrorField(err))
	} else {
		appLogger.Info("Dataset loaded",
			logger.StringField("path", cfg.Dataset.Path),
			logger.IntField("records", table.Len()),
			logger.IntField("dropped", table.Dropped()),
		)
	}

	return cfg, appLogger, repository.NewStockPriceRepository(table)
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger, stockRepo := bootstrap()
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Market Service", logger.Field("name", cfg.App.Name))

	// Initialize the assistant only when a key is configured
	var assistantRepo repository.AssistantRepository
	if cfg.Gemini.APIKey != "" {
		genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini client", logger.ErrorField(err))
		}
		assistantRepo = repository.NewGeminiAssistantRepository(cfg, appLogger, genAiClient)
	} else {
		appLogger.Warn("Gemini API key is not set, chat is disabled")
	}

	cacheTTL, err := time.ParseDuration(cfg.Gemini.CacheTTL)
	if err != nil {
		appLogger.Fatal("Invalid cache TTL", logger.ErrorField(err))
	}
	answers := cache.New(cacheTTL, 2*cacheTTL)

	// Initialize services
	companySvc := service.NewCompanyService(stockRepo, appLogger)
	stockDataSvc := service.NewStockDataService(stockRepo, appLogger)
	predictionSvc := service.NewPredictionService(cfg, stockRepo, appLogger)
	analysisSvc := service.NewAnalysisService(cfg, stockRepo, appLogger)
	chatSvc := service.NewChatService(stockRepo, assistantRepo, answers, appLogger)

	// Initialize handlers and routes
	e := delivery.NewServer(cfg, appLogger, delivery.Handlers{
		Company:    delivery.NewCompanyHandler(companySvc, appLogger),
		StockData:  delivery.NewStockDataHandler(stockDataSvc, appLogger),
		Prediction: delivery.NewPredictionHandler(predictionSvc, appLogger),
		Analysis:   delivery.NewAnalysisHandler(analysisSvc, appLogger),
		Chat:       delivery.NewChatHandler(chatSvc, appLogger),
		Health:     delivery.NewHealthHandler(stockRepo),
	})

	shutdownTimeout, err := time.ParseDuration(cfg.API.ShutdownTimeout)
	if err != nil {
		appLogger.Fatal("Invalid shutdown timeout", logger.ErrorField(err))
	}

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func runCompanies(cmd *cobra.Command, args []string) error {
	_, appLogger, stockRepo := bootstrap()
	defer func() { _ = appLogger.Sync() }()

	companies, err := service.NewCompanyService(stockRepo, appLogger).ListCompanies(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(cmd, companies)
}

func runPredict(cmd *cobra.Command, args []string) error {
	cfg, appLogger, stockRepo := bootstrap()
	defer func() { _ = appLogger.Sync() }()

	resp, err := service.NewPredictionService(cfg, stockRepo, appLogger).Predict(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printJSON(cmd, resp)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// @title Market Insight API
// @version 1.0
// @description Historical index data, naive price prediction and technical analysis.
// @BasePath /api
func main() {
	rootCmd := &cobra.Command{Use: "market-service"}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-market.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd, companiesCmd, predictCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing market-service CLI: %s\n", err)
		os.Exit(1)
	}
}
