// main.go
package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kasir-pos/catalog"
	"kasir-pos/checkout"
	"kasir-pos/config"
	"kasir-pos/controllers"
	"kasir-pos/currency"
	"kasir-pos/middleware"
	"kasir-pos/notify"
	"kasir-pos/routes"
	"kasir-pos/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	// Initialize the database.
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./kasir.db"
	}
	config.InitDB(dbPath)

	// Create a new Gin router.
	router := gin.Default()

	middleware.InitMetrics()
	router.Use(middleware.PrometheusMiddleware())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// The cashier UI is a browser frontend on another origin.
	router.Use(cors.Default())

	kv := store.NewSQLiteKV(config.DB)
	handler := controllers.NewHandler(catalog.NewSQLiteCatalog(config.DB), kv, notify.LogNotifier{})

	// Register the API routes.
	routes.RegisterRoutes(router, handler)

	startDailyReport(checkout.New(kv))

	// Optionally, set the port from an environment variable.
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

// startDailyReport logs the closing summary once per day so the owner gets
// an end-of-day figure without opening the stats view.
func startDailyReport(svc *checkout.Service) {
	reportAt := os.Getenv("REPORT_TIME")
	if reportAt == "" {
		reportAt = "22:00"
	}

	s := gocron.NewScheduler(time.Local)
	_, err := s.Every(1).Day().At(reportAt).Do(func() {
		today := time.Now().Format("2006-01-02")
		day, found, err := svc.StatsFor(today)
		if err != nil {
			log.Printf("Daily report failed: %v", err)
			return
		}
		if !found {
			log.Printf("Daily report %s: no sales recorded", today)
			return
		}
		log.Printf("Daily report %s: %d transactions, %d items, revenue %s, profit %s",
			today, day.Transactions, day.ItemsSold,
			currency.FormatRupiah(day.Revenue), currency.FormatRupiah(day.Profit))
	})
	if err != nil {
		log.Fatalf("Failed to schedule daily report: %v", err)
	}
	s.StartAsync()
}
