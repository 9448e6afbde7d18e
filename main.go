package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jamesfcoton/site-backend/api"
	"github.com/jamesfcoton/site-backend/content"
	"github.com/jamesfcoton/site-backend/database"
	"github.com/jamesfcoton/site-backend/localcache"
	"github.com/jamesfcoton/site-backend/media"
	"github.com/jamesfcoton/site-backend/services"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cache, err := localcache.New(getEnv("CACHE_DIR", "./data"))
	if err != nil {
		fmt.Printf("Error preparing local cache: %v\n", err)
		os.Exit(1)
	}

	// Postgres is optional: without DATABASE_URL the site runs off the
	// local cache alone.
	db := openDatabase()
	currentDB := database.New(db, cache)
	if err := currentDB.Migrate(); err != nil {
		fmt.Printf("Error migrating document table: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	storage := openMediaStorage(ctx)

	generator := services.NewCatalogGenerator(ctx,
		os.Getenv("GEMINI_API_KEY"),
		os.Getenv("GEMINI_MODEL"),
	)

	site := content.NewService(currentDB, cache, generator, getEnv("ADMIN_PASSWORD", "admin"))
	if err := site.Load(ctx); err != nil {
		fmt.Printf("Error loading site content: %v\n", err)
		os.Exit(1)
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(site, storage)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// openDatabase connects to postgres when DATABASE_URL is set, nil otherwise.
func openDatabase() *gorm.DB {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		fmt.Println("DATABASE_URL not set, running cache-only")
		return nil
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	return db
}

// openMediaStorage connects to the media bucket when MEDIA_BUCKET is set,
// nil otherwise; media endpoints then answer 503.
func openMediaStorage(ctx context.Context) *media.Storage {
	bucket := os.Getenv("MEDIA_BUCKET")
	if bucket == "" {
		fmt.Println("MEDIA_BUCKET not set, media endpoints disabled")
		return nil
	}

	storage, err := media.NewStorage(ctx, media.Config{
		Endpoint:      os.Getenv("MEDIA_ENDPOINT"),
		Region:        getEnv("MEDIA_REGION", "us-east-1"),
		Bucket:        bucket,
		AccessKey:     os.Getenv("MEDIA_ACCESS_KEY"),
		SecretKey:     os.Getenv("MEDIA_SECRET_KEY"),
		PublicBaseURL: os.Getenv("MEDIA_PUBLIC_BASE_URL"),
	})
	if err != nil {
		fmt.Printf("Error connecting to media storage: %v\n", err)
		os.Exit(1)
	}
	return storage
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}

// getEnv returns the value of the environment variable key or a fallback value.
func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
