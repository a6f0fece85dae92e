package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"roombook-backend/config"
	"roombook-backend/controllers"
	"roombook-backend/models"
	"roombook-backend/routes"
	"roombook-backend/services"
	"roombook-backend/store"
)

func buildStore(cfg config.Config) (store.Store, []models.Room) {
	switch cfg.StoreDriver {
	case config.StoreMySQL:
		db, err := config.ConnectDatabase()
		if err != nil {
			log.Fatalf("❌ Database connect failed: %v", err)
		}
		log.Println("✅ Database connection established and migrations applied.")
		return store.NewGormStore(db), config.LoadRooms(db)

	case config.StoreFile:
		fs, err := store.OpenFileStore(cfg.StoreFile, config.SampleBookings())
		if err != nil {
			log.Fatalf("❌ Could not open booking store %s: %v", cfg.StoreFile, err)
		}
		log.Printf("✅ File booking store at %s", cfg.StoreFile)
		return fs, config.DefaultRooms()

	default:
		log.Println("✅ In-memory booking store (demo mode)")
		return store.NewMemoryStore(config.SampleBookings()), config.DefaultRooms()
	}
}

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()

	bookingStore, rooms := buildStore(cfg)
	slots := config.DefaultTimeSlots()

	bookingService := services.NewBookingService(bookingStore, rooms, slots)
	assistantService := services.NewAssistantService(cfg, rooms, slots)
	if assistantService.Remote() {
		log.Println("✅ External assistant backend configured.")
	} else {
		log.Println("ℹ️  No assistant backend configured; using rule-based heuristics.")
	}

	authController := controllers.NewAuthController(cfg.JWTSecret)
	roomController := controllers.NewRoomController(bookingService)
	bookingController := controllers.NewBookingController(bookingService)
	aiController := controllers.NewAIController(assistantService, bookingService)

	router := routes.SetupRouter(authController, roomController, bookingController, aiController, cfg.JWTSecret)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
