package main

import (
	"Farol/config"
	"Farol/middleware"
	"Farol/routes"
	"Farol/services/gateway"
	"Farol/services/redis"
	"Farol/services/registry"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg := config.Load()

	gormDB, err := config.ConnectGORM()
	if err != nil {
		log.Fatalf("Error connecting to PostgreSQL: %v", err)
	}
	log.Println("GORM Connected")

	// Only migrate in development or during deployment
	if os.Getenv("MIGRATE_POSTGRES") == "true" {
		log.Println("Migrating PostgreSQL database...")
		if err := config.MigrateDatabase(gormDB); err != nil {
			log.Fatalf("Database migration failed: %v", err)
		}
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Error reading GORM PostgreSQL instance: %v", err)
	}
	defer sqlDB.Close()

	redisClient, err := config.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redis.CloseRedis(redisClient)

	reg := registry.New(gormDB, redisClient, cfg.MaxUsernameLen)
	// Nobody is online right after a restart, whatever the table says.
	if err := reg.ResetOnlineFlags(); err != nil {
		log.Fatalf("Error resetting online flags: %v", err)
	}

	hub := gateway.NewHub(cfg, reg, redisClient)

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	routes.SetupRoutes(r, reg, hub)

	addr := cfg.Addr + ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
