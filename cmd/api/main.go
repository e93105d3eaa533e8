package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/studio-sofia/barbershop-booking/internal/config"
	dbpkg "github.com/studio-sofia/barbershop-booking/internal/db"
	"github.com/studio-sofia/barbershop-booking/internal/lock"
	"github.com/studio-sofia/barbershop-booking/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	locker := newLocker(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, locker)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// newLocker returns the Redis slot locker when Redis is configured, the noop
// locker otherwise. Without Redis the unique index alone settles races.
func newLocker(cfg *config.Config) lock.SlotLocker {
	if cfg.RedisAddr == "" {
		return lock.NewNoopLocker()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	log.Printf("Slot locking via Redis at %s", cfg.RedisAddr)
	return lock.NewRedisSlotLocker(client, 5*time.Second)
}
