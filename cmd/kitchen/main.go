package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"menu-kiosk/internal/config"
	kafkax "menu-kiosk/internal/kafka"
	"menu-kiosk/internal/kitchen"
	"menu-kiosk/internal/orders"
	"menu-kiosk/internal/redisx"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	svc := &kitchen.Service{
		Redis:       rdb,
		ServiceName: cfg.ServiceName + "-kitchen",
	}

	group := getenv("KITCHEN_GROUP", "kitchen-svc")
	workers := mustAtoi(os.Getenv("KITCHEN_WORKERS"), "4")
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, group, orders.TopicOrderConfirmed, workers)

	go func() {
		log.Printf("kitchen consumer started: group=%s topic=%s workers=%d", group, orders.TopicOrderConfirmed, workers)
		if err := cons.Start(ctx, svc.HandleOrderConfirmed); err != nil {
			log.Printf("consumer exit: %v", err)
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down consumer...")
	cancel()
	time.Sleep(500 * time.Millisecond)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustAtoi(s, def string) int {
	if s == "" {
		s = def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return i
}
