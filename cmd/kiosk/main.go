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

	"menu-kiosk/internal/cart"
	"menu-kiosk/internal/catalog"
	"menu-kiosk/internal/config"
	"menu-kiosk/internal/httpx"
	kafkax "menu-kiosk/internal/kafka"
	"menu-kiosk/internal/orders"
	"menu-kiosk/internal/postgres"
	"menu-kiosk/internal/receipt"
	"menu-kiosk/internal/redisx"
	"menu-kiosk/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()
	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// File storage
	files, err := storage.NewDisk(cfg.StorageRoot)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	// Kafka producer
	prod := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderConfirmed, 1024)
	prod.Start(ctx)

	// Services
	catalogRepo := &catalog.Repo{DB: db}
	orderSvc := &orders.Service{
		Store:       &orders.Repo{DB: db},
		Receipts:    &receipt.Generator{Files: files, Currency: cfg.Currency},
		Producer:    prod,
		ServiceName: cfg.ServiceName,
	}
	carts := cart.NewStore(rdb)

	render, err := httpx.NewRenderer(cfg.Currency)
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	// Router & handlers
	router := httpx.NewRouter()
	httpx.MountStorage(router, files.Root())
	kh := &httpx.KioskHandler{
		Catalog: catalogRepo,
		Carts:   carts,
		Orders:  orderSvc,
		Redis:   rdb,
		Render:  render,
	}
	kh.Register(router)
	ah := &httpx.AdminHandler{
		Catalog: catalogRepo,
		Files:   files,
		Redis:   rdb,
		Render:  render,
	}
	ah.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close()
	cancel()
	prod.WaitClosed()
}
