package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	kvjetstream "github.com/go-monolith/mono/plugin/kv-jetstream"
	"github.com/gofiber/storage/redis/v3"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rohit-kumar-in/Arvind-Trader/config"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/admin"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/api"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/cart"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/catalog"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/checkout"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/enquiry"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/notification"
	"github.com/rohit-kumar-in/Arvind-Trader/persistence"
	"github.com/rohit-kumar-in/Arvind-Trader/ratelimit"
)

func main() {
	log.Println("=== Arvind Trader Storefront ===")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel := mono.LogLevelInfo
	if cfg.LogLevel == "error" {
		logLevel = mono.LogLevelError
	}

	// Create mono application with embedded NATS JetStream
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(cfg.ShutdownTimeout),
		mono.WithLogLevel(logLevel),
		mono.WithLogFormat(mono.LogFormatText),
		mono.WithJetStreamStorageDir(cfg.Persistence.JetStreamDir),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Choose the catalog persistence backend.
	catalogOpts := []catalog.Option{catalog.WithIdleTimeout(cfg.SessionIdleTimeout)}
	var closeBackend func() error

	switch cfg.Persistence.Backend {
	case config.BackendJetStream:
		kv, err := kvjetstream.New(kvjetstream.Config{
			Buckets: []kvjetstream.BucketConfig{
				{
					Name:        catalog.BucketName,
					Description: "Catalog and homepage banner",
					Storage:     kvjetstream.FileStorage,
				},
			},
		})
		if err != nil {
			log.Fatalf("Failed to create KV plugin: %v", err)
		}
		if err := app.RegisterPlugin(kv, "kv"); err != nil {
			log.Fatalf("Failed to register KV plugin: %v", err)
		}

	case config.BackendRedis:
		store, err := openRedis(cfg.Persistence.RedisAddr, cfg.Persistence.RedisPrefix)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		catalogOpts = append(catalogOpts, catalog.WithPersistence(store))
		closeBackend = store.Close

	case config.BackendSQLite:
		db, err := gorm.Open(sqlite.Open(cfg.Persistence.SQLitePath), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		store, err := persistence.NewSQLStore(db)
		if err != nil {
			log.Fatalf("Failed to prepare database: %v", err)
		}
		catalogOpts = append(catalogOpts, catalog.WithPersistence(store))
		closeBackend = func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}

	case config.BackendMemory:
		log.Println("Warning: catalog changes will not survive a restart")
		catalogOpts = append(catalogOpts, catalog.WithPersistence(persistence.NewMemoryStore()))
	}

	limiter, err := newLimiter(cfg)
	if err != nil {
		log.Fatalf("Failed to create rate limiter: %v", err)
	}

	checkoutModule, err := checkout.NewModule(app.Logger())
	if err != nil {
		log.Fatalf("Failed to create checkout module: %v", err)
	}

	adminModule := admin.NewModule(app.Logger(), cfg.Admin.Secret)
	adminModule.SetTokenDuration(cfg.Admin.TokenDuration)

	cartModule := cart.NewModule(app.Logger())
	cartModule.SetIdleTimeout(cfg.SessionIdleTimeout)

	// Register modules with the framework.
	// Order: independent modules first, then modules with dependencies
	app.Register(notification.NewModule())
	app.Register(catalog.NewModule(app.Logger(), catalogOpts...))
	app.Register(cartModule)
	app.Register(checkoutModule)
	app.Register(enquiry.NewModule(app.Logger(), cfg.Enquiry.DBPath))
	app.Register(adminModule)
	app.Register(api.NewModule(api.Config{
		Addr:           cfg.Addr(),
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		AccessLog:      cfg.HTTP.AccessLog,
		Limiter:        limiter,
	}, app.Logger()))

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(cfg)

	// Backends close after the app so pending catalog writes can finish.
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				if err := app.Stop(ctx); err != nil {
					return err
				}
				if closeBackend != nil {
					return closeBackend()
				}
				return nil
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

// openRedis checks the address is reachable before creating the storage,
// which panics on connection failure.
func openRedis(addr, prefix string) (*persistence.RedisStore, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_ADDR %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_ADDR port %q: %w", portStr, err)
	}

	conn, err := net.DialTimeout("tcp", addr, 2*time.Second)
	if err != nil {
		return nil, err
	}
	conn.Close()

	return persistence.NewRedisStore(redis.New(redis.Config{
		Host: host,
		Port: port,
	}), prefix), nil
}

// newLimiter builds the rate limiter for checkout, contact and admin login.
func newLimiter(cfg *config.Config) (ratelimit.Limiter, error) {
	rl := ratelimit.Config{
		RequestsPerWindow: cfg.RateLimit.Requests,
		WindowSize:        cfg.RateLimit.Window,
	}
	if cfg.RateLimit.Backend != config.BackendRedis {
		return ratelimit.NewMemoryLimiter(rl), nil
	}

	client := goredis.NewClient(&goredis.Options{Addr: cfg.Persistence.RedisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return ratelimit.NewRedisLimiter(client, rl, cfg.Persistence.RedisPrefix+"ratelimit:"), nil
}

func printStartupInfo(cfg *config.Config) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("Architecture:")
	log.Println("  - HTTP Framework: Fiber")
	log.Printf("  - Catalog Persistence: %s", cfg.Persistence.Backend)
	log.Printf("  - Enquiry Database: %s", cfg.Enquiry.DBPath)
	log.Printf("  - Rate Limit: %d requests per %s (%s)", cfg.RateLimit.Requests, cfg.RateLimit.Window, cfg.RateLimit.Backend)
	log.Println("")
	log.Println("Events:")
	log.Println("  - CartChanged -> api (websocket cart feed)")
	log.Println("  - OrderPlaced, EnquiryReceived, ProductSaved, ProductRemoved, HeroImageChanged -> notification")
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost:%d):", cfg.HTTP.Port)
	log.Println("  GET    /api/v1/products              - List products (search, category, sort, page)")
	log.Println("  GET    /api/v1/products/:id          - Product detail")
	log.Println("  GET    /api/v1/products/:id/selection - Resolve a color/size selection")
	log.Println("  GET    /api/v1/hero                  - Homepage banner")
	log.Println("  GET    /api/v1/cart                  - Current cart")
	log.Println("  POST   /api/v1/cart/items            - Add to cart")
	log.Println("  PATCH  /api/v1/cart/items/:key       - Change quantity")
	log.Println("  DELETE /api/v1/cart/items/:key       - Remove line")
	log.Println("  DELETE /api/v1/cart                  - Clear cart")
	log.Println("  POST   /api/v1/checkout              - Place order")
	log.Println("  GET    /api/v1/orders/:number        - Order confirmation")
	log.Println("  POST   /api/v1/contact               - Send an enquiry")
	log.Println("  GET    /api/v1/pages?path=           - Route and page metadata")
	log.Println("  POST   /api/v1/admin/login           - Admin login")
	log.Println("  *      /api/v1/admin/...             - Product, banner, upload, enquiry and activity admin")
	log.Println("  GET    /ws/cart                      - Live cart feed (websocket)")
	log.Println("  GET    /health                       - Health check")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
