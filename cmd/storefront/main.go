package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/chandnsingh/groceryfrontend/internal/cart"
	"github.com/chandnsingh/groceryfrontend/internal/config"
	"github.com/chandnsingh/groceryfrontend/internal/drawer"
	httpapi "github.com/chandnsingh/groceryfrontend/internal/http"
	"github.com/chandnsingh/groceryfrontend/internal/logger"
	"github.com/chandnsingh/groceryfrontend/internal/remote"
	"github.com/chandnsingh/groceryfrontend/internal/session"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Session storage: redis when configured, in-process otherwise.
	var sess session.TokenStore
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			zlog.Fatal("redis connection failed", zap.Error(err))
		}
		zlog.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
		sess = session.NewRedisStore(redisClient)
	} else {
		sess = session.NewMemoryStore()
	}

	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	api := remote.NewClient(cfg.RemoteAPIURL, timeout, zlog)

	store := cart.NewStore()
	notifier := drawer.New(time.Duration(cfg.DrawerSeconds) * time.Second)
	engine := cart.NewEngine(store, api, sess, notifier, zlog, cart.Options{
		Optimistic: cfg.OptimisticCart,
	})

	go engine.WatchSession(ctx)
	if err := engine.Refresh(ctx); err != nil && !errors.Is(err, cart.ErrUnauthenticated) {
		zlog.Warn("initial cart refresh failed", zap.Error(err))
	}

	handler := httpapi.NewHandler(engine, notifier, sess, api, zlog, timeout)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: handler.Routes(),
	}

	go func() {
		zlog.Info("storefront listening", zap.Int("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down storefront")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error("shutdown failed", zap.Error(err))
	}
	zlog.Info("storefront stopped")
}
