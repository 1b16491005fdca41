package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"asset-guardian/internal/repositories"
	"asset-guardian/internal/routes"
	"asset-guardian/pkg/config"
	"asset-guardian/pkg/database/postgresql"
	apperrors "asset-guardian/pkg/errors"
	"asset-guardian/pkg/eventbus"
	applogger "asset-guardian/pkg/logger"
	appmiddleware "asset-guardian/pkg/middleware"
	"asset-guardian/pkg/utils"
	"asset-guardian/pkg/validation"
)

const redisPingTimeout = 3 * time.Second

func main() {
	// 1. Конфиг и логгер
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log)
	defer logger.Sync()

	e := echo.New()
	e.HideBanner = true
	e.Debug = !cfg.IsProduction()

	// 2. Middleware
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, utils.MsgInternalError, err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(middleware.RequestID())
	e.Use(appmiddleware.InjectLogger(logger))
	e.Use(appmiddleware.InjectActor())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.Server.CORSOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, appmiddleware.HeaderActor},
		ExposeHeaders: []string{echo.HeaderContentDisposition},
	}))

	e.Validator = validation.New()

	// 3. База данных и миграции
	ctx := context.Background()
	dbConn, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("не удалось подключиться к базе данных", zap.Error(err))
	}
	defer dbConn.Close()

	if err := postgresql.Migrate(ctx, cfg.Postgres.DSN); err != nil {
		logger.Fatal("не удалось применить миграции", zap.Error(err))
	}

	// 4. Кеш: без Redis сервис работает, просто без кеша
	cacheRepo := newCacheRepository(ctx, cfg.Redis, logger)

	// 5. Шина событий и маршруты
	bus := eventbus.New(logger)
	routes.InitRouter(e, dbConn, cacheRepo, bus, cfg, logger)

	// 6. Запуск сервера
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("🚀 Сервер запущен", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("Получен сигнал остановки, завершаем работу...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка при остановке сервера", zap.Error(err))
	}

	// Дожидаемся слушателей, чтобы аудит не потерялся
	bus.Wait()
	log.Println("Сервер остановлен")
}

func newCacheRepository(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) repositories.CacheRepositoryInterface {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if _, err := redisClient.Ping(pingCtx).Result(); err != nil {
		logger.Warn("Redis недоступен, кеширование отключено", zap.Error(err), zap.String("address", cfg.Address))
		redisClient.Close()
		return repositories.NewNoopCacheRepository()
	}

	logger.Info("Подключение к Redis установлено", zap.String("address", cfg.Address))
	return repositories.NewRedisCacheRepository(redisClient)
}
