package main

import (
	"context"
	"flag"
	"log"

	"asset-guardian/internal/repositories"
	"asset-guardian/internal/services"
	"asset-guardian/pkg/config"
	"asset-guardian/pkg/database/postgresql"
	"asset-guardian/pkg/logger"
	"asset-guardian/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	// --- Определяем флаги ---
	fresh := flag.Bool("fresh", false, "Очистить все таблицы перед наполнением")
	only := flag.String("only", "", "Запустить только указанные сидеры через запятую (assets,technicians,materials,maintenance,fmea,reports)")
	runAll := flag.Bool("all", false, "Запустить все сидеры")

	flag.Parse()

	// Если ни один флаг не указан - показываем справку
	if !*runAll && *only == "" {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -all")
		log.Println("  go run ./seeders/cmd/seed -all -fresh")
		log.Println("  go run ./seeders/cmd/seed -only assets,maintenance")
		log.Println("======================================================")
		return
	}

	selected, err := seeders.ParseOnly(*only)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if *runAll {
		selected = nil
	}

	ctx := context.Background()

	// Подключаемся к БД
	cfg := config.New()
	appLogger := logger.NewLogger(cfg.Log)
	defer appLogger.Sync()

	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)
	dbPool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer dbPool.Close()

	if err := postgresql.Migrate(ctx, cfg.Postgres.DSN); err != nil {
		log.Fatalf("❌ %v", err)
	}

	log.Println("======================================================")

	recalculator := services.NewMetricsRecalculator(
		repositories.NewAssetRepository(dbPool),
		repositories.NewMaintenanceRepository(dbPool),
		services.ReliabilityConfig(cfg.Metrics),
		appLogger,
	)

	summary, err := seeders.New(dbPool, recalculator, appLogger).Run(ctx, seeders.Options{Fresh: *fresh, Only: selected})
	if err != nil {
		log.Fatalf("❌ Ошибка сидирования: %v", err)
	}

	for _, name := range seeders.AllEntities {
		if count, ok := summary[name]; ok {
			log.Printf("  ✔ %-12s вставлено: %d", name, count)
		}
	}

	log.Println("✅ Все указанные операции сидирования успешно завершены.")
	log.Println("======================================================")
}
