package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"restbucks/internal/config"
	"restbucks/internal/domain/model"
	"restbucks/internal/handler"
	"restbucks/internal/infra/db"
	infraRepo "restbucks/internal/infra/repository"
	"restbucks/internal/linking"
	"restbucks/internal/logging"
	"restbucks/internal/metrics"
	"restbucks/internal/repository"
	"restbucks/internal/server"
	"restbucks/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	//.env はあれば読む
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Fatal("load .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if err := logging.Setup(os.Stdout, cfg.LogLevel, cfg.LogFormat); err != nil {
		log.WithError(err).Fatal("setup logging")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.WithError(err).Fatal("connect db")
	}
	if err := db.Migrate(gormDB); err != nil {
		log.WithError(err).Fatal("migrate db")
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductRepository(gormDB)
	orderRepo := infraRepo.NewOrderRepository(gormDB)

	linker, err := linking.NewLinker(cfg.BaseURL)
	if err != nil {
		log.WithError(err).Fatal("create linker")
	}
	orderMetrics := metrics.NewOrderMetrics()

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	orderUC := usecase.NewOrderUsecase(
		repository.NewProductCatalog(productRepo),
		orderRepo,
		linker,
		usecase.SystemClock{},
		orderMetrics,
	)

	if cfg.SeedCatalog {
		if _, err := productUC.SeedCatalog(ctx, model.DefaultCatalog()); err != nil {
			log.WithError(err).Fatal("seed catalog")
		}
	}

	//Handler生成
	e := server.New(prometheus.DefaultGatherer,
		handler.NewProductHandler(productUC),
		handler.NewOrderHandler(orderUC),
	)

	//Server起動
	if err := server.Start(ctx, e, cfg.Addr()); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
