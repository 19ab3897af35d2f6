package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/eknows/eknows-api/internal/auth"
	"github.com/eknows/eknows-api/internal/config"
	"github.com/eknows/eknows-api/internal/database"
	"github.com/eknows/eknows-api/internal/handler"
	"github.com/eknows/eknows-api/internal/queue"
	"github.com/eknows/eknows-api/internal/repository"
	"github.com/eknows/eknows-api/internal/router"
	"github.com/eknows/eknows-api/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(ctx, db); err != nil {
		cancel()
		log.Fatalf("migrate: %v", err)
	}
	cancel()

	users := repository.NewUserRepo(db)
	subjects := repository.NewSubjectRepo(db)
	materials := repository.NewMaterialRepo(db)
	programs := repository.NewProgramRepo(db)
	reports := repository.NewReportRepo(db)

	authenticator := auth.NewAuthenticator(users)
	registry := auth.NewRegistry(cfg.TokenCapacity)

	rdb := config.NewRedisClient() // nil when Redis is unreachable
	cacheCfg := config.LoadCacheConfig()

	audit := service.NewAuditPublisher()
	go queue.StartAuditConsumer()

	h := router.Handlers{
		Auth:     handler.NewAuthHandler(authenticator, users, registry, audit),
		Teacher:  handler.NewTeacherHandler(subjects, reports),
		Admin:    handler.NewAdminHandler(subjects, programs, users, reports),
		Subject:  handler.NewSubjectHandler(subjects),
		Material: handler.NewMaterialHandler(materials),
	}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	router.RegisterRoutes(e, h, registry, cacheCfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
