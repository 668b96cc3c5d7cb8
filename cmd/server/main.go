package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/assessment"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/config"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/domain/fiber/handler"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/logger"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/matcher"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/middleware"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/model"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/repository"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/service"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/usecase"
	"github.com/samyakjain16/SkillVisaFinderNew/internal/visa"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		fmt.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	log, err := logger.New(appConfig.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return config.LoadAppConfig().Env != "production"
		},
	}))
	app.Use(healthcheck.New())

	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB(log)

	occupationRepo := repository.NewOccupationRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	clientRepo := repository.NewClientRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)

	openRouter := service.NewOpenRouterService(log)
	gemini, err := service.NewGeminiService(ctx, log)
	if err != nil {
		log.Fatal("gemini init failed", zap.Error(err))
	}

	m := matcher.New(gemini, log)
	registry := visa.NewRegistry()
	engine := assessment.NewEngine(registry, log)

	documentUC := usecase.NewDocumentUsecase(documentRepo, occupationRepo, clientRepo, openRouter, gemini, m, log)
	assessmentUC := usecase.NewAssessmentUsecase(assessmentRepo, clientRepo, engine, log)

	handler.NewDocumentHandler(documentUC).RegisterRoutes(app)
	handler.NewAssessmentHandler(assessmentUC).RegisterRoutes(app)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Debug("active goroutines", zap.Int("count", runtime.NumGoroutine()))
		}
	}()

	log.Info("server running", zap.String("port", appConfig.Port))
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func ConnectDB(log *zap.Logger) *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("could not connect to database", zap.Error(err))
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatal("could not get database instance", zap.Error(err))
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	// vector type must exist before the occupations table migrates
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatal("could not enable pgvector extension", zap.Error(err))
	}

	err = db.AutoMigrate(
		&model.Occupation{},
		&model.Client{},
		&model.Document{},
		&model.DocumentOccupation{},
		&model.Assessment{},
	)
	if err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	return db
}
