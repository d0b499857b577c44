package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/premiumparfumes/storefront-backend/internal/admin"
	"github.com/premiumparfumes/storefront-backend/internal/advisor"
	"github.com/premiumparfumes/storefront-backend/internal/catalog"
	"github.com/premiumparfumes/storefront-backend/internal/config"
	"github.com/premiumparfumes/storefront-backend/internal/contact"
	"github.com/premiumparfumes/storefront-backend/internal/genai"
	"github.com/premiumparfumes/storefront-backend/internal/message"
	"github.com/premiumparfumes/storefront-backend/internal/sitedata"
	"github.com/premiumparfumes/storefront-backend/internal/studio"
	"github.com/premiumparfumes/storefront-backend/internal/translations"
	"github.com/premiumparfumes/storefront-backend/internal/videojob"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLog)

	// repositories: postgres when DATABASE_URL is set, in-memory otherwise
	var (
		catalogRepo catalog.Repository
		transRepo   translations.Repository
		contactRepo contact.Repository
		messageRepo message.Repository
	)
	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()

		catalogPG := catalog.NewPostgresRepository(db)
		transPG := translations.NewPostgresRepository(db)
		contactPG := contact.NewPostgresRepository(db)
		messagePG := message.NewPostgresRepository(db)
		for _, ensure := range []func() error{
			catalogPG.EnsureSchema, transPG.EnsureSchema, contactPG.EnsureSchema, messagePG.EnsureSchema,
		} {
			if err := ensure(); err != nil {
				log.Fatalf("schema: %v", err)
			}
		}
		// seed the catalog on first boot so the storefront is never empty
		if len(catalogPG.List()) == 0 {
			if err := catalogPG.Replace(catalog.Defaults()); err != nil {
				log.Printf("warning: catalog seed failed: %v", err)
			}
		}
		catalogRepo, transRepo, contactRepo, messageRepo = catalogPG, transPG, contactPG, messagePG
	} else {
		catalogRepo = catalog.NewInMemoryRepository(catalog.Defaults())
		transRepo = translations.NewInMemoryRepository(translations.Defaults())
		contactRepo = contact.NewInMemoryRepository(contact.Defaults())
		messageRepo = message.NewInMemoryRepository()
	}

	catalogService := catalog.NewService(catalogRepo)
	transService := translations.NewService(transRepo)
	contactService := contact.NewService(contactRepo)

	// site data stores: file store always, remote only when configured
	fileStore := sitedata.NewFileStore(cfg.DataDir)
	var remote *sitedata.RemoteClient
	if cfg.SheetAPIURL != "" {
		remote = sitedata.NewRemoteClient(cfg.SheetAPIURL, cfg.SheetFireAndForget)
	}
	siteService := sitedata.NewService(catalogService, transService, contactService, fileStore, remote, sitedata.NewSessionStore())

	// hydrate repositories from the last file snapshot, if any
	if snap, ok := fileStore.Load(); ok {
		if err := siteService.Hydrate(snap); err != nil {
			log.Printf("warning: snapshot hydrate failed: %v", err)
		}
	}

	gen := genai.NewClient(genai.Config{APIKey: cfg.GeminiAPIKey, BaseURL: cfg.GeminiBaseURL})
	advisorService := advisor.NewService(gen, advisor.Models{
		Recommend: cfg.RecommendModel,
		Chat:      cfg.ChatModel,
	}, catalogService, transService)
	studioService := studio.NewService(gen, studio.Models{
		Image:     cfg.ImageModel,
		ImageEdit: cfg.ImageEditModel,
		Video:     cfg.VideoModel,
	}, videojob.Poller{Interval: cfg.VideoPollInterval, MaxAttempts: cfg.VideoMaxPolls})

	var notifier message.Notifier
	if cfg.TelegramBotToken != "" {
		notifier = message.NewTelegramClient(message.TelegramConfig{
			BotToken: cfg.TelegramBotToken,
			ChatID:   cfg.TelegramChatID,
		})
	}
	messageService := message.NewService(messageRepo, notifier)

	catalogHandler := catalog.NewHandler(catalogService)
	transHandler := translations.NewHandler(transService)
	contactHandler := contact.NewHandler(contactService)
	siteHandler := sitedata.NewHandler(siteService)
	advisorHandler := advisor.NewHandler(advisorService)
	studioHandler := studio.NewHandler(studioService)
	messageHandler := message.NewHandler(messageService)
	adminHandler := admin.NewHandler(admin.NewService(cfg.AdminPasswordHash), cfg.JWTSecret)

	// public surface first; everything registered after the JWT middleware
	// requires an admin token
	adminHandler.RegisterPublicRoutes(app)
	catalogHandler.RegisterPublicRoutes(app)
	transHandler.RegisterPublicRoutes(app)
	contactHandler.RegisterPublicRoutes(app)
	siteHandler.RegisterPublicRoutes(app)
	advisorHandler.RegisterPublicRoutes(app)
	studioHandler.RegisterPublicRoutes(app)
	messageHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	catalogHandler.RegisterProtectedRoutes(app)
	transHandler.RegisterProtectedRoutes(app)
	contactHandler.RegisterProtectedRoutes(app)
	siteHandler.RegisterProtectedRoutes(app)
	messageHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Printf("%s %s %d %v", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}

func mustOpenDB(url string) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}
