package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/hidestyle/hidestyle-backend/internal/cart"
	"github.com/hidestyle/hidestyle-backend/internal/category"
	"github.com/hidestyle/hidestyle-backend/internal/checkout"
	"github.com/hidestyle/hidestyle-backend/internal/config"
	"github.com/hidestyle/hidestyle-backend/internal/notify"
	"github.com/hidestyle/hidestyle-backend/internal/order"
	"github.com/hidestyle/hidestyle-backend/internal/payment"
	"github.com/hidestyle/hidestyle-backend/internal/product"
	"github.com/hidestyle/hidestyle-backend/internal/user"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	mustBootstrapSchema(db)

	app := fiber.New()
	setupCORS(app)

	userService := user.NewService(user.NewPostgresRepository(db))
	if err := userService.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seeding admin failed: %v", err)
	}

	categoryService := category.NewService(category.NewPostgresRepository(db))
	productService := product.NewService(product.NewPostgresRepository(db))
	cartService := cart.NewService(cart.NewPostgresRepository(db))

	notifier := notify.NewMulti(
		notify.NewWebhookNotifier(cfg.OrderWebhookURL),
		notify.NewEmailNotifier(cfg.AdminEmail),
	)
	orderService := order.NewService(order.NewPostgresRepository(db), notifier)

	paymentClient := payment.NewHostedClient(cfg.PaymentGatewayURL, cfg.PaymentGatewayKey)
	checkoutService := checkout.NewService(cartService, orderService, paymentClient, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL)

	userHandler := user.NewHandler(userService)
	categoryHandler := category.NewHandler(categoryService)
	productHandler := product.NewHandler(productService)
	cartHandler := cart.NewHandler(cartService)
	orderHandler := order.NewHandler(orderService)
	paymentHandler := payment.NewHandler(paymentClient, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL)
	checkoutHandler := checkout.NewHandler(checkoutService)

	userHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	cartHandler.RegisterPublicRoutes(app)
	orderHandler.RegisterPublicRoutes(app)
	paymentHandler.RegisterPublicRoutes(app)
	checkoutHandler.RegisterPublicRoutes(app)

	// everything registered below requires the admin JWT
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	categoryHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)

	log.Fatal(app.Listen(cfg.Addr))
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(databaseURL string) *sql.DB {
	if databaseURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

func mustBootstrapSchema(db *sql.DB) {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'customer',
		"createdAt" TEXT,
		"updatedAt" TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS subcategories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL,
		"categoryId" TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		price BIGINT NOT NULL,
		inventory INT NOT NULL DEFAULT 0,
		"categoryId" TEXT NOT NULL,
		"subcategoryId" TEXT,
		images TEXT[] NOT NULL DEFAULT '{}',
		sizes TEXT[] NOT NULL DEFAULT '{}',
		colors TEXT[] NOT NULL DEFAULT '{}',
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		"createdAt" TEXT,
		"updatedAt" TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS carts (
		"sessionID" TEXT PRIMARY KEY,
		items JSONB NOT NULL DEFAULT '[]',
		"updatedAt" TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		"customerName" TEXT NOT NULL,
		"customerEmail" TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		"shippingAddress" TEXT NOT NULL DEFAULT '',
		items JSONB NOT NULL DEFAULT '[]',
		"totalAmount" BIGINT NOT NULL DEFAULT 0,
		"paymentMethod" TEXT NOT NULL DEFAULT 'cod',
		status TEXT NOT NULL DEFAULT 'pending',
		"createdAt" TEXT,
		"updatedAt" TEXT
	)`,
}
