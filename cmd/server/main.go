package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"github.com/stormcreate/stormblog/configs"
	_ "github.com/stormcreate/stormblog/docs"
	authpkg "github.com/stormcreate/stormblog/internal/auth"
	"github.com/stormcreate/stormblog/internal/repository"
	"github.com/stormcreate/stormblog/internal/routes"
)

func init() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

func main() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		panic("JWT_SECRET is required")
	}

	// --- MongoDB Connection ---
	client := configs.ConnectMongo()
	defer configs.DisconnectMongo(client)
	db := configs.Database(client)

	users := repository.NewUserRepository(db)
	authSvc := authpkg.NewService(users, []byte(secret))

	// Session transition audit. Page-lifetime subscribers never cancel;
	// the handle exists anyway.
	authSvc.Observe(func(sess *authpkg.Session) {
		if sess == nil {
			log.Println("session: signed out")
			return
		}
		log.Printf("session: signed in as %s", sess.Email)
	})

	// --- Fiber App Setup ---
	app := fiber.New()

	// Swagger docs
	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, routes.Deps{
		DB:        db,
		Auth:      authSvc,
		Secret:    []byte(secret),
		Admins:    configs.AdminEmails(),
		UploadDir: configs.UploadDir(),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Fatal(app.Listen(":" + port))
}
