package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/time/rate"

	"github.com/stormcreate/stormblog/internal/auth"
	"github.com/stormcreate/stormblog/internal/handlers"
	"github.com/stormcreate/stormblog/internal/middleware"
	"github.com/stormcreate/stormblog/internal/repository"
)

// Deps holds shared dependencies to inject into handlers.
type Deps struct {
	DB        *mongo.Database
	Auth      *auth.Service
	Secret    []byte
	Admins    map[string]struct{}
	UploadDir string
}

// Register mounts all routes in one place: the four page surfaces,
// the JSON API, and static uploads.
func Register(app *fiber.App, d Deps) {
	posts := repository.NewPostRepository(d.DB)
	comments := repository.NewCommentRepository(d.DB)
	reviews := repository.NewReviewRepository(d.DB)

	pages := &handlers.PageHandler{Posts: posts, Comments: comments, Reviews: reviews, Admins: d.Admins}
	authH := &handlers.AuthHandler{Auth: d.Auth, Admins: d.Admins}
	postH := &handlers.PostHandler{Posts: posts}
	commentH := &handlers.CommentHandler{Comments: comments}
	reviewH := &handlers.ReviewHandler{Reviews: reviews}
	likeH := &handlers.LikeHandler{Posts: posts}
	uploadH := &handlers.UploadHandler{Dir: d.UploadDir}

	app.Use(middleware.WithSession(d.Secret))
	app.Use(middleware.WithVisitorID())

	// Mutations share one per-IP budget; reads stay unlimited.
	writeLimit := middleware.RateLimit(middleware.NewIPRateLimiter(rate.Limit(5), 10))

	// Pages
	app.Get("/", pages.Home)
	app.Get("/blog", pages.Blog)
	app.Get("/post", pages.Post)
	app.Get("/admin", pages.Admin)
	app.Post("/theme", handlers.ToggleTheme)
	app.Post("/post/like", writeLimit, likeH.Toggle)

	app.Static("/static", "./static")
	app.Static("/uploads", d.UploadDir)

	api := app.Group("/api")

	// Auth
	authGrp := api.Group("/auth")
	authGrp.Post("/login", writeLimit, authH.Login)
	authGrp.Post("/register", writeLimit, authH.Register)
	authGrp.Post("/logout", authH.Logout)
	authGrp.Post("/profile", middleware.RequireAuth(), authH.UpdateProfile)
	authGrp.Post("/telegram", writeLimit, authH.Telegram)

	// Public content
	api.Get("/posts/:post_id/comments", commentH.List)
	api.Post("/posts/:post_id/comments", writeLimit, commentH.Create)
	api.Get("/reviews", reviewH.List)
	api.Post("/reviews", writeLimit, reviewH.Create)

	// Admin management
	admin := api.Group("/admin", middleware.RequireAdmin(d.Admins))
	admin.Post("/posts", postH.Create)
	admin.Put("/posts/:post_id", postH.Update)
	admin.Post("/posts/:post_id/delete", postH.Delete)
	admin.Post("/comments/:comment_id/delete", commentH.Delete)
	admin.Post("/reviews/:review_id/delete", reviewH.Delete)
	admin.Post("/draft", postH.SaveDraft)
	admin.Post("/uploads", uploadH.Upload)

	// Health check
	api.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
}
