package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"onlinelibrary/internal/commands"
	"onlinelibrary/internal/database"
	"onlinelibrary/internal/domain/auth"
	"onlinelibrary/internal/domain/catalog"
	"onlinelibrary/internal/domain/favorite"
	"onlinelibrary/internal/middleware"
	catalogmod "onlinelibrary/internal/modules/catalog"
	favoritemod "onlinelibrary/internal/modules/favorite"
	jwtsvc "onlinelibrary/internal/pkg/jwt"
	"onlinelibrary/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&auth.User{},
		&catalog.Author{},
		&catalog.Genre{},
		&catalog.Book{},
		&favorite.Favorite{},
	); err != nil {
		log.Fatal(err)
	}

	// Administrative mode: any argument means run a command and exit
	// instead of serving HTTP.
	if len(os.Args) > 1 {
		if err := commands.Run(db, os.Args[1:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	bookRepo := repository.NewBookRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	catalogHandler := catalogmod.NewHandler(bookRepo)
	favoriteHandler := favoritemod.NewHandler(favoriteRepo, bookRepo)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	// public: book reads
	public := r.Group("")
	catalogHandler.RegisterPublicRoutes(public)

	// admin: book writes and export
	admin := r.Group("")
	admin.Use(middleware.JWTAuth(j), middleware.AdminOnly())
	catalogHandler.RegisterAdminRoutes(admin)

	// any authenticated user: favorites
	protected := r.Group("")
	protected.Use(middleware.JWTAuth(j))
	favoriteHandler.RegisterRoutes(protected)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
