package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"onlinelibrary/internal/database"
	"onlinelibrary/internal/domain/auth"
	"onlinelibrary/internal/domain/catalog"
	"onlinelibrary/internal/domain/favorite"
)

// Development seeder: wipes the database and loads a small demo catalog
// with one admin, two clients and a handful of favorited books.
func main() {
	db, err := database.Connect("library.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&auth.User{},
		&catalog.Author{},
		&catalog.Genre{},
		&catalog.Book{},
		&favorite.Favorite{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM book_authors")
	db.Exec("DELETE FROM book_genres")
	db.Exec("DELETE FROM books")
	db.Exec("DELETE FROM authors")
	db.Exec("DELETE FROM genres")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := auth.User{
		Email:        "admin@library.local",
		PasswordHash: string(adminHash),
		Role:         auth.RoleAdmin,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@library.local / admin123")

	clients := make([]auth.User, 0, 2)
	for _, email := range []string{"reader1@example.com", "reader2@example.com"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
		client := auth.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         auth.RoleClient,
		}
		db.Create(&client)
		clients = append(clients, client)
	}

	log.Println("Creating catalog...")

	orwell := catalog.Author{Name: "George Orwell"}
	herbert := catalog.Author{Name: "Frank Herbert"}
	gaiman := catalog.Author{Name: "Neil Gaiman"}
	pratchett := catalog.Author{Name: "Terry Pratchett"}

	dystopia := catalog.Genre{Name: "Dystopia"}
	scifi := catalog.Genre{Name: "Science Fiction"}
	fantasy := catalog.Genre{Name: "Fantasy"}

	books := []catalog.Book{
		{
			Title:   "1984",
			Authors: []catalog.Author{orwell},
			Genres:  []catalog.Genre{dystopia},
		},
		{
			Title:   "Dune",
			Authors: []catalog.Author{herbert},
			Genres:  []catalog.Genre{scifi},
		},
		{
			Title:   "Good Omens",
			Authors: []catalog.Author{gaiman, pratchett},
			Genres:  []catalog.Genre{fantasy},
		},
	}
	for i := range books {
		if err := db.Create(&books[i]).Error; err != nil {
			log.Fatal("seeding books failed:", err)
		}
	}

	log.Println("Creating favorites...")
	db.Create(&favorite.Favorite{UserID: clients[0].ID, BookID: books[0].ID})
	db.Create(&favorite.Favorite{UserID: clients[0].ID, BookID: books[2].ID})
	db.Create(&favorite.Favorite{UserID: clients[1].ID, BookID: books[1].ID})

	log.Println("Seed complete")
}
