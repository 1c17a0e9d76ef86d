// Command resetadmin resets an administrator's password and clears any
// lockout. It creates the account when it does not exist yet.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"travlr/internal/config"
	"travlr/internal/database"
	apperrors "travlr/internal/errors"
	"travlr/internal/models"
	"travlr/internal/repository"
	"travlr/pkg/auth"
	"travlr/pkg/crypto"
)

func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "new password (min 8 characters)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Both -email and -password are required")
	}
	if len(*password) < 8 {
		log.Fatal("Password must be at least 8 characters")
	}

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	encryptor, err := crypto.NewEncryptor(cfg.EncryptionKey)
	if err != nil {
		log.Fatalf("Failed to create encryptor: %v", err)
	}

	repo := repository.NewUserRepository(mongoDB.Database, encryptor)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	salt, hash, err := auth.SetPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user, err := repo.FindByEmail(ctx, *email)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		user = &models.User{
			Email: *email,
			Name:  "Administrator",
			Salt:  salt,
			Hash:  hash,
			Role:  models.RoleAdmin,
		}
		if err := repo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}
		log.Printf("Created admin account %s", *email)
		return
	}
	if err != nil {
		log.Fatalf("Failed to look up %s: %v", *email, err)
	}

	if err := repo.UpdatePassword(ctx, user.ID, salt, hash); err != nil {
		log.Fatalf("Failed to update password: %v", err)
	}
	if err := repo.ResetLoginAttempts(ctx, user.ID); err != nil {
		log.Fatalf("Failed to clear lockout: %v", err)
	}
	if user.Role != models.RoleAdmin {
		if err := repo.SetRole(ctx, user.ID, models.RoleAdmin); err != nil {
			log.Fatalf("Failed to promote %s to admin: %v", *email, err)
		}
		log.Printf("Promoted %s to admin", *email)
	}

	log.Printf("Password reset for %s", *email)
}
