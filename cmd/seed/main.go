package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"time"

	"travlr/internal/config"
	"travlr/internal/database"
	apperrors "travlr/internal/errors"
	"travlr/internal/models"
	"travlr/internal/repository"
	"travlr/internal/storage"
	"travlr/pkg/auth"
	"travlr/pkg/crypto"

	"go.mongodb.org/mongo-driver/bson"
)

// seedTrip mirrors the layout of data/trips.json.
type seedTrip struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Length      int     `json:"length"`
	Start       string  `json:"start"`
	Resort      string  `json:"resort"`
	PerPerson   float64 `json:"perPerson"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// seedUser describes the demo accounts, one per role.
type seedUser struct {
	name     string
	email    string
	password string
	role     string
}

var demoUsers = []seedUser{
	{"Demo Admin", "admin@travlr.example", "admin-pass1", models.RoleAdmin},
	{"Demo Manager", "manager@travlr.example", "manager-pass1", models.RoleManager},
	{"Demo User", "user@travlr.example", "user-pass1", models.RoleUser},
}

func main() {
	tripsFile := flag.String("trips", "data/trips.json", "path to the trips seed file")
	skipUsers := flag.Bool("skip-users", false, "do not create demo users")
	skipImages := flag.Bool("skip-images", false, "do not upload placeholder trip images")
	flag.Parse()

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	encryptor, err := crypto.NewEncryptor(cfg.EncryptionKey)
	if err != nil {
		log.Fatalf("Failed to create encryptor: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tripRepo := repository.NewTripRepository(mongoDB.Database)
	if err := tripRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create trip indexes: %v", err)
	}

	seeds := seedTrips(ctx, mongoDB, tripRepo, *tripsFile)

	if !*skipImages {
		s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)
		seedImages(ctx, s3Client, seeds)
	}

	if !*skipUsers {
		userRepo := repository.NewUserRepository(mongoDB.Database, encryptor)
		if err := userRepo.EnsureIndexes(ctx); err != nil {
			log.Fatalf("Failed to create user indexes: %v", err)
		}
		seedUsers(ctx, userRepo)
	}

	log.Println("Seeding complete")
}

// seedTrips wipes the trips collection and reloads it from the seed file.
func seedTrips(ctx context.Context, mongoDB *database.MongoDB, repo repository.TripRepository, path string) []seedTrip {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}

	var seeds []seedTrip
	if err := json.Unmarshal(raw, &seeds); err != nil {
		log.Fatalf("Failed to parse %s: %v", path, err)
	}

	if _, err := mongoDB.Collection("trips").DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear trips: %v", err)
	}

	for _, seed := range seeds {
		start, err := time.Parse(time.RFC3339, seed.Start)
		if err != nil {
			log.Fatalf("Trip %s has invalid start date %q: %v", seed.Code, seed.Start, err)
		}

		trip := &models.Trip{
			Code:        seed.Code,
			Name:        seed.Name,
			Length:      seed.Length,
			Start:       start,
			Resort:      seed.Resort,
			PerPerson:   seed.PerPerson,
			Image:       seed.Image,
			Description: seed.Description,
		}
		if err := repo.Create(ctx, trip); err != nil {
			log.Fatalf("Failed to insert trip %s: %v", seed.Code, err)
		}
	}

	log.Printf("Seeded %d trips", len(seeds))
	return seeds
}

// seedImages uploads a flat-colour placeholder PNG for every trip image key.
func seedImages(ctx context.Context, store storage.Storage, seeds []seedTrip) {
	for i, seed := range seeds {
		if seed.Image == "" {
			continue
		}

		img := image.NewRGBA(image.Rect(0, 0, 64, 64))
		tint := color.RGBA{R: uint8(40 * (i + 1)), G: 120, B: 160, A: 255}
		for y := 0; y < 64; y++ {
			for x := 0; x < 64; x++ {
				img.Set(x, y, tint)
			}
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			log.Fatalf("Failed to encode placeholder for %s: %v", seed.Code, err)
		}

		if err := store.PutObject(ctx, seed.Image, &buf, "image/png"); err != nil {
			log.Fatalf("Failed to upload image for %s: %v", seed.Code, err)
		}
	}

	log.Printf("Uploaded placeholder images")
}

// seedUsers creates one demo account per role, skipping any that exist.
func seedUsers(ctx context.Context, repo repository.UserRepository) {
	for _, demo := range demoUsers {
		salt, hash, err := auth.SetPassword(demo.password)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", demo.email, err)
		}

		user := &models.User{
			Email: demo.email,
			Name:  demo.name,
			Salt:  salt,
			Hash:  hash,
			Role:  demo.role,
		}

		err = repo.Create(ctx, user)
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			log.Printf("User %s already exists, skipping", demo.email)
			continue
		}
		if err != nil {
			log.Fatalf("Failed to create user %s: %v", demo.email, err)
		}
		log.Printf("Created %s (%s)", demo.email, demo.role)
	}
}
