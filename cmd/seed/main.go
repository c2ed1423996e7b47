package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"petcare/internal/database"
	"petcare/internal/domain"
	"petcare/internal/domain/notification"
	"petcare/internal/geo"
	"petcare/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "petcare.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}
	if err := notification.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM appointments")
	db.Exec("DELETE FROM assignment_requests")
	db.Exec("DELETE FROM pets")
	db.Exec("DELETE FROM vets")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	vets := repository.NewVetRepository(db)
	pets := repository.NewPetRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Email:        "admin@petcare.kz",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Administrator",
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal("seed admin:", err)
	}
	log.Println("Admin created: admin@petcare.kz / admin123")

	owners := make([]*domain.User, 0, 3)
	ownerEmails := []string{"asel@mail.kz", "bekzat@gmail.com", "dina@yandex.kz"}
	ownerNames := []string{"Asel", "Bekzat", "Dina"}
	for i, email := range ownerEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
		owner := &domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleOwner,
			Name:         ownerNames[i],
			Phone:        fmt.Sprintf("+7 777 123 45%02d", i+67),
		}
		if err := users.Create(ctx, owner); err != nil {
			log.Fatal("seed owner:", err)
		}
		owners = append(owners, owner)
	}

	// ================== VETS ==================
	log.Println("Creating vets...")

	vetSeeds := []struct {
		name      string
		clinic    string
		city      string
		emergency bool
		premium   bool
	}{
		{"Dr. Aigerim Seitova", "Almaty Pet Clinic", "Almaty", true, false},
		{"Dr. Marat Zhanibekov", "Astana Vet Center", "Astana", false, true},
		{"Dr. Olga Kim", "Shymkent Animal Hospital", "Shymkent", true, true},
		{"Dr. Nurlan Abenov", "Karaganda Vet Practice", "Karaganda", false, false},
		{"Dr. Saule Tulegenova", "Mobile Vet Service", "", false, true}, // no resolvable location
	}

	for i, s := range vetSeeds {
		hash, _ := bcrypt.GenerateFromPassword([]byte("vet123"), bcrypt.DefaultCost)
		vetUser := &domain.User{
			Email:        fmt.Sprintf("vet%d@petcare.kz", i+1),
			PasswordHash: string(hash),
			Role:         domain.RoleVet,
			Name:         s.name,
		}
		if err := users.Create(ctx, vetUser); err != nil {
			log.Fatal("seed vet user:", err)
		}

		v := &domain.Vet{
			UserID:             vetUser.ID,
			Name:               s.name,
			ClinicName:         s.clinic,
			Location:           s.city,
			EmergencyAvailable: s.emergency,
			Premium:            s.premium,
			Rating:             3.5 + rand.Float64()*1.5,
			Schedule:           "Mon-Fri 09:00-18:00",
			Status:             domain.VetApproved,
		}
		if coord, ok := geo.Resolve(s.city); ok {
			v.Latitude = &coord.Lat
			v.Longitude = &coord.Lng
		}
		if err := vets.Create(ctx, v); err != nil {
			log.Fatal("seed vet:", err)
		}
	}

	// One unapproved vet so the pending flow has data.
	hash, _ := bcrypt.GenerateFromPassword([]byte("vet123"), bcrypt.DefaultCost)
	pendingUser := &domain.User{
		Email:        "pendingvet@petcare.kz",
		PasswordHash: string(hash),
		Role:         domain.RoleVet,
		Name:         "Dr. New Applicant",
	}
	if err := users.Create(ctx, pendingUser); err != nil {
		log.Fatal("seed pending vet user:", err)
	}
	if err := vets.Create(ctx, &domain.Vet{
		UserID: pendingUser.ID,
		Name:   pendingUser.Name,
		Status: domain.VetPending,
	}); err != nil {
		log.Fatal("seed pending vet:", err)
	}

	// ================== PETS ==================
	log.Println("Creating pets...")

	petSeeds := []struct {
		name    string
		species string
		breed   string
		birth   string
	}{
		{"Barsik", "cat", "British Shorthair", "2021-03-10"},
		{"Rex", "dog", "German Shepherd", "2019-07-22"},
		{"Musya", "cat", "", "2023-01-05"},
		{"Laika", "dog", "Husky", "2020-11-30"},
		{"Kesha", "parrot", "Budgerigar", ""},
	}

	for i, s := range petSeeds {
		owner := owners[i%len(owners)]
		if err := pets.Create(ctx, &domain.Pet{
			OwnerID:   owner.ID,
			Name:      s.name,
			Species:   s.species,
			Breed:     s.breed,
			BirthDate: s.birth,
		}); err != nil {
			log.Fatal("seed pet:", err)
		}
	}

	log.Println("Seed complete.")
}
