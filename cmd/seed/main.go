// Command seed provisions demo accounts for local development: one tutor
// with a configured hourly price, one student, a subject, and an empty
// wallet for each party.
package main

import (
	"log"

	"mentormatch/internal/config"
	"mentormatch/internal/models"
	"mentormatch/internal/repositories"
	"mentormatch/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer repositories.CloseDB()

	users := repositories.NewUserRepository(repositories.DB)
	tutors := repositories.NewTutorRepository(repositories.DB)
	wallets := repositories.NewWalletRepository(repositories.DB)

	seedUser := func(email, fullName, role string) *models.User {
		if existing, err := users.GetByEmail(email); err == nil {
			log.Printf("User %s already exists", email)
			return existing
		}

		password := config.GetEnv("SEED_PASSWORD", "changeme123")
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		user := &models.User{
			Email:    email,
			Password: string(hashed),
			FullName: fullName,
			Role:     role,
		}
		if err := users.Create(user); err != nil {
			log.Fatalf("Failed to create user %s: %v", email, err)
		}
		if err := wallets.Create(&models.Wallet{UserID: user.ID}); err != nil {
			log.Fatalf("Failed to create wallet for %s: %v", email, err)
		}
		log.Printf("Seeded %s (%s)", email, role)
		return user
	}

	tutor := seedUser("tutor@mentormatch.local", "Demo Tutor", models.RoleTutor)
	student := seedUser("student@mentormatch.local", "Demo Student", models.RoleStudent)

	price := 100000.0
	if err := tutors.UpsertProfile(&models.TutorProfile{
		UserID:       tutor.ID,
		PricePerHour: &price,
		IsVerified:   true,
	}); err != nil {
		log.Fatalf("Failed to seed tutor profile: %v", err)
	}

	subject := models.Subject{Name: "Mathematics", Category: "pho_thong"}
	if err := repositories.DB.Where("name = ?", subject.Name).FirstOrCreate(&subject).Error; err != nil {
		log.Fatalf("Failed to seed subject: %v", err)
	}

	for _, u := range []*models.User{tutor, student} {
		token, err := utils.GenerateToken(&models.UserClaims{
			UserID:       u.ID,
			Email:        u.Email,
			Role:         u.Role,
			TokenVersion: u.TokenVersion,
		})
		if err != nil {
			log.Printf("Skipping demo token for %s: %v", u.Email, err)
			continue
		}
		log.Printf("Demo token for %s:\n%s", u.Email, token)
	}

	log.Println("✅ Seeding complete")
}
