package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/config"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// Parse command line flags
	role := flag.String("role", models.RoleAdmin, "User role (admin or user)")
	flag.Parse()
	if *role != models.RoleAdmin && *role != models.RoleUser {
		log.Fatalf("Unsupported role %q, use admin or user", *role)
	}

	_ = godotenv.Load()
	conf, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	db, err := database.InitDatabase(conf.Database)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}

	// Determine client credentials based on role
	clientID, clientSecret := "dev-client", "dev-secret-123"
	if *role == models.RoleUser {
		clientID, clientSecret = "user-client", "user-secret-123"
	}

	clientService := services.NewClientService(db)
	if _, err := clientService.GetClientByID(clientID); err == nil {
		fmt.Printf("Development client already exists for role '%s'!\n", *role)
		printCredentials(conf, clientID, clientSecret)
		return
	}

	user, err := userForRole(services.NewUserService(db), *role)
	if err != nil {
		log.WithError(err).Fatalf("Failed to get user for role %s", *role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(clientSecret), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Fatal("Failed to hash secret")
	}

	client := &models.OAuthClient{
		ID:         clientID,
		Secret:     string(hash),
		Name:       fmt.Sprintf("Development %s Client", *role),
		Domain:     "http://localhost",
		UserID:     user.ID,
		Scopes:     "read write",
		GrantTypes: "client_credentials",
	}
	if err := clientService.CreateClient(client); err != nil {
		log.WithError(err).Fatal("Failed to create client")
	}

	fmt.Printf("Development OAuth client created for role '%s'!\n", *role)
	fmt.Printf("User ID: %d\n", user.ID)
	printCredentials(conf, clientID, clientSecret)
}

// userForRole gets or creates the development user with the specified role
func userForRole(userService services.UserService, role string) (*models.User, error) {
	email := fmt.Sprintf("%s@restaurants.local", role)

	user, err := userService.GetUserByEmail(email)
	if err == nil {
		fmt.Printf("Found existing user: %s (ID: %d, Role: %s)\n", user.Email, user.ID, user.Role)
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = &models.User{
		Email: email,
		Name:  fmt.Sprintf("%s User", role),
		Role:  role,
	}
	if err := userService.CreateUser(user); err != nil {
		return nil, err
	}
	fmt.Printf("Created new user: %s (ID: %d, Role: %s)\n", user.Email, user.ID, user.Role)
	return user, nil
}

func printCredentials(conf *config.Config, clientID, clientSecret string) {
	fmt.Printf("Client ID: %s\n", clientID)
	fmt.Printf("Client Secret: %s\n", clientSecret)
	fmt.Println("\nUse these credentials for testing:")
	fmt.Printf("curl -X POST http://%s/oauth/token \\\n", conf.Address())
	fmt.Printf("  -d 'grant_type=client_credentials' \\\n")
	fmt.Printf("  -d 'client_id=%s' \\\n", clientID)
	fmt.Printf("  -d 'client_secret=%s'\n", clientSecret)
}
