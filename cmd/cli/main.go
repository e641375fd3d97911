package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aureliacouture/boutique/internal/models"
	"github.com/aureliacouture/boutique/internal/store"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	addUserCmd := flag.NewFlagSet("add-user", flag.ExitOnError)
	username := addUserCmd.String("username", "", "Username for the new admin user")
	password := addUserCmd.String("password", "", "Password for the new admin user")

	if len(os.Args) < 2 {
		fmt.Println("expected 'add-user' or 'seed' subcommand")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add-user":
		addUserCmd.Parse(os.Args[2:])
		if *username == "" || *password == "" {
			fmt.Println("username and password are required")
			addUserCmd.PrintDefaults()
			os.Exit(1)
		}
		createUser(*username, *password)
	case "seed":
		seedCatalog()
	default:
		fmt.Println("expected 'add-user' or 'seed' subcommand")
		os.Exit(1)
	}
}

func openStore() *store.Store {
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = "./boutique.db"
	}

	db, err := store.NewStore(dataPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	// Ensure the table exists if running the cli before the server
	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to init schema: %v", err)
	}
	return db
}

func createUser(username, password string) {
	db := openStore()
	defer db.Close()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	if err := db.CreateUser(username, string(hashedPassword)); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("User '%s' created successfully.\n", username)
}

// seedCatalog fills an empty catalog with a starter collection so a fresh
// install has something on the shelves.
func seedCatalog() {
	db := openStore()
	defer db.Close()

	catalog := store.NewCatalog(db)
	if len(catalog.List()) > 0 {
		fmt.Println("Catalog is not empty, refusing to seed.")
		os.Exit(1)
	}

	samples := []models.Product{
		{
			Name:        "Kanchipuram Silk Saree",
			Price:       12500,
			Category:    "Sarees",
			Description: "Pure silk with a woven zari border.",
			Visible:     true,
		},
		{
			Name:        "Festive Anarkali Chudidar",
			Price:       4200,
			Category:    "Chudidars",
			Description: "Floor-length anarkali in deep emerald.",
			Visible:     true,
		},
		{
			Name:        "Antique Gold Bangle Set",
			Price:       1800,
			Category:    "Bangles",
			Description: "Set of six, temple finish.",
			Visible:     true,
		},
		{
			Name:        "Kundan Choker",
			Price:       6900,
			Category:    "Jewellery",
			Description: "Kundan stones on an adjustable cord.",
			Visible:     true,
		},
	}

	// Create prepends, so walk backwards to keep the order above.
	for i := len(samples) - 1; i >= 0; i-- {
		catalog.Create(samples[i])
	}

	fmt.Printf("Seeded %d products.\n", len(samples))
}
