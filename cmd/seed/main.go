package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/cafehub/config"
	"github.com/oksasatya/cafehub/pkg/helpers"
)

// Seeds a local database with the admin account and a couple of cafes.
// The admin must be the first row inserted so it lands on id 1.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@cafehub.local"
	password := "password123"
	name := "site admin"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var adminID int64
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, name).Scan(&adminID)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%d email=%s password=%s\n", adminID, email, password)
	if adminID != cfg.AdminUserID {
		fmt.Printf("warning: admin landed on id %d but ADMIN_USER_ID is %d\n", adminID, cfg.AdminUserID)
	}

	cafes := []struct {
		name, city, address, seats, price, desc string
	}{
		{"Blue Cup", "Amsterdam", "Herengracht 12", "20-30", "2.50", "Canal-side espresso bar with plenty of sockets."},
		{"Red Mug", "Rotterdam", "Witte de Withstraat 4", "10-20", "3.00", "Small, loud, excellent filter coffee."},
	}
	for _, c := range cafes {
		var id int64
		err := db.QueryRow(`
			INSERT INTO cafes (name, city, address, has_sockets, has_toilet, has_wifi,
				can_take_calls, seats, coffee_price, description, image_url, owner_id)
			VALUES ($1, $2, $3, 2, 2, 2, 0, $4, $5, $6, '', $7)
			ON CONFLICT (name) DO UPDATE SET city = EXCLUDED.city
			RETURNING id
		`, c.name, c.city, c.address, c.seats, c.price, c.desc, adminID).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed cafe %q: %v", c.name, err)
		}
		fmt.Printf("seeded cafe: id=%d name=%s\n", id, c.name)
	}
}
