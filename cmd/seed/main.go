// Command seed provisions the database with placeholder users, customers and
// invoices so the dashboard has something to show after a fresh start.
// Users are only ever written here; the API itself never mutates them.
package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/acmecorp/invoicing-dashboard/internal/infrastructure/config"
	"github.com/acmecorp/invoicing-dashboard/internal/infrastructure/db/postgres"
	"github.com/acmecorp/invoicing-dashboard/pkg/logger"
)

type seedCustomer struct {
	id    string
	name  string
	email string
	image string
}

var customers = []seedCustomer{
	{uuid.NewString(), "Evil Rabbit", "evil@rabbit.com", "/customers/evil-rabbit.png"},
	{uuid.NewString(), "Delba de Oliveira", "delba@oliveira.com", "/customers/delba-de-oliveira.png"},
	{uuid.NewString(), "Lee Robinson", "lee@robinson.com", "/customers/lee-robinson.png"},
	{uuid.NewString(), "Michael Novotny", "michael@novotny.com", "/customers/michael-novotny.png"},
	{uuid.NewString(), "Amy Burns", "amy@burns.com", "/customers/amy-burns.png"},
	{uuid.NewString(), "Balazs Orban", "balazs@orban.com", "/customers/balazs-orban.png"},
}

type seedInvoice struct {
	customer    int // index into customers
	amountCents int64
	status      string
	daysAgo     int
}

var invoices = []seedInvoice{
	{0, 15795, "pending", 255},
	{1, 20348, "pending", 290},
	{4, 3040, "paid", 300},
	{3, 44800, "paid", 250},
	{5, 34577, "pending", 245},
	{2, 54246, "pending", 280},
	{0, 66666, "pending", 220},
	{3, 32545, "paid", 210},
	{4, 1250, "paid", 200},
	{5, 8546, "paid", 180},
	{1, 500, "paid", 150},
	{5, 8945, "paid", 120},
	{2, 1000, "paid", 100},
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	if err := seedUsers(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to seed users")
	}
	if err := seedCustomersAndInvoices(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to seed customers and invoices")
	}

	log.Info().Msg("seed complete")
}

func seedUsers(ctx context.Context, db *sql.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING`,
		uuid.NewString(), "User", "user@nextmail.com", string(hash),
	)
	return err
}

func seedCustomersAndInvoices(ctx context.Context, db *sql.DB) error {
	for _, c := range customers {
		if _, err := db.ExecContext(ctx, `
			INSERT INTO customers (id, name, email, image_url)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			c.id, c.name, c.email, c.image,
		); err != nil {
			return err
		}
	}

	for _, inv := range invoices {
		date := time.Now().UTC().AddDate(0, 0, -inv.daysAgo)
		if _, err := db.ExecContext(ctx, `
			INSERT INTO invoices (customer_id, amount, status, date)
			VALUES ($1, $2, $3, $4)`,
			customers[inv.customer].id, inv.amountCents, inv.status, date,
		); err != nil {
			return err
		}
	}
	return nil
}
