package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/phnam24/frontend-v1-sub001/config"
	"github.com/phnam24/frontend-v1-sub001/loyalty"
	"github.com/phnam24/frontend-v1-sub001/models"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

var (
	rankConfigPath string
	dryRun         bool
)

// rootCmd seeds the storefront database.
// Usage: go run ./cmd/seed [migrate|catalog|users|ranks|all]
var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the storefront database",
	Long: `Create tables and load demo data for local development.

Available subcommands:
  migrate - Create or update tables
  catalog - Upsert demo products and vouchers
  users   - Upsert demo shoppers with ranks assigned from their spend
  ranks   - Reassign every user's rank from total_spent
  all     - migrate, catalog and users in order`,
	SilenceUsage: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update tables",
	RunE:  withDB(migrate),
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Upsert demo products and vouchers",
	RunE:  withDB(seedCatalog),
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Upsert demo shoppers",
	RunE:  withDB(seedUsers),
}

var ranksCmd = &cobra.Command{
	Use:   "ranks",
	Short: "Reassign every user's rank from total_spent",
	Long: `Ranks are assigned server-side from lifetime spend. Run this after
changing the rank thresholds (RANK_CONFIG) or importing orders.`,
	RunE: withDB(reassignRanks),
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "migrate, catalog and users in order",
	RunE: withDB(func(db *gorm.DB, ladder *loyalty.Ladder) error {
		for _, step := range []func(*gorm.DB, *loyalty.Ladder) error{migrate, seedCatalog, seedUsers} {
			if err := step(db, ladder); err != nil {
				return err
			}
		}
		return nil
	}),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rankConfigPath, "ranks", os.Getenv("RANK_CONFIG"), "YAML file with rank thresholds")
	ranksCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print changes without writing them")

	rootCmd.AddCommand(migrateCmd, catalogCmd, usersCmd, ranksCmd, allCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// withDB opens the catalog database and rank ladder around a seeding step.
func withDB(step func(*gorm.DB, *loyalty.Ladder) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		ladder, err := config.LoadLadder(rankConfigPath)
		if err != nil {
			return err
		}

		db, err := config.OpenGorm(cfg.DatabaseURL, true)
		if err != nil {
			return err
		}
		defer config.CloseDB(db, nil)

		return step(db, ladder)
	}
}

func migrate(db *gorm.DB, _ *loyalty.Ladder) error {
	if err := db.AutoMigrate(&models.Product{}, &models.Voucher{}, &models.User{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Println("✓ Tables migrated")
	return nil
}

func seedCatalog(db *gorm.DB, _ *loyalty.Ladder) error {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range demoProducts() {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&p).Error; err != nil {
				return fmt.Errorf("seed product %q: %w", p.Name, err)
			}
		}
		log.Printf("✓ %d products seeded", len(demoProducts()))

		for _, v := range demoVouchers() {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "code"}},
				UpdateAll: true,
			}).Create(&v).Error; err != nil {
				return fmt.Errorf("seed voucher %s: %w", v.Code, err)
			}
		}
		log.Printf("✓ %d vouchers seeded", len(demoVouchers()))
		return nil
	})
}

func seedUsers(db *gorm.DB, ladder *loyalty.Ladder) error {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	users := assignRanks(demoUsers(), ladder)
	for _, u := range users {
		err := db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "rank", "total_spent", "updated_at"}),
		}).Create(&u).Error
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		log.Printf("✓ %s → %s", u.Email, u.Rank)
	}
	return nil
}

func reassignRanks(db *gorm.DB, ladder *loyalty.Ladder) error {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var users []models.User
	if err := db.WithContext(ctx).Select("id", "email", "rank", "total_spent").Find(&users).Error; err != nil {
		return fmt.Errorf("load users: %w", err)
	}

	changes := rankChanges(users, ladder)
	if len(changes) == 0 {
		log.Println("✓ All ranks up to date")
		return nil
	}

	for _, ch := range changes {
		log.Printf("%s: %s → %s", ch.Email, ch.From, ch.To)
		if dryRun {
			continue
		}
		if err := db.WithContext(ctx).Model(&models.User{}).
			Where("id = ?", ch.UserID).
			Update("rank", ch.To).Error; err != nil {
			return fmt.Errorf("update rank for %s: %w", ch.Email, err)
		}
	}

	if dryRun {
		log.Printf("⚠️ dry run: %d ranks would change", len(changes))
	} else {
		log.Printf("✓ %d ranks updated", len(changes))
	}
	return nil
}
