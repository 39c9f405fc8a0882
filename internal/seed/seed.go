// Package seed populates the database with demo data for development.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"lingopal/internal/models"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	FriendPairs int
	ShouldClean bool
	// SkipBcrypt stores a plaintext sentinel password instead of hashing.
	// Dev-only speedup; seeded accounts cannot log in when set.
	SkipBcrypt bool
}

// Seed populates the database with demo users, friendships and friend
// requests. Roughly a third of pairs are left as pending requests so the
// notifications screen has something to show.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users and %d friend pairs...", opts.NumUsers, opts.FriendPairs)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway")
		}
	}

	f := NewFactory(db, opts)

	users, err := f.CreateUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("Created %d users", len(users))

	if len(users) < 2 {
		log.Println("Not enough users for friendships, done")
		return nil
	}

	accepted, pending, err := f.WeaveSocialGraph(users, opts.FriendPairs)
	if err != nil {
		return fmt.Errorf("failed to create friendships: %w", err)
	}
	log.Printf("Created %d friendships and %d pending requests", accepted, pending)

	log.Println("Seeding complete")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE friend_requests, user_friends, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

// WeaveSocialGraph connects random user pairs. About two thirds of the pairs
// become accepted friendships (request row plus both friendship directions),
// the rest stay as pending requests.
func (f *Factory) WeaveSocialGraph(users []models.User, pairs int) (accepted, pending int, err error) {
	//nolint:gosec // weak randomness is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	seen := make(map[[2]uint]bool)

	for attempts := 0; accepted+pending < pairs && attempts < pairs*10; attempts++ {
		a := users[r.Intn(len(users))]
		b := users[r.Intn(len(users))]
		if a.ID == b.ID {
			continue
		}

		key := [2]uint{min(a.ID, b.ID), max(a.ID, b.ID)}
		if seen[key] {
			continue
		}
		seen[key] = true

		if r.Float32() < 0.66 {
			if err := f.CreateFriendship(&a, &b); err != nil {
				return accepted, pending, err
			}
			accepted++
		} else {
			if err := f.CreatePendingRequest(&a, &b); err != nil {
				return accepted, pending, err
			}
			pending++
		}
	}

	return accepted, pending, nil
}
