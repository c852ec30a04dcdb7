package db

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/campus-connect/internal/logger"
)

var seedInterests = []string{"music", "chess", "hiking", "robotics", "films", "football", "poetry", "coding"}

// seedTables lists tables in deletion order, most dependent first.
var seedTables = []string{
	"messages", "dice_matches", "dice_rolls", "matches", "friend_requests",
	"likes", "blocks", "warnings", "bans", "profiles",
}

// SeedTestData resets the database and populates it with demo campus members.
//
// Behavior:
//  1. Clears every table.
//  2. Creates 20 verified profiles with institutional emails on domain.
//  3. Generates likes with ~70% probability; every 3rd pair is made mutual
//     and gets its match.
//  4. Gives half of the members a dice roll for today.
func SeedTestData(db *gorm.DB, domain string) error {
	r := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

	if err := clearAll(db); err != nil {
		return err
	}
	logger.Info("cleared existing data")

	now := time.Now().UTC()
	ids := make([]string, 0, 20)
	for i := 1; i <= 20; i++ {
		batch := now.Year()%100 - r.IntN(4)
		p := seedProfile(fmt.Sprintf("%02deg1%02d%c%02d@%s", batch, r.IntN(100), 'a'+rune(r.IntN(8)), i, domain), batch, now)
		p.Name = fmt.Sprintf("Student %d", i)
		p.Interests = pickInterests(r)
		if err := db.Create(p).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}
		ids = append(ids, p.ID)
	}
	logger.Info("seeded profiles", "count", len(ids))

	counter := 0
	for _, liker := range ids {
		for j := 0; j < 8; j++ {
			liked := ids[r.IntN(len(ids))]
			if liked == liker || r.IntN(100) >= 70 {
				continue
			}
			if err := seedLike(db, liker, liked); err != nil {
				return err
			}
			if counter%3 == 0 {
				if err := seedLike(db, liked, liker); err != nil {
					return err
				}
				if err := seedMatch(db, liker, liked, OriginLike); err != nil {
					return err
				}
			}
			counter++
		}
	}
	logger.Info("seeded likes", "count", counter)

	day := now.Format(time.DateOnly)
	for i, id := range ids {
		if i%2 == 1 {
			continue
		}
		roll := DiceRoll{ID: uuid.NewString(), UserID: id, Day: day, DiceNumber: r.IntN(6) + 1, RolledAt: now}
		if err := db.Create(&roll).Error; err != nil {
			return fmt.Errorf("failed to seed dice roll: %w", err)
		}
	}
	return nil
}

// SeedMinimalTestData creates three profiles: a and b matched through mutual
// likes, c liking a without reply.
func SeedMinimalTestData(db *gorm.DB, domain string) error {
	if err := clearAll(db); err != nil {
		return err
	}

	now := time.Now().UTC()
	batch := now.Year() % 100
	var ids []string
	for i, name := range []string{"Asha", "Bilal", "Chen"} {
		p := seedProfile(fmt.Sprintf("%02deg105j%02d@%s", batch, i+1, domain), batch, now)
		p.Name = name
		if err := db.Create(p).Error; err != nil {
			return err
		}
		ids = append(ids, p.ID)
	}

	if err := seedLike(db, ids[0], ids[1]); err != nil {
		return err
	}
	if err := seedLike(db, ids[1], ids[0]); err != nil {
		return err
	}
	if err := seedMatch(db, ids[0], ids[1], OriginLike); err != nil {
		return err
	}
	return seedLike(db, ids[2], ids[0])
}

func clearAll(db *gorm.DB) error {
	for _, table := range seedTables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

func seedProfile(email string, batch int, now time.Time) *Profile {
	year := now.Year()%100 - batch + 1
	year = max(1, min(year, 4))
	return &Profile{
		ID:         uuid.NewString(),
		Email:      email,
		Verified:   true,
		Department: "EG",
		Year:       year,
	}
}

func pickInterests(r *rand.Rand) datatypes.JSON {
	n := r.IntN(3) + 1
	picked := make([]string, 0, n)
	for _, i := range r.Perm(len(seedInterests))[:n] {
		picked = append(picked, seedInterests[i])
	}
	b, _ := json.Marshal(picked)
	return datatypes.JSON(b)
}

func seedLike(db *gorm.DB, liker, liked string) error {
	err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Like{LikerID: liker, LikedID: liked}).Error
	if err != nil {
		return fmt.Errorf("failed to seed like: %w", err)
	}
	return nil
}

func seedMatch(db *gorm.DB, a, b string, origin MatchOrigin) error {
	a, b = CanonicalPair(a, b)
	err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Match{ID: uuid.NewString(), UserA: a, UserB: b, Origin: origin}).Error
	if err != nil {
		return fmt.Errorf("failed to seed match: %w", err)
	}
	return nil
}
