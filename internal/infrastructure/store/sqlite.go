package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nutrilog/backend/internal/domain"
)

// Open opens (creating if needed) the sqlite database at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return db, nil
}

// ProfileStore persists the single user profile.
type ProfileStore struct {
	db *sql.DB
}

// NewProfileStore creates a profile store over an open database.
func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// Save upserts the profile. There is exactly one profile row (id=1).
func (s *ProfileStore) Save(ctx context.Context, p *domain.UserProfile) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO profile(id, age, sex, height_cm, weight_kg, height_imperial, weight_imperial,
  goal, activity_level, diet_type, daily_calories, protein_g, carbs_g, fat_g)
VALUES(1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  age=excluded.age,
  sex=excluded.sex,
  height_cm=excluded.height_cm,
  weight_kg=excluded.weight_kg,
  height_imperial=excluded.height_imperial,
  weight_imperial=excluded.weight_imperial,
  goal=excluded.goal,
  activity_level=excluded.activity_level,
  diet_type=excluded.diet_type,
  daily_calories=excluded.daily_calories,
  protein_g=excluded.protein_g,
  carbs_g=excluded.carbs_g,
  fat_g=excluded.fat_g
`, p.Age, string(p.Sex), p.HeightCm, p.WeightKg, p.HeightImperial, p.WeightImperial,
		string(p.Goal), string(p.ActivityLevel), string(p.DietType),
		p.Targets.DailyCalories, p.Targets.ProteinGrams, p.Targets.CarbsGrams, p.Targets.FatGrams)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Get returns the stored profile or domain.ErrProfileNotFound.
func (s *ProfileStore) Get(ctx context.Context) (*domain.UserProfile, error) {
	var p domain.UserProfile
	var sex, goal, activity, diet string
	err := s.db.QueryRowContext(ctx, `
SELECT age, sex, height_cm, weight_kg, height_imperial, weight_imperial,
  goal, activity_level, diet_type, daily_calories, protein_g, carbs_g, fat_g
FROM profile WHERE id = 1
`).Scan(&p.Age, &sex, &p.HeightCm, &p.WeightKg, &p.HeightImperial, &p.WeightImperial,
		&goal, &activity, &diet,
		&p.Targets.DailyCalories, &p.Targets.ProteinGrams, &p.Targets.CarbsGrams, &p.Targets.FatGrams)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	p.Sex = domain.Sex(sex)
	p.Goal = domain.Goal(goal)
	p.ActivityLevel = domain.ActivityLevel(activity)
	p.DietType = domain.DietType(diet)
	return &p, nil
}

// FoodLogStore persists diary entries.
type FoodLogStore struct {
	db *sql.DB
}

// NewFoodLogStore creates a food log store over an open database.
func NewFoodLogStore(db *sql.DB) *FoodLogStore {
	return &FoodLogStore{db: db}
}

// Add inserts one entry and returns its id. Extended nutrients are stored as
// a JSON column; all amounts in it are grams.
func (s *FoodLogStore) Add(ctx context.Context, e *domain.FoodLogEntry) (int64, error) {
	extended, err := json.Marshal(e.Extended)
	if err != nil {
		return 0, fmt.Errorf("encode extended nutrients: %w", err)
	}
	res, err := s.db.ExecContext(ctx, `
INSERT INTO food_log(log_date, logged_at, name, brand, serving_size, serving_unit,
  calories, protein_g, carbs_g, fat_g, extended_json, source_id)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, e.LogDate, e.LoggedAt.UTC().Format(time.RFC3339Nano), e.Name, e.Brand,
		e.ServingSize, e.ServingUnit, e.Calories, e.Protein, e.Carbs, e.Fat,
		string(extended), e.SourceID)
	if err != nil {
		return 0, fmt.Errorf("insert diary entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("diary entry id: %w", err)
	}
	return id, nil
}

// ListByDate returns all entries for a date ordered by log timestamp.
func (s *FoodLogStore) ListByDate(ctx context.Context, date string) ([]domain.FoodLogEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, log_date, logged_at, name, brand, serving_size, serving_unit,
  calories, protein_g, carbs_g, fat_g, extended_json, source_id
FROM food_log
WHERE log_date = ?
ORDER BY logged_at ASC, id ASC
`, date)
	if err != nil {
		return nil, fmt.Errorf("list diary entries: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.FoodLogEntry, 0)
	for rows.Next() {
		var e domain.FoodLogEntry
		var loggedAt, extended string
		if err := rows.Scan(&e.ID, &e.LogDate, &loggedAt, &e.Name, &e.Brand,
			&e.ServingSize, &e.ServingUnit, &e.Calories, &e.Protein, &e.Carbs, &e.Fat,
			&extended, &e.SourceID); err != nil {
			return nil, fmt.Errorf("scan diary entry: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, loggedAt); err == nil {
			e.LoggedAt = ts
		}
		if err := json.Unmarshal([]byte(extended), &e.Extended); err != nil {
			return nil, fmt.Errorf("decode extended nutrients: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate diary entries: %w", err)
	}
	return entries, nil
}

// Delete removes one entry; domain.ErrEntryNotFound when the id is unknown.
func (s *FoodLogStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM food_log WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete diary entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete diary entry: %w", err)
	}
	if affected == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// Summary aggregates calories and macros for one date.
func (s *FoodLogStore) Summary(ctx context.Context, date string) (*domain.DaySummary, error) {
	summary := &domain.DaySummary{Date: date}
	err := s.db.QueryRowContext(ctx, `
SELECT COUNT(*), COALESCE(SUM(calories), 0), COALESCE(SUM(protein_g), 0),
  COALESCE(SUM(carbs_g), 0), COALESCE(SUM(fat_g), 0)
FROM food_log WHERE log_date = ?
`, date).Scan(&summary.Entries, &summary.Calories, &summary.Protein, &summary.Carbs, &summary.Fat)
	if err != nil {
		return nil, fmt.Errorf("day summary for %s: %w", date, err)
	}
	return summary, nil
}
