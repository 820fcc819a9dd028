// Package record provides the store accessor for player records.
package record

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/zulandar/yardline/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned by Get when no record has the requested id.
var ErrNotFound = errors.New("record: not found")

// Fields holds the caller-editable columns of a record. YardsPerUnit is
// not among them: it is derived from Yardage and UnitCount on every write.
type Fields struct {
	Name       string
	Yardage    int
	UnitCount  int
	ScoreCount int
}

// YardsPerUnit returns yardage/unitCount rounded to one decimal place, or 0
// when unitCount is 0.
func YardsPerUnit(yardage, unitCount int) float64 {
	if unitCount == 0 {
		return 0
	}
	return math.Round(float64(yardage)/float64(unitCount)*10) / 10
}

// List returns every record in id order.
func List(ctx context.Context, db *gorm.DB) ([]models.Record, error) {
	var recs []models.Record
	if err := db.WithContext(ctx).Order("id ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("record: list: %w", err)
	}
	return recs, nil
}

// Get retrieves a record by id.
func Get(ctx context.Context, db *gorm.DB, id int64) (*models.Record, error) {
	var rec models.Record
	if err := db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("record: get %d: %w", id, err)
	}
	return &rec, nil
}

// Insert stores a new record and returns it with its assigned id. Beyond
// the store's own constraints nothing is validated here.
func Insert(ctx context.Context, db *gorm.DB, f Fields) (*models.Record, error) {
	rec := models.Record{
		Name:         f.Name,
		Yardage:      f.Yardage,
		YardsPerUnit: YardsPerUnit(f.Yardage, f.UnitCount),
		UnitCount:    f.UnitCount,
		ScoreCount:   f.ScoreCount,
	}
	if err := db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("record: insert: %w", err)
	}
	return &rec, nil
}

// Update replaces every non-id column of the record with the given id.
// Updating an id that does not exist is a no-op.
func Update(ctx context.Context, db *gorm.DB, id int64, f Fields) error {
	updates := map[string]interface{}{
		"name":           f.Name,
		"yardage":        f.Yardage,
		"yards_per_unit": YardsPerUnit(f.Yardage, f.UnitCount),
		"unit_count":     f.UnitCount,
		"score_count":    f.ScoreCount,
	}
	if err := db.WithContext(ctx).Model(&models.Record{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return fmt.Errorf("record: update %d: %w", id, err)
	}
	return nil
}

// Delete removes the record with the given id. Deleting an id that does
// not exist is a no-op.
func Delete(ctx context.Context, db *gorm.DB, id int64) error {
	if err := db.WithContext(ctx).Where("id = ?", id).Delete(&models.Record{}).Error; err != nil {
		return fmt.Errorf("record: delete %d: %w", id, err)
	}
	return nil
}
