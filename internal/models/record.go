package models

// Record is one player's receiving line: total yards, receptions and
// touchdowns, plus the derived yards-per-reception figure.
type Record struct {
	ID           int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"size:128;not null;check:name <> ''" json:"name"`
	Yardage      int     `gorm:"not null;check:yardage >= 0" json:"yardage"`
	YardsPerUnit float64 `gorm:"not null" json:"yardsPerUnit"`
	UnitCount    int     `gorm:"not null;check:unit_count >= 0" json:"unitCount"`
	ScoreCount   int     `gorm:"not null;check:score_count >= 0" json:"scoreCount"`
}
