package model

import "time"

// WoodsPerSession is the number of recorded frame totals in one session.
const WoodsPerSession = 3

// Score is one player's session record: exactly three woods plus fields
// derived from them. Avg and TotalWood are computed once when the record is
// written — readers trust the stored values and never re-derive them.
//
// The avg and totalWood JSON spellings are part of the wire format consumed
// by the front-end.
type Score struct {
	ID            int       `json:"id" gorm:"primaryKey;autoIncrement"`
	PlayerID      int       `json:"player_id" gorm:"index;not null"`
	Date          string    `json:"date,omitempty" gorm:"index"`
	LocationID    int       `json:"location_id,omitempty" gorm:"index"`
	Level         string    `json:"level,omitempty"`
	Opponent      string    `json:"opponent,omitempty"`
	Scores        []int     `json:"scores" gorm:"serializer:json"`
	Avg           int       `json:"avg"`
	TotalWood     int       `json:"totalWood" gorm:"column:total_wood"`
	Spares        int       `json:"spares,omitempty"`
	Strikes       int       `json:"strikes,omitempty"`
	SubstituteFor string    `json:"substitute_for,omitempty"`
	CreatedBy     int       `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ScoreFilter narrows ListScores results. Zero values match everything.
type ScoreFilter struct {
	PlayerID   int
	LocationID int
}
