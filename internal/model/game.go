package model

// GamePlayer is a point-in-time snapshot of a participant. It deliberately
// does not reference the users table: editing a user later must not rewrite
// the history of a played game.
type GamePlayer struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Game is a club match day at a location with its participant snapshots.
type Game struct {
	ID         int          `json:"id" gorm:"primaryKey;autoIncrement"`
	Title      string       `json:"title,omitempty"`
	LocationID int          `json:"location_id,omitempty"`
	Date       string       `json:"date,omitempty" gorm:"index"`
	Players    []GamePlayer `json:"players" gorm:"serializer:json"`
	CreatedBy  int          `json:"created_by,omitempty"`
}
