package model

import "time"

// Role determines what a user may do. Players view rosters and their own
// scores; coaches and admins manage the club.
type Role string

const (
	RolePlayer Role = "player"
	RoleCoach  Role = "coach"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePlayer, RoleCoach, RoleAdmin:
		return true
	}
	return false
}

// CanManage reports whether the role is allowed to mutate club data.
func (r Role) CanManage() bool {
	return r == RoleCoach || r == RoleAdmin
}

// User is a club member: a player, a coach, or an admin.
//
// Players created through quick sign-in have neither email nor password and
// can only ever be looked up by name — they never hold credentials.
// The JSON tags double as the document-store encoding; the password digest
// and verify token are stripped by the response layer before anything leaves
// the API, so they must never be marshalled directly to a client.
type User struct {
	ID          int            `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string         `json:"name" gorm:"index;not null"`
	Email       *string        `json:"email,omitempty" gorm:"uniqueIndex"`
	Role        Role           `json:"role" gorm:"not null"`
	Password    string         `json:"password,omitempty"` // bcrypt digest, empty for credential-less players
	Team        string         `json:"team,omitempty" gorm:"index"`
	CoachCode   string         `json:"coach_code,omitempty" gorm:"index"`
	CoachID     int            `json:"coach_id,omitempty"`
	Verified    bool           `json:"verified,omitempty"`
	VerifyToken string         `json:"verify_token,omitempty" gorm:"index"`
	Prefs       map[string]any `json:"prefs,omitempty" gorm:"serializer:json"`
	CreatedAt   time.Time      `json:"created_at"`
}

// HasPassword reports whether the account can sign in with credentials.
func (u *User) HasPassword() bool {
	return u.Password != ""
}

// PlayerFilter narrows ListPlayers results. Team matches exactly; Name is a
// case-insensitive substring match.
type PlayerFilter struct {
	Team string
	Name string
}
