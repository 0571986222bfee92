package request

// SignInRequest is the request body for sign-in. Email plus password takes
// precedence; a bare name falls back to passwordless quick sign-in.
type SignInRequest struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name,omitempty"`
}

// CoachCodeSignInRequest is the request body for coach-code guest sign-in.
// The camelCase spelling is what the front-end sends.
type CoachCodeSignInRequest struct {
	CoachCode string `json:"coachCode"`
}

// SignupCoachRequest is the request body for coach self-registration
type SignupCoachRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdatePrefsRequest is the request body for replacing the caller's prefs
type UpdatePrefsRequest struct {
	Prefs map[string]any `json:"prefs"`
}

// CreateUserRequest is the request body for provisioning a roster entry
type CreateUserRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	Role     string  `json:"role,omitempty"`
	Team     string  `json:"team,omitempty"`
	Password string  `json:"password,omitempty"`
}

// UpdateUserRequest is the request body for editing a roster entry.
// Absent fields leave the stored value alone.
type UpdateUserRequest struct {
	Name     string  `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     string  `json:"role,omitempty"`
	Team     string  `json:"team,omitempty"`
	Password string  `json:"password,omitempty"`
}

// CreateLocationRequest is the request body for recording a venue
type CreateLocationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// GamePlayerEntry is one participant snapshot in a game body
type GamePlayerEntry struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// CreateGameRequest is the request body for recording a match day
type CreateGameRequest struct {
	Title      string            `json:"title,omitempty"`
	LocationID int               `json:"location_id,omitempty"`
	Date       string            `json:"date,omitempty"`
	Players    []GamePlayerEntry `json:"players,omitempty"`
}

// UpdateGameRequest is the request body for editing a game
type UpdateGameRequest struct {
	Title      string            `json:"title,omitempty"`
	LocationID int               `json:"location_id,omitempty"`
	Date       string            `json:"date,omitempty"`
	Players    []GamePlayerEntry `json:"players,omitempty"`
}

// CreateScoreRequest is the request body for recording a session
type CreateScoreRequest struct {
	PlayerID      int    `json:"player_id"`
	Date          string `json:"date,omitempty"`
	LocationID    int    `json:"location_id,omitempty"`
	Level         string `json:"level,omitempty"`
	Opponent      string `json:"opponent,omitempty"`
	Scores        []int  `json:"scores"`
	Spares        int    `json:"spares,omitempty"`
	Strikes       int    `json:"strikes,omitempty"`
	SubstituteFor string `json:"substitute_for,omitempty"`
}

// UpdateScoreRequest is the request body for editing a session.
// Absent fields leave the stored value alone; when scores is present the
// derived fields are recomputed.
type UpdateScoreRequest struct {
	Date          string `json:"date,omitempty"`
	LocationID    int    `json:"location_id,omitempty"`
	Level         string `json:"level,omitempty"`
	Opponent      string `json:"opponent,omitempty"`
	Scores        []int  `json:"scores,omitempty"`
	Spares        int    `json:"spares,omitempty"`
	Strikes       int    `json:"strikes,omitempty"`
	SubstituteFor string `json:"substitute_for,omitempty"`
}
