package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case []User:
		for i, u := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printUser(u)
		}
	case AuthResult:
		o.printAuthResult(v)
	case []Score:
		o.printScores(v)
	case IDResult:
		fmt.Printf("ID: %d\n", v.ID)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Email     *string        `json:"email,omitempty"`
	Role      string         `json:"role"`
	Team      string         `json:"team,omitempty"`
	CoachCode string         `json:"coach_code,omitempty"`
	Prefs     map[string]any `json:"prefs,omitempty"`
}

// AuthResult combines user and token
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// MeResult wraps the /auth/me response
type MeResult struct {
	User User `json:"user"`
}

// Score response type
type Score struct {
	ID         int    `json:"id"`
	PlayerID   int    `json:"player_id"`
	Date       string `json:"date,omitempty"`
	LocationID int    `json:"location_id,omitempty"`
	Scores     []int  `json:"scores"`
	Avg        int    `json:"avg"`
	TotalWood  int    `json:"totalWood"`
}

// IDResult reports a created record's id
type IDResult struct {
	ID int `json:"id"`
}

// HealthResult reports server liveness
type HealthResult struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (#%d) - %s\n", u.Name, u.ID, u.Role)
	if u.Email != nil {
		fmt.Printf("Email: %s\n", *u.Email)
	}
	if u.Team != "" {
		fmt.Printf("Team: %s\n", u.Team)
	}
	if u.CoachCode != "" {
		fmt.Printf("Coach Code: %s\n", u.CoachCode)
	}
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.Token)
}

func (o *Output) printScores(scores []Score) {
	for _, s := range scores {
		woods := make([]string, 0, len(s.Scores))
		for _, w := range s.Scores {
			woods = append(woods, fmt.Sprintf("%d", w))
		}
		fmt.Printf("#%d player %d %s: [%s] avg %d total %d\n",
			s.ID, s.PlayerID, s.Date, strings.Join(woods, " "), s.Avg, s.TotalWood)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
	fmt.Printf("Backend: %s\n", h.Backend)
}
