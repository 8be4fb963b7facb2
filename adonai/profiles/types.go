package profiles

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles profile database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a user profile row, created by Supabase on signup
type Profile struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	DisplayName        string    `json:"displayName"`
	AvatarURL          string    `json:"avatarUrl"`
	Tier               string    `json:"tier"`
	DailyQuestionCount int       `json:"dailyQuestionCount"`
	LastQuestionDate   string    `json:"lastQuestionDate"`
	CreatedAt          time.Time `json:"createdAt"`
}

// Counter is the quota-relevant slice of a profile. Date is the calendar
// date ("YYYY-MM-DD") the count was recorded on, empty when never set.
type Counter struct {
	Tier  string
	Count int
	Date  string
}
