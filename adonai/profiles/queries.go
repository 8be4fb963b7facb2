package profiles

const (
	queryGet = `
		SELECT id, email, COALESCE(display_name, ''), COALESCE(avatar_url, ''), tier,
		       daily_question_count, COALESCE(to_char(last_question_date, 'YYYY-MM-DD'), ''), created_at
		FROM profiles
		WHERE id = $1
	`

	queryUpdateDisplayName = `
		UPDATE profiles
		SET display_name = $1
		WHERE id = $2
	`

	queryGetCounter = `
		SELECT tier, daily_question_count, COALESCE(to_char(last_question_date, 'YYYY-MM-DD'), '')
		FROM profiles
		WHERE id = $1
	`

	querySetCounter = `
		UPDATE profiles
		SET daily_question_count = $1, last_question_date = $2
		WHERE id = $3
	`
)
