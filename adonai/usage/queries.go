package usage

const (
	queryCount = `
		SELECT question_count
		FROM anonymous_usage
		WHERE ip_address = $1 AND usage_date = $2
	`

	queryFind = `
		SELECT id, question_count
		FROM anonymous_usage
		WHERE ip_address = $1 AND usage_date = $2
	`

	queryUpdate = `
		UPDATE anonymous_usage
		SET question_count = $1
		WHERE id = $2
	`

	queryInsert = `
		INSERT INTO anonymous_usage (ip_address, usage_date, question_count)
		VALUES ($1, $2, 1)
	`
)
