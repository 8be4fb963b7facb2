package conversations

const (
	queryCreate = `
		INSERT INTO conversations (user_id, title)
		VALUES ($1, $2)
		RETURNING id, user_id, title, created_at, updated_at
	`

	queryList = `
		SELECT id, user_id, title, created_at, updated_at
		FROM conversations
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`

	queryGet = `
		SELECT id, user_id, title, created_at, updated_at
		FROM conversations
		WHERE id = $1 AND user_id = $2
	`

	queryUpdateTitle = `
		UPDATE conversations
		SET title = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`

	queryDelete = `
		DELETE FROM conversations
		WHERE id = $1 AND user_id = $2
	`

	queryTouch = `
		UPDATE conversations
		SET updated_at = NOW()
		WHERE id = $1
	`

	queryMessages = `
		SELECT id, role, content, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC
	`

	queryAppendMessage = `
		INSERT INTO messages (conversation_id, role, content)
		VALUES ($1, $2, $3)
	`

	// newest N turns, handed back oldest-first
	queryHistory = `
		SELECT role, content
		FROM (
			SELECT role, content, created_at
			FROM messages
			WHERE conversation_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		) recent
		ORDER BY created_at ASC
	`
)
