package conversations

// UpdateRequest contains the editable conversation fields
type UpdateRequest struct {
	Title string `json:"title"`
}
