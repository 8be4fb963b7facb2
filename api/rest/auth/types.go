package auth

// ConfigResponse is the public auth configuration handed to the frontend.
// The anon key is designed to be public; nothing privileged is exposed.
type ConfigResponse struct {
	Configured      bool   `json:"configured"`
	Message         string `json:"message,omitempty"`
	SupabaseURL     string `json:"supabaseUrl,omitempty"`
	SupabaseAnonKey string `json:"supabaseAnonKey,omitempty"`
}

// UpdateProfileRequest contains the editable profile fields
type UpdateProfileRequest struct {
	DisplayName string `json:"displayName"`
}
