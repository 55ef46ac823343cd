package models

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HasRequiredFields reports whether username, email and password are all present.
func (r *CreateUserRequest) HasRequiredFields() bool {
	return r.Username != "" && r.Email != "" && r.Password != ""
}

// CreateEntryRequest is the entry creation payload. Content is a pointer so
// a missing key can be told apart from an empty string.
type CreateEntryRequest struct {
	Content     *string `json:"content"`
	Mood        *string `json:"mood"`
	Intensity   *int    `json:"intensity"`
	EntryType   *string `json:"entry_type"`
	UserID      *uint   `json:"user_id"`
	IsAnonymous *bool   `json:"is_anonymous"`
}

// ToEntry builds an Entry from the request, filling in defaults for the
// optional fields: entry_type "text", user_id 1, is_anonymous false.
func (r *CreateEntryRequest) ToEntry() Entry {
	entry := Entry{
		Content:   *r.Content,
		Mood:      r.Mood,
		Intensity: r.Intensity,
		EntryType: "text",
		UserID:    1,
	}
	if r.EntryType != nil {
		entry.EntryType = *r.EntryType
	}
	if r.UserID != nil {
		entry.UserID = *r.UserID
	}
	if r.IsAnonymous != nil {
		entry.IsAnonymous = *r.IsAnonymous
	}
	return entry
}

// UpdateEntryRequest is the partial update payload. Nil fields are left
// unchanged. entry_type and user_id are immutable after creation and have no
// place here.
type UpdateEntryRequest struct {
	Content     *string `json:"content"`
	Mood        *string `json:"mood"`
	Intensity   *int    `json:"intensity"`
	IsAnonymous *bool   `json:"is_anonymous"`
}

// ApplyTo overwrites the entry's fields with the ones present in the request.
func (r *UpdateEntryRequest) ApplyTo(entry *Entry) {
	if r.Content != nil {
		entry.Content = *r.Content
	}
	if r.Mood != nil {
		entry.Mood = r.Mood
	}
	if r.Intensity != nil {
		entry.Intensity = r.Intensity
	}
	if r.IsAnonymous != nil {
		entry.IsAnonymous = *r.IsAnonymous
	}
}
