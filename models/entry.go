package models

import "time"

// Entry is a single journal record, text or voice, authored by a user.
type Entry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Mood        *string   `gorm:"type:varchar(50)" json:"mood"`
	Intensity   *int      `json:"intensity"`
	EntryType   string    `gorm:"type:varchar(20)" json:"entry_type"` // "text" or "voice"
	CreatedAt   time.Time `json:"created_at"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	IsAnonymous bool      `gorm:"default:false" json:"is_anonymous"`
}

// ToRecord returns the entry as a flat response record with created_at in
// ISO-8601. Unset mood and intensity serialize as null.
func (e *Entry) ToRecord() map[string]interface{} {
	var mood interface{}
	if e.Mood != nil {
		mood = *e.Mood
	}
	var intensity interface{}
	if e.Intensity != nil {
		intensity = *e.Intensity
	}

	return map[string]interface{}{
		"id":           e.ID,
		"content":      e.Content,
		"mood":         mood,
		"intensity":    intensity,
		"entry_type":   e.EntryType,
		"created_at":   e.CreatedAt.Format(time.RFC3339),
		"user_id":      e.UserID,
		"is_anonymous": e.IsAnonymous,
	}
}
