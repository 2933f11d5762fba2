package models

import "time"

// CheatType is one entry of the cheat-type registry: a stable id plus the
// display metadata and validation pattern for codes of that type.
type CheatType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Pattern is a regular expression matched against the full code text
	// with spaces stripped.
	Pattern string `json:"pattern"`
	Example string `json:"example"`
	// FormatHint is the canonical error message shown when a code does not
	// match Pattern. Empty falls back to "<Name> codes must match the
	// required format".
	FormatHint string `json:"format_hint,omitempty"`
}

// CheatCode is a single cheat code owned by a rom. Rows are created and
// updated only through the sync engine's write path so the flat file stays
// current.
type CheatCode struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	RomID       int       `gorm:"index;not null" json:"rom_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Code        string    `gorm:"size:255;not null" json:"code"`
	Description string    `gorm:"type:text" json:"description"`
	Type        string    `gorm:"size:32;not null;default:raw" json:"type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName matches the original schema.
func (CheatCode) TableName() string {
	return "cheat_codes"
}

// CheatFile is the metadata row for an uploaded cheat-file blob. The row
// and the on-disk blob are written together and deleted together; there is
// no reconciliation.
type CheatFile struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	RomID         int       `gorm:"index;not null" json:"rom_id"`
	FileName      string    `gorm:"size:255;not null" json:"file_name"`
	FilePath      string    `gorm:"size:1000;not null" json:"file_path"`
	FileSizeBytes int64     `gorm:"not null;default:0" json:"file_size_bytes"`
	UploadedAt    time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName matches the original schema.
func (CheatFile) TableName() string {
	return "cheat_files"
}

// Input is the caller-supplied shape of a cheat code before validation
// and sanitization.
type Input struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Type        string `json:"type"`
}
