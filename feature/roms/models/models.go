package models

import "time"

// Rom is a catalogued game. Cheat codes and cheat files hang off it and
// are removed when it is deleted.
type Rom struct {
	ID     int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"size:255;not null" json:"name"`
	FsName string `gorm:"size:255;not null" json:"fs_name"`
	// FsResourcesPath is the rom's resources sub-path under the library's
	// resources base directory.
	FsResourcesPath string    `gorm:"size:1000;not null" json:"fs_resources_path"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName matches the original schema.
func (Rom) TableName() string {
	return "roms"
}
