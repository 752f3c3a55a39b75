// internal/db/models.go
package db

import "time"

// feed_files — rejestr wczytanych feedów (dedup po SHA)
type FeedFile struct {
	FeedID     uint   `gorm:"primaryKey;column:feed_id"`
	Filename   string `gorm:"index"`
	Supplier   string `gorm:"index"`
	SHA256     string `gorm:"uniqueIndex"`
	SizeBytes  int64
	ReceivedAt time.Time `gorm:"autoCreateTime"`
}

// export_runs — podsumowanie każdego przebiegu eksportu
type ExportRun struct {
	RunID          uint `gorm:"primaryKey;column:run_id"`
	RowsB2BSport   int
	RowsKinghoff   int
	RowsTotal      int
	TranslateFails int
	DurationMS     int64
	OutputPath     string
	Status         string    `gorm:"index"` // done / empty / error
	LastError      string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}
