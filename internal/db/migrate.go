package db

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// Migrate tworzy/aktualizuje schemat bazy.
func (h *Handle) Migrate() error {
	if err := h.DB.AutoMigrate(
		&FeedFile{},
		&ExportRun{},
	); err != nil {
		return fmt.Errorf("AutoMigrate error: %w", err)
	}
	return nil
}

// RegisterFeed zapisuje plik feedu w rejestrze; zwraca true jeśli identyczny
// plik (po SHA) był już widziany wcześniej.
func (h *Handle) RegisterFeed(path, supplier string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	sum, err := FileSHA256(path)
	if err != nil {
		return false, err
	}

	var existing FeedFile
	if err := h.DB.Where("sha256 = ?", sum).Take(&existing).Error; err == nil {
		return true, nil
	}

	rec := FeedFile{
		Filename:  fi.Name(),
		Supplier:  supplier,
		SHA256:    sum,
		SizeBytes: fi.Size(),
	}
	if err := h.DB.Create(&rec).Error; err != nil {
		return false, err
	}
	return false, nil
}

func FileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	hash := sha256.New()
	if _, err := io.Copy(hash, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
