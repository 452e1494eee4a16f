package tags

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"tanyaku_backend/internals/features/qna/tags/model"
)

type TagSeed struct {
	TagName string `json:"tag_name"`
}

// SeedTagsFromJSON memasukkan tag awal, lewati yang sudah ada.
func SeedTagsFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("gagal membaca file JSON: %w", err)
	}

	var seeds []TagSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		return fmt.Errorf("gagal decode JSON: %w", err)
	}

	for _, seed := range seeds {
		var existing model.TagModel
		if err := db.Where("tag_name = ?", seed.TagName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Tag '%s' sudah ada, lewati...", seed.TagName)
			continue
		}

		tag := model.TagModel{TagName: seed.TagName}
		if err := db.Create(&tag).Error; err != nil {
			log.Printf("❌ Gagal insert '%s': %v", seed.TagName, err)
		} else {
			log.Printf("✅ Berhasil insert '%s'", seed.TagName)
		}
	}

	return nil
}
