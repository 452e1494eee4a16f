package seeds

import (
	"gorm.io/gorm"

	tags "tanyaku_backend/internals/seeds/tags"
)

// Run menjalankan semua seeder sekali saat start (RUN_SEEDS=true).
func Run(db *gorm.DB) error {
	//* Tag
	if err := tags.SeedTagsFromJSON(db, "internals/seeds/tags/data_tags.json"); err != nil {
		return err
	}

	return nil
}
