// file: internals/seeds/videos/seed_video_subjects.go
package videos

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"sarathi_backend/internals/features/videos/model"
	helper "sarathi_backend/internals/helpers"
)

type VideoSubjectSeed struct {
	VideoSubjectName     string `json:"video_subject_name"`
	VideoSubjectPosition int    `json:"video_subject_position"`
}

func SeedVideoSubjectsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading video subject seed file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var seeds []VideoSubjectSeed
	if err := json.Unmarshal(content, &seeds); err != nil {
		log.Fatalf("❌ Failed to decode seed file: %v", err)
	}

	for _, seed := range seeds {
		slug := helper.GenerateSlug(seed.VideoSubjectName)

		var existing model.VideoSubjectModel
		if err := db.Where("video_subject_slug = ?", slug).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Video subject '%s' already seeded, skipping.", seed.VideoSubjectName)
			continue
		}

		row := model.VideoSubjectModel{
			VideoSubjectName:     seed.VideoSubjectName,
			VideoSubjectSlug:     slug,
			VideoSubjectPosition: seed.VideoSubjectPosition,
		}

		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Failed to insert video subject '%s': %v", seed.VideoSubjectName, err)
		} else {
			log.Printf("✅ Seeded video subject '%s'", seed.VideoSubjectName)
		}
	}
}
