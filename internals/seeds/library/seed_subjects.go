// file: internals/seeds/library/seed_subjects.go
package library

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"sarathi_backend/internals/features/library/model"
	helper "sarathi_backend/internals/helpers"
)

type SubjectSeed struct {
	SubjectName     string  `json:"subject_name"`
	SubjectPaper    string  `json:"subject_paper"`
	SubjectIcon     *string `json:"subject_icon"`
	SubjectPosition int     `json:"subject_position"`
}

func SeedSubjectsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading subject seed file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var seeds []SubjectSeed
	if err := json.Unmarshal(content, &seeds); err != nil {
		log.Fatalf("❌ Failed to decode seed file: %v", err)
	}

	for _, seed := range seeds {
		slug := helper.GenerateSlug(seed.SubjectName)

		var existing model.SubjectModel
		if err := db.Where("subject_slug = ?", slug).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Subject '%s' already seeded, skipping.", seed.SubjectName)
			continue
		}

		subject := model.SubjectModel{
			SubjectName:     seed.SubjectName,
			SubjectSlug:     slug,
			SubjectPaper:    model.SubjectPaper(seed.SubjectPaper),
			SubjectIcon:     seed.SubjectIcon,
			SubjectPosition: seed.SubjectPosition,
		}

		if err := db.Create(&subject).Error; err != nil {
			log.Printf("❌ Failed to insert subject '%s': %v", seed.SubjectName, err)
		} else {
			log.Printf("✅ Seeded subject '%s'", seed.SubjectName)
		}
	}
}
