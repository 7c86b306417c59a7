// file: internals/seeds/commerce/seed_testimonials.go
package commerce

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"sarathi_backend/internals/features/commerce/model"
)

type TestimonialSeed struct {
	TestimonialAuthorName  string  `json:"testimonial_author_name"`
	TestimonialAuthorTitle *string `json:"testimonial_author_title"`
	TestimonialQuote       string  `json:"testimonial_quote"`
	TestimonialRating      int16   `json:"testimonial_rating"`
	TestimonialPosition    int     `json:"testimonial_position"`
}

func SeedTestimonialsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading testimonial seed file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var seeds []TestimonialSeed
	if err := json.Unmarshal(content, &seeds); err != nil {
		log.Fatalf("❌ Failed to decode seed file: %v", err)
	}

	for _, seed := range seeds {
		var existing model.TestimonialModel
		if err := db.Where("testimonial_author_name = ?", seed.TestimonialAuthorName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Testimonial by '%s' already seeded, skipping.", seed.TestimonialAuthorName)
			continue
		}

		row := model.TestimonialModel{
			TestimonialAuthorName:  seed.TestimonialAuthorName,
			TestimonialAuthorTitle: seed.TestimonialAuthorTitle,
			TestimonialQuote:       seed.TestimonialQuote,
			TestimonialRating:      seed.TestimonialRating,
			TestimonialIsPublished: true,
			TestimonialPosition:    seed.TestimonialPosition,
		}

		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Failed to insert testimonial by '%s': %v", seed.TestimonialAuthorName, err)
		} else {
			log.Printf("✅ Seeded testimonial by '%s'", seed.TestimonialAuthorName)
		}
	}
}
