package seeds

import (
	"gorm.io/gorm"

	commerce "sarathi_backend/internals/seeds/commerce"
	library "sarathi_backend/internals/seeds/library"
	videos "sarathi_backend/internals/seeds/videos"
)

// RunAllSeeds loads the baseline catalog rows a fresh database needs:
// library subjects, video subjects, pricing plans, and testimonials.
// Every seeder skips rows that already exist, so running it twice is safe.
func RunAllSeeds(db *gorm.DB) {

	//* Library
	library.SeedSubjectsFromJSON(db, "internals/seeds/library/data_subjects.json")

	//* Videos
	videos.SeedVideoSubjectsFromJSON(db, "internals/seeds/videos/data_video_subjects.json")

	//* Commerce
	commerce.SeedPlansFromJSON(db, "internals/seeds/commerce/data_plans.json")
	commerce.SeedTestimonialsFromJSON(db, "internals/seeds/commerce/data_testimonials.json")
}
