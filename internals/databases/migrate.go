// file: internals/databases/migrate.go
package database

import (
	"log"

	commerceModel "sarathi_backend/internals/features/commerce/model"
	mainsModel "sarathi_backend/internals/features/dailies/mains/model"
	mcqModel "sarathi_backend/internals/features/dailies/mcq/model"
	activityModel "sarathi_backend/internals/features/dashboard/activity/model"
	editorialModel "sarathi_backend/internals/features/editorials/model"
	libraryModel "sarathi_backend/internals/features/library/model"
	mockModel "sarathi_backend/internals/features/mocktests/model"
	planModel "sarathi_backend/internals/features/studyplan/model"
	userModel "sarathi_backend/internals/features/users/user/model"
	videoModel "sarathi_backend/internals/features/videos/model"
)

// AutoMigrate syncs the schema for fresh environments. Production schema
// changes go through SQL migrations; this is the DB_AUTOMIGRATE=true path
// for dev databases and CI.
func AutoMigrate() {
	log.Println("🔧 Running AutoMigrate...")

	err := DB.AutoMigrate(
		// identity mirror
		&userModel.UserModel{},

		// daily MCQ
		&mcqModel.DailyMCQModel{},
		&mcqModel.MCQQuestionModel{},
		&mcqModel.MCQAttemptModel{},
		&mcqModel.MCQResponseModel{},

		// daily answer writing
		&mainsModel.MainsQuestionModel{},
		&mainsModel.MainsAttemptModel{},
		&mainsModel.MainsEvaluationModel{},

		// editorials
		&editorialModel.EditorialModel{},
		&editorialModel.EditorialProgressModel{},
		&editorialModel.EditorialBookmarkModel{},

		// mock tests
		&mockModel.MockTestModel{},
		&mockModel.MockTestQuestionModel{},
		&mockModel.MockTestAttemptModel{},

		// study planner
		&planModel.StudyPlanTaskModel{},
		&planModel.StudyStreakModel{},
		&planModel.WeeklyGoalModel{},
		&planModel.SyllabusCoverageModel{},

		// library
		&libraryModel.SubjectModel{},
		&libraryModel.ChapterModel{},
		&libraryModel.StudyMaterialModel{},

		// video catalog
		&videoModel.VideoSubjectModel{},
		&videoModel.VideoModel{},

		// pricing + mentorship
		&commerceModel.PricingPlanModel{},
		&commerceModel.TestimonialModel{},
		&commerceModel.MentorBookingModel{},
		&commerceModel.MentorQuestionModel{},

		// dashboard
		&activityModel.UserActivityModel{},
		&activityModel.UserStreakModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	log.Println("✅ AutoMigrate done.")
}
