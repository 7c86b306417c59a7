package constants

// Activity types recorded on the dashboard feed. Points feed the weekly
// activity heatmap.
const (
	ActivityMCQAttempt    = "mcq_attempt"
	ActivityMainsSubmit   = "mains_submit"
	ActivityEditorialRead = "editorial_read"
	ActivityTaskDone      = "task_done"
	ActivityMockSubmit    = "mock_submit"
)

var ActivityPoints = map[string]int{
	ActivityMCQAttempt:    10,
	ActivityMainsSubmit:   15,
	ActivityEditorialRead: 5,
	ActivityTaskDone:      5,
	ActivityMockSubmit:    20,
}

// Mains papers
const (
	PaperGS1   = "GS1"
	PaperGS2   = "GS2"
	PaperGS3   = "GS3"
	PaperGS4   = "GS4"
	PaperEssay = "Essay"
)

var MainsPapers = []string{PaperGS1, PaperGS2, PaperGS3, PaperGS4, PaperEssay}

// Question difficulties
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Study mediums
const (
	MediumEnglish = "english"
	MediumHindi   = "hindi"
)
