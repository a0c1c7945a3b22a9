package domain

// StudentProfile holds the factual part of a report card
type StudentProfile struct {
	Name                string   `json:"name,omitempty"`
	Age                 string   `json:"age,omitempty"`
	EducationLevel      string   `json:"educationLevel,omitempty"`
	Institution         string   `json:"institution,omitempty"`
	FavoriteSubjects    []string `json:"favoriteSubjects,omitempty"`
	ChallengingSubjects []string `json:"challengingSubjects,omitempty"`
}

// LearningProfile describes how the student prefers to learn
type LearningProfile struct {
	PreferredStyle   string `json:"preferredStyle,omitempty"`
	StudyPreferences string `json:"studyPreferences,omitempty"`
	IdealEnvironment string `json:"idealEnvironment,omitempty"`
	TimeManagement   string `json:"timeManagement,omitempty"`
}

// Goals captures short and long term aspirations
type Goals struct {
	ShortTerm        string `json:"shortTerm,omitempty"`
	LongTerm         string `json:"longTerm,omitempty"`
	CareerAspiration string `json:"careerAspiration,omitempty"`
}

// ReportCard is the structured profile derived from a full interview
// transcript. All fields except OverallSummary may be empty when the
// transcript did not cover them.
type ReportCard struct {
	StudentProfile      *StudentProfile  `json:"studentProfile"`
	PersonalityInsights []string         `json:"personalityInsights"`
	LearningProfile     *LearningProfile `json:"learningProfile"`
	Strengths           []string         `json:"strengths"`
	GrowthAreas         []string         `json:"growthAreas"`
	Interests           []string         `json:"interests"`
	Goals               *Goals           `json:"goals"`
	Recommendations     []string         `json:"recommendations"`
	OverallSummary      string           `json:"overallSummary"`
}

// EmptyReportCard returns the canonical card for a user with no transcript
func EmptyReportCard() *ReportCard {
	return &ReportCard{
		PersonalityInsights: []string{},
		Strengths:           []string{},
		GrowthAreas:         []string{},
		Interests:           []string{},
		Recommendations:     []string{},
		OverallSummary:      "No conversation history available.",
	}
}
