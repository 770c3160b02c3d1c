package services

import (
	"math/rand"
	"path"
	"strings"
	"time"
)

var allowedResumeTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// AllowedResumeType reports whether a resume upload has an accepted MIME type.
func AllowedResumeType(contentType string) bool {
	ct, _, _ := strings.Cut(contentType, ";")
	_, ok := allowedResumeTypes[strings.TrimSpace(strings.ToLower(ct))]
	return ok
}

type ResumeUpload struct {
	Success  bool   `json:"success"`
	FileURL  string `json:"fileUrl"`
	Filename string `json:"filename"`
}

type KeywordOptimization struct {
	MissingKeywords []string `json:"missingKeywords"`
	PresentKeywords []string `json:"presentKeywords"`
	Recommendation  string   `json:"recommendation"`
}

type LinkedInOptimization struct {
	ProfileCompleteness int      `json:"profileCompleteness"`
	Recommendations     []string `json:"recommendations"`
}

type ProfileAnalysis struct {
	ResumeScore          int                  `json:"resumeScore"`
	AIReadiness          int                  `json:"aiReadiness"`
	SkillGaps            []string             `json:"skillGaps"`
	Strengths            []string             `json:"strengths"`
	CareerSuggestions    []string             `json:"careerSuggestions"`
	KeywordOptimization  KeywordOptimization  `json:"keywordOptimization"`
	LinkedInOptimization LinkedInOptimization `json:"linkedinOptimization"`
	AnalyzedAt           time.Time            `json:"analyzedAt"`
}

type AnalysisResult struct {
	Success  bool            `json:"success"`
	Analysis ProfileAnalysis `json:"analysis"`
}

// ProfileService returns resume upload locations and a canned profile analysis.
type ProfileService struct {
	intn func(n int) int
	now  func() time.Time
}

func NewProfileService() *ProfileService {
	return &ProfileService{intn: rand.Intn, now: time.Now}
}

func (s *ProfileService) UploadResult(userID, filename string) ResumeUpload {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	return ResumeUpload{
		Success:  true,
		FileURL:  "/uploads/resumes/" + userID + "/" + name,
		Filename: name,
	}
}

// Analyze scores a profile. Scores are randomized within fixed bands.
func (s *ProfileService) Analyze(resumeURL, linkedinURL string) (*AnalysisResult, error) {
	if strings.TrimSpace(resumeURL) == "" && strings.TrimSpace(linkedinURL) == "" {
		return nil, invalid("At least one of resume or LinkedIn URL is required")
	}
	return &AnalysisResult{
		Success: true,
		Analysis: ProfileAnalysis{
			ResumeScore: s.between(60, 90),
			AIReadiness: s.between(55, 85),
			SkillGaps: []string{
				"Python Programming",
				"Machine Learning Fundamentals",
				"Data Analysis & Visualization",
				"Cloud Computing (AWS/Azure)",
				"Project Management Tools",
			},
			Strengths: []string{
				"Strong communication skills evident in descriptions",
				"Consistent work history with progressive responsibilities",
				"Good mix of technical and soft skills",
				"Clear achievement statements with quantifiable results",
			},
			CareerSuggestions: []string{
				"Consider adding specific AI/ML projects to demonstrate hands-on experience",
				"Quantify more achievements with metrics (e.g., \"30% increase in efficiency\")",
				"Optimize LinkedIn headline to include target role keywords",
				"Add relevant certifications (e.g., AWS, Google Cloud, Coursera AI courses)",
				"Improve resume formatting for better ATS compatibility",
				"Network with professionals in your target industry",
				"Update skills section with current in-demand technologies",
			},
			KeywordOptimization: KeywordOptimization{
				MissingKeywords: []string{"AI", "Machine Learning", "Data Science", "Python", "SQL"},
				PresentKeywords: []string{"Project Management", "Team Leadership", "Communication"},
				Recommendation:  "Add more technical keywords relevant to AI-driven roles",
			},
			LinkedInOptimization: LinkedInOptimization{
				ProfileCompleteness: s.between(70, 95),
				Recommendations: []string{
					"Add a professional profile photo if missing",
					"Write a compelling headline (beyond job title)",
					"Expand \"About\" section with career story",
					"Request recommendations from colleagues",
					"Share industry-relevant content regularly",
				},
			},
			AnalyzedAt: s.now().UTC(),
		},
	}, nil
}

// between returns an int in [lo, hi).
func (s *ProfileService) between(lo, hi int) int {
	return lo + s.intn(hi-lo)
}
