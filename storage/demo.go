package storage

import (
	"time"

	"github.com/candidate-compare/backend/models"
)

// SetDemoJD loads a canned JD so the matching flow can be exercised without
// calling the parser.
func (s *MemoryStore) SetDemoJD() {
	s.SetJD(&models.JobDescription{
		ID:       "jd_demo",
		Title:    "Senior Frontend Developer",
		Company:  "TechCorp",
		Location: "Auckland, NZ",
		WorkType: "full-time",
		Experience: &models.ExperienceRequirement{
			Min:         3,
			Max:         7,
			Description: "3-7 years frontend development experience",
		},
		Education: "Bachelor's degree or equivalent",
		Skills:    []string{"React", "TypeScript", "Node.js", "CSS", "JavaScript"},
		Responsibilities: models.FlexibleStringSlice{
			"Build responsive web applications",
			"Collaborate with design team",
			"Optimize application performance",
		},
		Requirements: models.FlexibleStringSlice{
			"3+ years React experience",
			"Strong TypeScript knowledge",
			"Experience with modern build tools",
		},
		Salary: &models.Salary{
			Min:      80000,
			Max:      120000,
			Currency: "NZD",
		},
		Benefits:     models.FlexibleStringSlice{"Health insurance", "Remote work options"},
		Description:  "Join our team as a Senior Frontend Developer",
		OriginalText: "We are hiring a Senior Frontend Developer...",
		ParsedAt:     time.Now().UTC(),
	})
}
