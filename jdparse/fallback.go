package jdparse

import (
	"regexp"
	"strings"

	"github.com/candidate-compare/backend/models"
)

// companyPatterns extract a company name from a title line like
// "Frontend Developer at TechCorp" or "Engineer @ Acme - Auckland"
var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s+at\s+(.+?)(?:\s*[-|]|\s*$)`),
	regexp.MustCompile(`(?i)\s+@\s+(.+?)(?:\s*[-|]|\s*$)`),
	regexp.MustCompile(`(?i)\s+with\s+(.+?)(?:\s*[-|]|\s*$)`),
	regexp.MustCompile(`(?i)\s+for\s+(.+?)(?:\s*[-|]|\s*$)`),
}

var titlePrefix = regexp.MustCompile(`(?i)^(job\s+title\s*:?\s*|position\s*:?\s*)`)

// commonSkills are probed by plain containment when the AI parser is down
var commonSkills = []string{
	"javascript", "typescript", "react", "node.js", "python", "java",
	"aws", "docker", "kubernetes", "sql", "mongodb", "git", "html", "css",
}

var softSkillTerms = []string{
	"communication", "teamwork", "leadership", "problem solving", "problem-solving",
	"creativity", "collaboration", "time management", "adaptability",
}

// FallbackParse builds a basic JD structure from raw text when the AI
// parser is unavailable. Deliberately crude: keyword containment and a few
// title-line patterns, enough to keep the demo usable offline.
func FallbackParse(jdText string) *models.JobDescription {
	text := strings.ToLower(jdText)

	lines := []string{}
	for _, line := range strings.Split(jdText, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	title := "Software Engineer"
	if len(lines) > 0 {
		title = lines[0]
	}

	var company string
	for _, pattern := range companyPatterns {
		if match := pattern.FindStringSubmatch(title); len(match) > 1 {
			company = strings.TrimSpace(match[1])
			title = strings.TrimSpace(pattern.ReplaceAllString(title, ""))
			break
		}
	}

	// No company in the title line; look for a labelled line near the top
	if company == "" {
		for i := 1; i < len(lines) && i < 5; i++ {
			lower := strings.ToLower(lines[i])
			if strings.HasPrefix(lower, "company:") || strings.HasPrefix(lower, "organization:") {
				_, value, _ := strings.Cut(lines[i], ":")
				company = strings.TrimSpace(value)
				break
			}
		}
	}

	foundSkills := []string{}
	for _, skill := range commonSkills {
		if strings.Contains(text, skill) || strings.Contains(text, strings.ReplaceAll(skill, ".", "")) {
			foundSkills = append(foundSkills, skill)
		}
	}

	foundSoftSkills := []string{}
	for _, skill := range softSkillTerms {
		if strings.Contains(text, skill) {
			foundSoftSkills = append(foundSoftSkills, skill)
		}
	}

	skills := foundSkills
	if len(skills) == 0 {
		skills = []string{"Programming", "Problem Solving"}
	}
	softSkills := foundSoftSkills
	if len(softSkills) == 0 {
		softSkills = []string{"Communication", "Teamwork"}
	}

	requirements := make([]string, 0, len(foundSkills))
	for _, skill := range foundSkills {
		requirements = append(requirements, "Experience with "+skill)
	}

	workType := "full-time"
	if strings.Contains(text, "intern") {
		workType = "intern"
	}

	return &models.JobDescription{
		Title:            titlePrefix.ReplaceAllString(title, ""),
		Company:          company,
		WorkType:         workType,
		Responsibilities: models.FlexibleStringSlice{"Develop software solutions", "Collaborate with team members"},
		Skills:           skills,
		SoftSkills:       softSkills,
		Requirements:     requirements,
		Description:      "Software development position",
	}
}
