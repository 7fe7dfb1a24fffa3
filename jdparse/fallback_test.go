package jdparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackParseTitleAndCompany(t *testing.T) {
	jd := FallbackParse("Senior Frontend Developer at TechCorp\nWe need React and TypeScript expertise.")

	assert.Equal(t, "Senior Frontend Developer", jd.Title)
	assert.Equal(t, "TechCorp", jd.Company)
}

func TestFallbackParseCompanyLine(t *testing.T) {
	jd := FallbackParse("Backend Engineer\nCompany: Acme Ltd\nGo and SQL required.")

	assert.Equal(t, "Backend Engineer", jd.Title)
	assert.Equal(t, "Acme Ltd", jd.Company)
}

func TestFallbackParseStripsTitlePrefix(t *testing.T) {
	jd := FallbackParse("Job Title: Data Engineer\nSQL, Python, AWS.")

	assert.Equal(t, "Data Engineer", jd.Title)
}

func TestFallbackParseSkillDetection(t *testing.T) {
	jd := FallbackParse("Full Stack Developer\nMust know React, TypeScript and Node.js. Strong communication skills.")

	assert.Contains(t, jd.Skills, "react")
	assert.Contains(t, jd.Skills, "typescript")
	assert.Contains(t, jd.Skills, "node.js")
	assert.Contains(t, []string(jd.SoftSkills), "communication")

	// every detected skill becomes a requirement line
	assert.Contains(t, []string(jd.Requirements), "Experience with react")
}

func TestFallbackParseNodeWithoutDot(t *testing.T) {
	// "nodejs" spelled without the dot still matches node.js
	jd := FallbackParse("Engineer\nExperience with nodejs required.")
	assert.Contains(t, jd.Skills, "node.js")
}

func TestFallbackParseDefaults(t *testing.T) {
	jd := FallbackParse("Quantum Basket Weaver\nNo recognizable technology here.")

	assert.Equal(t, []string{"Programming", "Problem Solving"}, jd.Skills)
	assert.Equal(t, []string{"Communication", "Teamwork"}, []string(jd.SoftSkills))
	assert.Empty(t, jd.Requirements)
	assert.Equal(t, "full-time", jd.WorkType)
}

func TestFallbackParseInternDetection(t *testing.T) {
	jd := FallbackParse("Software Engineering Intern at StartupCo\nPython scripting.")
	assert.Equal(t, "intern", jd.WorkType)
}
