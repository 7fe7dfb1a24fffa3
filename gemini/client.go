package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"go.uber.org/zap"

	"github.com/candidate-compare/backend/config"
	"github.com/candidate-compare/backend/models"
)

// Client wraps the Vertex AI Gemini client
type Client struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	logger    *zap.Logger
	modelName string
}

// QuestionsResponse is the JSON shape Gemini is asked to return for
// interview-question generation
type QuestionsResponse struct {
	Questions []string `json:"questions"`
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Client, error) {
	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)

	// Configure model parameters
	model.SetTemperature(0.2) // Lower temperature for more consistent outputs
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(8192)

	return &Client{
		client:    client,
		model:     model,
		logger:    logger,
		modelName: cfg.GeminiModel,
	}, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	return c.client.Close()
}

// GenerateInterviewQuestions produces 3-4 tailored interview questions for
// the given JD/candidate pair. Callers treat any error as recoverable and
// substitute their own fallback questions.
func (c *Client) GenerateInterviewQuestions(ctx context.Context, jd *models.JobDescription, candidate *models.Candidate) (*QuestionsResponse, error) {
	jdJSON, _ := json.MarshalIndent(jd, "", "  ")
	candidateJSON, _ := json.MarshalIndent(candidate, "", "  ")

	prompt := fmt.Sprintf(`You are an experienced technical recruiter conducting a professional interview. Analyze the job requirements vs candidate profile and generate 3-4 strategic interview questions.

IMPORTANT:
- Use natural, conversational interview language that real HR professionals would use
- Vary your question styles and avoid repetitive sentence patterns
- Make each question feel personal and tailored to this specific candidate

Focus areas:
1. Skill gaps: ask about technologies in the JD that the candidate hasn't mentioned explicitly
2. Experience validation: probe deeper into the candidate's claimed experience with specific technologies
3. Project details: ask for specifics about projects that relate to job requirements
4. Growth potential: give the candidate an opportunity to show unreported skills or learning ability

Job Requirements:
%s

Candidate Profile:
%s

Return JSON format:
{
  "questions": [
    "Question 1 content",
    "Question 2 content",
    "Question 3 content",
    "Question 4 content (optional)"
  ]
}

Return ONLY the JSON object, no markdown formatting, no explanation.`, jdJSON, candidateJSON)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := extractText(resp)
	text = cleanJSON(text)

	var questions QuestionsResponse
	if err := json.Unmarshal([]byte(text), &questions); err != nil {
		c.logger.Warn("failed to parse questions response", zap.String("raw", text))
		return nil, fmt.Errorf("failed to parse questions JSON: %w", err)
	}

	if len(questions.Questions) == 0 {
		return nil, fmt.Errorf("no questions in Gemini response")
	}

	return &questions, nil
}

// ParseJD extracts a structured job description from free text
func (c *Client) ParseJD(ctx context.Context, jdText string) (*models.JobDescription, error) {
	prompt := fmt.Sprintf(`You are an expert at reading job postings. Extract the key information from the job description below and return it as JSON.

The text may be copied from a job board and may include navigation text, "View all jobs", "How you match", category labels, etc. Ignore those and focus only on the actual job content.

Return ONLY a JSON object with no extra text:
{
  "title": "the job title/position name",
  "company": "the hiring company name",
  "location": "work location",
  "workType": "full-time, part-time, contract, or intern",
  "responsibilities": ["key responsibility 1", "key responsibility 2"],
  "skills": ["required technical skill 1", "required technical skill 2"],
  "softSkills": ["soft skill 1", "soft skill 2"],
  "requirements": ["requirement 1", "requirement 2"],
  "salary": { "min": null, "max": null, "currency": null },
  "benefits": ["benefit 1", "benefit 2"],
  "description": "one sentence summary of the role"
}

Use null for any field you cannot find. Do not invent information.

Job Description:
%s`, jdText)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := extractText(resp)
	text = cleanJSON(text)

	var jd models.JobDescription
	if err := json.Unmarshal([]byte(text), &jd); err != nil {
		c.logger.Warn("failed to parse JD response", zap.String("raw", text))
		return nil, fmt.Errorf("failed to parse JD JSON: %w", err)
	}

	// A parse that found neither a title nor skills is not usable
	if jd.Title == "" && len(jd.Skills) == 0 {
		return nil, fmt.Errorf("invalid JD structure")
	}

	return &jd, nil
}

// HealthCheck probes the model with a trivial prompt
func (c *Client) HealthCheck(ctx context.Context) bool {
	resp, err := c.model.GenerateContent(ctx, genai.Text(`Reply "Service OK"`))
	if err != nil {
		return false
	}
	text := extractText(resp)
	return strings.Contains(text, "Service OK") || strings.Contains(text, "OK")
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

func cleanJSON(text string) string {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	return text
}
