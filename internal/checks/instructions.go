package checks

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blackwell-systems/repolens/internal/analyzer"
)

const (
	claudeAPIURL     = "https://api.anthropic.com/v1/messages"
	claudeAPIVersion = "2023-06-01"
	maxTokens        = 1024
	apiTimeout       = 60 * time.Second

	// instructionReadLimit caps how much of the instruction file is sent.
	instructionReadLimit = 16 * 1024
)

// ErrNoAPIKey indicates instruction grading was requested without an API
// key. Callers treat it as "check skipped", not a failure.
var ErrNoAPIKey = errors.New("no API key configured")

// gradeSystemPrompt asks the model to grade an agent instruction file and
// reply with machine-readable findings.
const gradeSystemPrompt = `You grade the instruction files (CLAUDE.md, AGENTS.md) that AI coding assistants read before working in a repository.

Given the file's content, judge how well it would orient an assistant with no prior context: concrete build/test commands, project layout, conventions, and constraints all count; vague aspirations do not.

Reply with JSON only, matching this schema:
{
  "score": <integer 0-20>,
  "strengths": ["..."],
  "weaknesses": ["..."],
  "recommendations": ["..."]
}`

// GradeInstructions sends the repository's agent instruction file to the
// Claude API and converts the reply into a check result. Returns ErrNoAPIKey
// when apiKey is empty. A repository without an instruction file yields a
// weakness without calling the API.
func GradeInstructions(root, apiKey, model string) (analyzer.Result, error) {
	r := analyzer.Result{MaxScore: CheckMaxScore}

	if apiKey == "" {
		return r, ErrNoAPIKey
	}

	name := findInstructionFile(root)
	if name == "" {
		r.Weaknesses = append(r.Weaknesses, "No agent instruction file to grade")
		r.Recommendations = append(r.Recommendations, "Add a CLAUDE.md or AGENTS.md before requesting instruction grading")
		return r, nil
	}

	content, err := readLimited(filepath.Join(root, name), instructionReadLimit)
	if err != nil {
		return r, fmt.Errorf("reading %s: %w", name, err)
	}

	userPrompt := fmt.Sprintf("Instruction file %s:\n\n%s", name, content)
	responseText, err := callClaudeAPI(apiKey, model, gradeSystemPrompt, userPrompt)
	if err != nil {
		return r, fmt.Errorf("calling Claude API: %w", err)
	}

	grade, err := parseGradeResponse(responseText)
	if err != nil {
		return r, fmt.Errorf("parsing grade response: %w", err)
	}

	r.Score = grade.Score
	if r.Score < 0 {
		r.Score = 0
	}
	if r.Score > CheckMaxScore {
		r.Score = CheckMaxScore
	}
	for _, s := range grade.Strengths {
		r.Strengths = append(r.Strengths, fmt.Sprintf("%s: %s", name, s))
	}
	for _, w := range grade.Weaknesses {
		r.Weaknesses = append(r.Weaknesses, fmt.Sprintf("%s: %s", name, w))
	}
	r.Recommendations = append(r.Recommendations, grade.Recommendations...)
	return r, nil
}

// readLimited reads at most limit bytes of a file.
func readLimited(path string, limit int64) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type claudeAPIRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []claudeAPIMessage `json:"messages"`
}

type claudeAPIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeAPIResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func callClaudeAPI(apiKey, model, systemPrompt, userPrompt string) (string, error) {
	reqBody := claudeAPIRequest{
		Model:     model,
		MaxTokens: maxTokens,
		System:    systemPrompt,
		Messages: []claudeAPIMessage{
			{Role: "user", Content: userPrompt},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequest("POST", claudeAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", claudeAPIVersion)
	req.Header.Set("content-type", "application/json")

	client := &http.Client{Timeout: apiTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(respBytes))
	}

	var apiResp claudeAPIResponse
	if err := json.Unmarshal(respBytes, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("API error: %s: %s", apiResp.Error.Type, apiResp.Error.Message)
	}

	var textParts []string
	for _, block := range apiResp.Content {
		if block.Type == "text" {
			textParts = append(textParts, block.Text)
		}
	}
	if len(textParts) == 0 {
		return "", fmt.Errorf("no text content in API response")
	}
	return strings.Join(textParts, ""), nil
}

// gradeSchema is the expected JSON structure of the model's reply.
type gradeSchema struct {
	Score           int      `json:"score"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}

// parseGradeResponse extracts the grade from the reply, tolerating markdown
// code fences around the JSON.
func parseGradeResponse(responseText string) (*gradeSchema, error) {
	text := strings.TrimSpace(responseText)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	var grade gradeSchema
	if err := json.Unmarshal([]byte(text), &grade); err != nil {
		return nil, err
	}
	return &grade, nil
}
