package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"resumelift/config"
	"resumelift/models"
	"resumelift/utils"
)

const (
	llmMinResponseChars = 100
	llmMaxResponseChars = 50000
)

// LLMService asks a hosted model to emit the canonical resume document
// directly, as a best-effort alternative to the rule-based pipeline. Every
// failure (missing token, auth, timeout, short response) is returned as an
// error for the caller to fall back on; nothing here ever reaches the end
// user.
type LLMService struct {
	cfg    config.LLMConfig
	client *http.Client
	logger *utils.Logger
}

func NewLLMService(cfg config.LLMConfig, logger *utils.Logger) *LLMService {
	return &LLMService{
		cfg:    cfg,
		client: &http.Client{},
		logger: logger,
	}
}

// Enabled reports whether a credential is configured. Its absence is not an
// error; the deterministic path simply runs alone.
func (s *LLMService) Enabled() bool {
	return s.cfg.Token != ""
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	MaxTok   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// authError marks failures that must not be retried.
type authError struct{ status int }

func (e *authError) Error() string {
	return fmt.Sprintf("authentication failed with status %d", e.status)
}

// OptimizeResume sends the structured resume and job description to the
// model and returns the canonical text document. Retries twice with 1s/2s
// backoff on network, timeout and 5xx errors; auth errors abort immediately.
func (s *LLMService) OptimizeResume(ctx context.Context, resume *models.Resume, jobDescription string) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("LLM credential not configured")
	}

	prompt := buildOptimizationPrompt(resume, jobDescription)

	var lastErr error
	backoffs := []time.Duration{0, 1 * time.Second, 2 * time.Second}
	for attempt := 0; attempt <= s.cfg.MaxRetries; attempt++ {
		if wait := backoffs[attempt]; wait > 0 {
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		text, err := s.complete(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if _, isAuth := err.(*authError); isAuth {
			s.logger.Warn("LLM auth error, not retrying", map[string]interface{}{"error": err.Error()})
			return "", err
		}
		s.logger.Warn("LLM attempt failed", map[string]interface{}{"attempt": attempt + 1, "error": err.Error()})
	}
	return "", lastErr
}

func (s *LLMService) complete(ctx context.Context, prompt string) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(chatRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		MaxTok: 4096,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", &authError{status: resp.StatusCode}
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("LLM API error %d: %s", resp.StatusCode, b)
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return "", fmt.Errorf("decode LLM response: %v", err)
	}
	if len(chat.Choices) == 0 {
		return "", fmt.Errorf("no completions returned")
	}

	text := cleanModelOutput(chat.Choices[0].Message.Content)
	if len(text) < llmMinResponseChars {
		return "", fmt.Errorf("LLM response too short (%d chars)", len(text))
	}
	if len(text) > llmMaxResponseChars {
		text = text[:llmMaxResponseChars]
	}
	return text, nil
}

var (
	codeFenceRegex = regexp.MustCompile("(?m)^```[a-z]*\\s*$")
	boldRegex      = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdHeaderRegex  = regexp.MustCompile(`(?m)^#{1,6}\s+`)
)

// cleanModelOutput strips code fences, markdown headers and bold markers the
// model tends to add despite instructions.
func cleanModelOutput(text string) string {
	text = codeFenceRegex.ReplaceAllString(text, "")
	text = boldRegex.ReplaceAllString(text, "$1")
	text = mdHeaderRegex.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// buildOptimizationPrompt embeds the full structured resume plus the job
// description and instructs the model to emit the canonical document.
func buildOptimizationPrompt(resume *models.Resume, jobDescription string) string {
	var b strings.Builder
	b.WriteString("You are an expert resume writer. Rewrite the resume below so its terminology matches the job description, without inventing facts, employers, dates or metrics.\n\n")
	b.WriteString("Output plain text only, using exactly this structure:\n")
	b.WriteString("- line 1: the candidate name\n")
	b.WriteString("- line 2: contact fields joined by \" | \"\n")
	b.WriteString("- section headers, verbatim and upper-case: PROFESSIONAL SUMMARY, WORK EXPERIENCE, EDUCATION, TECHNICAL SKILLS, PROJECTS, ACHIEVEMENTS, CERTIFICATIONS\n")
	b.WriteString("- each job as \"<Title> — <Start> – <End>\" then the company name upper-case, then \"• \" bullets\n")
	b.WriteString("- skills as \"• <Category>: <comma separated list>\"\n")
	b.WriteString("Do not use markdown, code fences or bold markers.\n\n")

	b.WriteString("RESUME:\n")
	b.WriteString(buildResumeOutline(resume))
	b.WriteString("\nJOB DESCRIPTION:\n")
	b.WriteString(jobDescription)
	return b.String()
}

// buildResumeOutline serializes the structured record for the prompt.
func buildResumeOutline(resume *models.Resume) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", resume.Name)
	fmt.Fprintf(&b, "Email: %s | Phone: %s | LinkedIn: %s | GitHub: %s | Portfolio: %s\n",
		resume.Contact.Email, resume.Contact.Phone, resume.Contact.LinkedIn,
		resume.Contact.GitHub, resume.Contact.Portfolio)
	fmt.Fprintf(&b, "Summary: %s\n", resume.Summary)
	for _, exp := range resume.Experience {
		fmt.Fprintf(&b, "Experience: %s at %s (%s – %s)\n", exp.Title, exp.Company, exp.StartDate, exp.EndDate)
		for _, bullet := range exp.Bullets {
			fmt.Fprintf(&b, "  - %s\n", bullet)
		}
	}
	for _, edu := range resume.Education {
		fmt.Fprintf(&b, "Education: %s, %s (%s)\n", edu.Degree, edu.University, edu.Years)
	}
	for _, cat := range resume.Skills.Categories() {
		if len(cat.Skills) > 0 {
			fmt.Fprintf(&b, "Skills/%s: %s\n", cat.Label, strings.Join(cat.Skills, ", "))
		}
	}
	for _, a := range resume.Achievements {
		fmt.Fprintf(&b, "Achievement: %s\n", a)
	}
	for _, p := range resume.Projects {
		fmt.Fprintf(&b, "Project: %s — %s (%s)\n", p.Title, p.Description, p.TechStack)
	}
	for _, c := range resume.Certifications {
		fmt.Fprintf(&b, "Certification: %s\n", c)
	}
	return b.String()
}
