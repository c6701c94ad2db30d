package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/courtside/pkg/chat"
	"github.com/jwebster45206/courtside/pkg/session"
)

// Suite is a scripted conversation executed against a running courtside
// API. Every suite runs in its own session, so remembered entities only
// carry over between its own steps.
type Suite struct {
	Name  string
	Steps []Step
}

// Step is one user turn plus the substrings the reply must and must not
// contain. Replies are deterministic, so exact fragments are safe.
type Step struct {
	Message     string
	Expect      []string
	ExpectNot   []string
	Description string
}

// StepResult records one executed step.
type StepResult struct {
	Step    Step
	Reply   string
	Failure string // empty on pass
}

// Runner executes suites against a running courtside API.
type Runner struct {
	BaseURL string
	Client  *http.Client
	Timeout time.Duration
	Logger  func(format string, args ...interface{})
}

func NewRunner(baseURL string) *Runner {
	return &Runner{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Client:  &http.Client{Timeout: 60 * time.Second},
		Timeout: 30 * time.Second,
	}
}

func (r *Runner) logf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger(format, args...)
	}
}

// RunSuite creates a fresh session, plays every step in order, and
// returns the per-step results. A transport error aborts the suite; an
// expectation failure does not.
func (r *Runner) RunSuite(ctx context.Context, suite Suite) ([]StepResult, error) {
	s, err := r.createSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("suite %s: %w", suite.Name, err)
	}
	r.logf("suite %s: session %s", suite.Name, s.ID)

	results := make([]StepResult, 0, len(suite.Steps))
	for i, step := range suite.Steps {
		reply, err := r.chatTurn(ctx, s.ID, step.Message)
		if err != nil {
			return results, fmt.Errorf("suite %s step %d (%s): %w", suite.Name, i+1, step.Message, err)
		}
		results = append(results, StepResult{
			Step:    step,
			Reply:   reply,
			Failure: checkStep(step, reply),
		})
	}
	return results, nil
}

func checkStep(step Step, reply string) string {
	for _, want := range step.Expect {
		if !strings.Contains(reply, want) {
			return fmt.Sprintf("reply missing %q", want)
		}
	}
	for _, unwanted := range step.ExpectNot {
		if strings.Contains(reply, unwanted) {
			return fmt.Sprintf("reply unexpectedly contains %q", unwanted)
		}
	}
	return ""
}

func (r *Runner) createSession(ctx context.Context) (*session.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.BaseURL+"/v1/session", nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("session create returned %d: %s", resp.StatusCode, string(body))
	}
	var s session.Session
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	return &s, nil
}

func (r *Runner) chatTurn(ctx context.Context, sessionID uuid.UUID, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	payload, err := json.Marshal(chat.ChatRequest{SessionID: sessionID, Message: message})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.BaseURL+"/v1/chat", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat returned %d: %s", resp.StatusCode, string(body))
	}
	var cr chat.ChatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("failed to parse chat response: %w", err)
	}
	return cr.Message, nil
}
