// Package executor runs user code through a Judge0-compatible service.
// The core engine treats it as an opaque collaborator: Execute never
// returns an error, every failure degrades to a simulated local result.
package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Result is what the caller gets back for one execution attempt.
type Result struct {
	Output        string  `json:"output"`
	Error         string  `json:"error"`
	ExecutionTime float64 `json:"executionTime"`
}

// Service submits code to a remote executor.
type Service struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     *zerolog.Logger
}

// NewService builds an executor client. With an empty API key every call
// is served by the local simulation.
func NewService(baseURL, apiKey string, logger *zerolog.Logger) *Service {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     logger,
	}
}

type submission struct {
	LanguageID int    `json:"language_id"`
	SourceCode string `json:"source_code"`
	Stdin      string `json:"stdin"`
}

type submissionResult struct {
	Stdout        string `json:"stdout"`
	Stderr        string `json:"stderr"`
	CompileOutput string `json:"compile_output"`
	Time          string `json:"time"`
}

// Execute runs code in the given executor language. A transport or
// upstream failure is converted to a best-effort simulated result; it is
// a single attempt, never retried.
func (s *Service) Execute(ctx context.Context, code string, languageID int, stdin string) Result {
	if s.apiKey == "" || s.baseURL == "" {
		return simulate(code)
	}

	result, err := s.submit(ctx, code, languageID, stdin)
	if err != nil {
		s.log.Warn().Err(err).Int("language_id", languageID).Msg("executor unavailable, using simulation")
		return simulate(code)
	}
	return result
}

func (s *Service) submit(ctx context.Context, code string, languageID int, stdin string) (Result, error) {
	body, err := json.Marshal(submission{
		LanguageID: languageID,
		SourceCode: code,
		Stdin:      stdin,
	})
	if err != nil {
		return Result{}, fmt.Errorf("marshal submission: %w", err)
	}

	endpoint := s.baseURL + "/submissions?base64_encoded=false&wait=true"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-RapidAPI-Key", s.apiKey)
	if u, parseErr := url.Parse(s.baseURL); parseErr == nil {
		req.Header.Set("X-RapidAPI-Host", u.Host)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("submit code: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, fmt.Errorf("submit code: unexpected status %d", resp.StatusCode)
	}

	var sub submissionResult
	if err := json.NewDecoder(resp.Body).Decode(&sub); err != nil {
		return Result{}, fmt.Errorf("decode result: %w", err)
	}

	execErr := sub.Stderr
	if execErr == "" {
		execErr = sub.CompileOutput
	}
	execTime, _ := strconv.ParseFloat(sub.Time, 64)

	return Result{
		Output:        sub.Stdout,
		Error:         execErr,
		ExecutionTime: execTime,
	}, nil
}

// simulate produces a canned local result so the caller always gets a
// response, matching the contract that executor failures never surface.
func simulate(code string) Result {
	stamp := time.Now().Format("15:04:05")

	lowered := strings.ToLower(code)
	if strings.Contains(lowered, "error") || strings.Contains(code, "throw") {
		return Result{
			Error:         "Simulated compilation error: Check your code syntax",
			ExecutionTime: 0.05,
		}
	}

	return Result{
		Output: fmt.Sprintf("[%s] Code executed successfully!\nOutput: Hello, World!\n(This is a simulation - connect to Judge0 API for real execution)", stamp),
		ExecutionTime: 0.123,
	}
}
