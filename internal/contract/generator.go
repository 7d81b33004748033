package contract

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ChristianKamdemLab/ckmoney/internal/domain/loan"
)

// Generator produces the legal text of a debt acknowledgment from a fully
// populated loan record.
type Generator interface {
	Generate(ctx context.Context, l *loan.Loan) (string, error)
}

// RemoteGenerator calls an external text-generation service. The service
// receives the loan record and returns plain text in the signing language.
type RemoteGenerator struct {
	url  string
	http *http.Client
}

func NewRemoteGenerator(url string, timeout time.Duration) *RemoteGenerator {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RemoteGenerator{url: url, http: &http.Client{Timeout: timeout}}
}

type generateResponse struct {
	Text string `json:"text"`
}

func (g *RemoteGenerator) Generate(ctx context.Context, l *loan.Loan) (string, error) {
	if g.url == "" {
		return "", errors.New("contract generator: no endpoint configured")
	}
	payload, err := json.Marshal(l)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("contract generator: status %d", resp.StatusCode)
	}

	var body generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("contract generator: %w", err)
	}
	if strings.TrimSpace(body.Text) == "" {
		return "", errors.New("contract generator: empty response")
	}
	return body.Text, nil
}

// Assembler tries the remote service and falls back to the deterministic
// local template on any failure or empty output. Render never fails: the
// template is total over well-formed loans.
type Assembler struct {
	remote Generator
	log    *slog.Logger
}

func NewAssembler(remote Generator, log *slog.Logger) *Assembler {
	return &Assembler{remote: remote, log: log}
}

func (a *Assembler) Render(ctx context.Context, l *loan.Loan) string {
	if a.remote != nil {
		text, err := a.remote.Generate(ctx, l)
		if err == nil {
			return text
		}
		a.log.Warn("contract generation degraded to local template",
			"component", "contract", "loan_id", l.LoanID, "error", err)
	}
	return RenderFallback(l)
}
