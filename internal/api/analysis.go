package api

import (
	"context"
	"net/http"
	"time"

	perrors "github.com/coderefine/coderefine/internal/errors"
)

// Analyze requests complexity metrics and a review of code.
func (c *Client) Analyze(ctx context.Context, code, language string) (AnalysisResult, error) {
	const op = perrors.Op("api.Analyze")

	code, err := PrepareCode(op, code)
	if err != nil {
		return AnalysisResult{}, err
	}

	var resp AnalysisResult
	body := map[string]string{"code": code, "language": language}
	if err := c.post(ctx, op, pathAnalyze, body, &resp, "Analysis failed", true); err != nil {
		return AnalysisResult{}, err
	}
	return resp, nil
}

// Refine asks the service to rewrite code with the given focus.
func (c *Client) Refine(ctx context.Context, code, language string, action Action) (RefineResult, error) {
	const op = perrors.Op("api.Refine")

	code, err := PrepareCode(op, code)
	if err != nil {
		return RefineResult{}, err
	}
	if _, err := ParseAction(string(action)); err != nil {
		return RefineResult{}, err
	}

	var resp RefineResult
	body := map[string]string{"code": code, "language": language, "action": string(action)}
	if err := c.post(ctx, op, pathRefine, body, &resp, "Refinement failed", true); err != nil {
		return RefineResult{}, err
	}

	resp.OriginalCode = code
	resp.Language = language
	resp.Action = action
	resp.ReceivedAt = time.Now()
	return resp, nil
}

// Health checks that the service is up.
func (c *Client) Health(ctx context.Context) (Health, error) {
	const op = perrors.Op("api.Health")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathHealth, nil)
	if err != nil {
		return Health{}, perrors.TransportFailed(op, err)
	}
	req.Header.Set("Accept", "application/json")

	var h Health
	if err := c.do(req, op, &h, ""); err != nil {
		return Health{}, err
	}
	return h, nil
}
