package facegate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/seu-repo/smartparking/internal/ports"
)

// Client calls the face-comparison oracle over HTTP. Calls run through a
// circuit breaker so a dead oracle fails checkout evaluation fast instead
// of piling up gate requests.
type Client struct {
	baseURL string
	http    *http.Client
	cb      *gobreaker.CircuitBreaker
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) ports.FaceComparator {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "facegate",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("Face oracle circuit breaker state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		cb:      cb,
		log:     log,
	}
}

type compareRequest struct {
	CandidateImage string `json:"candidate_image"`
	ReferenceImage string `json:"reference_image"`
}

type compareResponse struct {
	Match bool `json:"match"`
}

func (c *Client) Compare(ctx context.Context, candidateImage, referenceImage string) (bool, error) {
	result, err := c.cb.Execute(func() (interface{}, error) {
		return c.compare(ctx, candidateImage, referenceImage)
	})
	if err != nil {
		return false, err
	}
	return result.(bool), nil
}

func (c *Client) compare(ctx context.Context, candidateImage, referenceImage string) (bool, error) {
	body, err := json.Marshal(compareRequest{
		CandidateImage: candidateImage,
		ReferenceImage: referenceImage,
	})
	if err != nil {
		return false, fmt.Errorf("facegate: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/compare", bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("facegate: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("facegate: compare call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("facegate: compare returned status %d", resp.StatusCode)
	}

	var out compareResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("facegate: decode response: %w", err)
	}

	return out.Match, nil
}
