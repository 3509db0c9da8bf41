package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/killallgit/labeler-api/internal/models"
	apperrors "github.com/killallgit/labeler-api/pkg/errors"
)

// DefaultTimeout bounds one prediction round trip.
const DefaultTimeout = 10 * time.Second

// DefaultCacheSize is the capacity of the prediction response cache.
const DefaultCacheSize = 50

// Prediction is the classifier's answer for one text, or the fallback
// when the classifier could not be reached in time.
type Prediction struct {
	Text              string             `json:"text"`
	PredictedCategory string             `json:"predicted_category"`
	Confidence        float64            `json:"confidence"`
	AllProbabilities  map[string]float64 `json:"all_probabilities"`
	SentenceCount     int                `json:"sentence_count,omitempty"`
	TextLength        int                `json:"text_length"`
	ProcessingTimeMs  float64            `json:"processing_time_ms,omitempty"`
	Fallback          bool               `json:"fallback"`
}

// Predictor classifies text into the five label categories.
type Predictor interface {
	Predict(ctx context.Context, text string) (*Prediction, error)
}

// Client calls the external classifier over HTTP. Predictions are an
// enhancement, never a blocking dependency: any transport failure,
// timeout or bad response yields the fallback prediction with a nil
// error. Successful responses are cached in a small LRU keyed by
// normalized input text.
type Client struct {
	httpClient *http.Client
	endpoint   string
	cache      *lru.Cache[string, *Prediction]
}

// Config holds configuration for the prediction client
type Config struct {
	Endpoint  string
	Timeout   time.Duration
	CacheSize int
}

// NewClient creates a new prediction client
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}

	// lru.New only fails on a non-positive size, which is corrected above
	cache, _ := lru.New[string, *Prediction](cfg.CacheSize)

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   cfg.Endpoint,
		cache:      cache,
	}
}

// cacheKey normalizes text so trivially different inputs share a cache slot.
func cacheKey(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// Predict classifies text, returning the fallback prediction on any
// failure to reach or decode the external API. The only error returned is
// for empty input.
func (c *Client) Predict(ctx context.Context, text string) (*Prediction, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, apperrors.MissingFieldError("text")
	}

	key := cacheKey(trimmed)
	if cached, ok := c.cache.Get(key); ok {
		return cached, nil
	}

	if c.endpoint == "" {
		log.Printf("[WARN] Prediction endpoint not configured, returning fallback")
		return fallbackPrediction(trimmed), nil
	}

	prediction, err := c.call(ctx, trimmed)
	if err != nil {
		log.Printf("[ERROR] Prediction request failed, returning fallback: %v", err)
		return fallbackPrediction(trimmed), nil
	}

	// Only genuine classifier answers are cached so a recovered backend
	// is picked up on the next request
	c.cache.Add(key, prediction)
	return prediction, nil
}

func (c *Client) call(ctx context.Context, text string) (*Prediction, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, err
	}

	// Inherit the caller's deadline but not its values, so request-scoped
	// metadata never propagates to the external API
	cleanCtx := context.Background()
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		cleanCtx, cancel = context.WithDeadline(cleanCtx, deadline)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(cleanCtx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.Newf(apperrors.ErrCodeExternalService, "classifier returned status %d", resp.StatusCode)
	}

	var prediction Prediction
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return nil, err
	}
	if prediction.Text == "" {
		prediction.Text = text
	}
	if prediction.TextLength == 0 {
		prediction.TextLength = len(text)
	}
	return &prediction, nil
}

// fallbackPrediction is the neutral best-effort answer used when the
// classifier is unreachable. Callers can surface the reduced confidence
// via the Fallback flag.
func fallbackPrediction(text string) *Prediction {
	return &Prediction{
		Text:              text,
		PredictedCategory: models.CategoryNormal,
		Confidence:        0.5,
		AllProbabilities: map[string]float64{
			models.CategoryNormal:        0.5,
			models.CategoryHateSpeech:    0.2,
			models.CategoryOffensive:     0.15,
			models.CategoryReligiousHate: 0.1,
			models.CategoryPoliticalHate: 0.05,
		},
		SentenceCount:    1,
		TextLength:       len(text),
		ProcessingTimeMs: 0,
		Fallback:         true,
	}
}
