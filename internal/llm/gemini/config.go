package gemini

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gestir-app/wardrobe-tracker/internal/llm"
)

// Config for the Gemini client.
type Config struct {
	APIKey    string        // if empty, falls back to env GEMINI_API_KEY
	BaseURL   string        // default https://generativelanguage.googleapis.com/v1beta
	Model     string        // e.g., "gemini-2.5-flash"
	Timeout   time.Duration // http client timeout
	AssetsDir string        // optional few-shot exemplar images
}

type Client struct {
	cfg       Config
	http      *http.Client
	logger    *slog.Logger
	exemplars []llm.Exemplar
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:       cfg,
		http:      &http.Client{Timeout: cfg.Timeout},
		logger:    logger,
		exemplars: llm.LoadExemplars(cfg.AssetsDir),
	}
}

// Model reports the configured model name, for audit rows and logs.
func (c *Client) Model() string {
	return c.cfg.Model
}
