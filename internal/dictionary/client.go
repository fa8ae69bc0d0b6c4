package dictionary

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-resty/resty/v2"
)

var (
	errEmptyResponse = errors.New("empty dictionary response")
	// ErrWordNotFound is returned for words the API has no entry for.
	ErrWordNotFound = errors.New("word not found in dictionary")
)

// Config holds the dictionary API settings.
type Config struct {
	BaseURL       string
	RetryAttempts uint
}

// Client looks up words against the dictionary API, caching raw responses on
// disk so repeated runs never re-fetch.
type Client struct {
	httpClient       *resty.Client
	fileCache        *FileCache
	maxRetryAttempts uint
}

// NewClient creates a Client with a file cache at cacheDirectory.
func NewClient(cacheDirectory string, config Config) *Client {
	httpClient := resty.New()
	httpClient.SetBaseURL(config.BaseURL)

	return &Client{
		httpClient:       httpClient,
		fileCache:        NewFileCache(cacheDirectory),
		maxRetryAttempts: config.RetryAttempts,
	}
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

func (client *Client) lookupAPI(ctx context.Context, word string) ([]byte, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		Get("/api/v2/entries/en/" + word)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrWordNotFound, word)
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	return response.Body(), nil
}

func (client *Client) lookupWithRetry(ctx context.Context, word string) ([]byte, error) {
	var body []byte
	if err := retry.Do(
		func() error {
			contents, err := client.lookupAPI(ctx, word)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			body = contents
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return nil, err
	}
	return body, nil
}

// Lookup returns the normalized definition for word, reading the file cache
// first and hitting the API on a miss.
func (client *Client) Lookup(ctx context.Context, word string) (Definition, error) {
	contents, err := client.fileCache.cache(word, func() ([]byte, error) {
		body, err := client.lookupWithRetry(ctx, word)
		if err != nil {
			return nil, fmt.Errorf("client.lookupWithRetry > %w", err)
		}
		return body, nil
	})
	if err != nil {
		return Definition{}, fmt.Errorf("fileCache.cache > %w", err)
	}

	def, err := normalize(contents)
	if err != nil {
		return Definition{}, fmt.Errorf("normalize(%s) > %w", word, err)
	}
	return def, nil
}
