// Package openlibrary searches books through the OpenLibrary search API.
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/heartmarshall/floating-librarian/internal/config"
	"github.com/heartmarshall/floating-librarian/internal/domain"
	"github.com/heartmarshall/floating-librarian/internal/observability"
)

const searchFields = "title,author_name,cover_i,isbn"

// maxBodyBytes caps the search response read into memory.
const maxBodyBytes = 2 << 20

// Provider fetches book search results from OpenLibrary.
type Provider struct {
	baseURL     string
	fetchLimit  int
	resultLimit int
	httpClient  *http.Client
	log         *slog.Logger
}

// NewProvider creates a Provider from the catalog configuration.
func NewProvider(cfg config.CatalogConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:     cfg.BaseURL,
		fetchLimit:  cfg.FetchLimit,
		resultLimit: cfg.ResultLimit,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		log:         logger.With("adapter", "openlibrary"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL and default
// limits (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return NewProvider(config.CatalogConfig{
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		FetchLimit:  20,
		ResultLimit: 5,
	}, logger)
}

// Search returns at most resultLimit usable books for query. Any transport,
// status or decoding failure is reported as domain.ErrSearchUnavailable.
func (p *Provider) Search(ctx context.Context, query string) (books []domain.Book, err error) {
	ctx, span := observability.StartHTTPClientSpan(ctx, "openlibrary", "search")
	defer func() { observability.End(span, err) }()

	params := url.Values{}
	params.Set("q", query)
	params.Set("fields", searchFields)
	params.Set("limit", strconv.Itoa(p.fetchLimit))
	reqURL := p.baseURL + "/search.json?" + params.Encode()

	p.log.DebugContext(ctx, "openlibrary request", slog.String("query", query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("openlibrary: create request: %w: %v", domain.ErrSearchUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.doWithRetry(ctx, req, query)
	if err != nil {
		p.log.ErrorContext(ctx, "openlibrary request failed", slog.String("query", query), slog.String("error", err.Error()))
		return nil, fmt.Errorf("openlibrary: request failed: %w: %v", domain.ErrSearchUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openlibrary: unexpected status %d: %w", resp.StatusCode, domain.ErrSearchUnavailable)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("openlibrary: read body: %w: %v", domain.ErrSearchUnavailable, err)
	}
	if len(body) > maxBodyBytes {
		return nil, fmt.Errorf("openlibrary: response exceeds %d bytes: %w", maxBodyBytes, domain.ErrSearchUnavailable)
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("openlibrary: decode json: %w: %v", domain.ErrSearchUnavailable, err)
	}

	books = mapDocs(result.Docs, p.resultLimit)

	p.log.DebugContext(ctx, "openlibrary response",
		slog.String("query", query),
		slog.Int("docs", len(result.Docs)),
		slog.Int("books", len(books)),
	)

	return books, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, query string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "openlibrary retry", slog.String("query", query), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(300 * time.Millisecond):
	}

	return p.httpClient.Do(req)
}

// mapDocs drops docs without a title, an author or an isbn, keeps the first
// author and isbn of each, and truncates to limit. The isbn is normalized
// the same way stored entries are, so aggregates and ownership match.
func mapDocs(docs []apiDoc, limit int) []domain.Book {
	books := make([]domain.Book, 0, limit)
	for _, d := range docs {
		if len(books) == limit {
			break
		}
		if d.Title == "" || len(d.AuthorName) == 0 || len(d.ISBN) == 0 {
			continue
		}
		isbn := domain.NormalizeISBN(d.ISBN[0])
		if isbn == "" {
			continue
		}

		book := domain.Book{
			Title:      d.Title,
			AuthorName: d.AuthorName[0],
			ISBN:       isbn,
		}
		if d.CoverI != "" {
			cover := string(d.CoverI)
			book.CoverID = &cover
		}
		books = append(books, book)
	}
	return books
}
