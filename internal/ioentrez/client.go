// Package ioentrez implements entrez.Fetcher using NCBI
// E-utilities over HTTP. Requests are sequential, there are
// no retries.
package ioentrez

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	app "github.com/gnames/gnmesh/pkg"
	"github.com/gnames/gnmesh/pkg/config"
	"github.com/gnames/gnmesh/pkg/entrez"
	"github.com/gnames/gnmesh/pkg/mesh"
)

// client implements entrez.Fetcher.
type client struct {
	cfg  config.EntrezConfig
	http *http.Client
}

// New creates an E-utilities client. NCBI requires a contact
// email with every request, so the client is not created
// without it.
func New(cfg config.EntrezConfig) (entrez.Fetcher, error) {
	if strings.TrimSpace(cfg.Email) == "" {
		return nil, MissingEmailError()
	}
	res := client{
		cfg: cfg,
		http: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
	return &res, nil
}

// Records posts ids to the history server and fetches their
// records page by page.
func (c *client) Records(
	ctx context.Context,
	ids []int,
) (*mesh.ArticleSet, error) {
	if len(ids) == 0 {
		return &mesh.ArticleSet{}, nil
	}

	hist, err := c.Post(ctx, ids)
	if err != nil {
		return nil, err
	}
	return c.Fetch(ctx, hist)
}

// Post sends ids to EPost and returns the history reference.
func (c *client) Post(
	ctx context.Context,
	ids []int,
) (entrez.History, error) {
	var res entrez.History
	uniq := entrez.UniqueIDs(ids)
	if dups := len(ids) - len(uniq); dups > 0 {
		slog.Info("Skipping repeated PubMed IDs", "count", dups)
	}
	vals := c.values()
	vals.Set("id", entrez.JoinIDs(uniq))

	endpoint := c.cfg.BaseURL + "/epost.fcgi"
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, endpoint,
		strings.NewReader(vals.Encode()),
	)
	if err != nil {
		return res, RequestError(endpoint, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	slog.Info("Posting PubMed IDs to history server", "ids", len(uniq))
	data, err := c.do(req, "epost")
	if err != nil {
		return res, err
	}

	res, err = entrez.ParsePost(data, len(uniq))
	if err != nil {
		return res, err
	}
	if len(res.Invalid) > 0 {
		slog.Warn("EPost rejected some PubMed IDs",
			"count", len(res.Invalid), "ids", res.Invalid)
	}
	return res, nil
}

// Fetch downloads records of the history reference with
// fetch_size records per request.
func (c *client) Fetch(
	ctx context.Context,
	hist entrez.History,
) (*mesh.ArticleSet, error) {
	res := &mesh.ArticleSet{}
	for _, p := range entrez.Pages(hist.Count, c.cfg.FetchSize) {
		data, err := c.fetch(ctx, hist, p)
		if err != nil {
			return nil, err
		}
		if err = entrez.CheckFetch(data); err != nil {
			return nil, err
		}
		set, err := mesh.Parse(data)
		if err != nil {
			return nil, err
		}
		slog.Debug("EFetch page",
			"retstart", p.Start, "retmax", p.Max,
			"articles", len(set.Articles))
		res.Merge(set)
	}

	return res, nil
}

// fetch retrieves one page of records from the history server.
func (c *client) fetch(
	ctx context.Context,
	hist entrez.History,
	page entrez.Page,
) ([]byte, error) {
	vals := c.values()
	vals.Set("retmode", "xml")
	vals.Set("WebEnv", hist.WebEnv)
	vals.Set("query_key", hist.QueryKey)
	vals.Set("retstart", strconv.Itoa(page.Start))
	vals.Set("retmax", strconv.Itoa(page.Max))

	endpoint := c.cfg.BaseURL + "/efetch.fcgi"
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, endpoint+"?"+vals.Encode(), nil,
	)
	if err != nil {
		return nil, RequestError(endpoint, err)
	}
	return c.do(req, "efetch")
}

// values returns parameters common for all requests.
func (c *client) values() url.Values {
	res := url.Values{}
	res.Set("db", c.cfg.Database)
	res.Set("tool", c.cfg.Tool)
	res.Set("email", c.cfg.Email)
	if c.cfg.APIKey != "" {
		res.Set("api_key", c.cfg.APIKey)
	}
	return res
}

func (c *client) do(req *http.Request, name string) ([]byte, error) {
	req.Header.Set("User-Agent", "gnmesh/"+app.Version)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, RequestError(name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, HTTPStatusError(name, resp.StatusCode)
	}

	res, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, RequestError(name, err)
	}
	return res, nil
}
