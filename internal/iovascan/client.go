package iovascan

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnplants/pkg/config"
	"golang.org/x/time/rate"
)

// Response is the answer of VASCAN search API.
type Response struct {
	APIVersion string   `json:"apiVersion"`
	Results    []Result `json:"results"`
}

// Result contains matches of one searched term.
type Result struct {
	SearchedTerm string  `json:"searchedTerm"`
	NumMatches   int     `json:"numMatches"`
	Matches      []Taxon `json:"matches"`
}

// Taxon is a VASCAN taxon with its distribution.
type Taxon struct {
	TaxonID                  int64      `json:"taxonID"`
	ScientificName           string     `json:"scientificName"`
	ScientificNameAuthorship string     `json:"scientificNameAuthorship"`
	CanonicalName            string     `json:"canonicalName"`
	TaxonRank                string     `json:"taxonRank"`
	Distribution             []Location `json:"distribution"`
}

// Location is a distribution entry of a taxon.
type Location struct {
	LocationID         string `json:"locationID"`
	Locality           string `json:"locality"`
	EstablishmentMeans string `json:"establishmentMeans"`
	OccurrenceStatus   string `json:"occurrenceStatus"`
}

// Client queries VASCAN search API. Requests are throttled, the client is
// safe for concurrent use.
type Client struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
	enc        gnfmt.Encoder
}

// NewClient creates a client from VASCAN settings.
func NewClient(cfg config.VASCANConfig) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		url: cfg.URL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		enc:     &gnfmt.GNjson{},
	}
}

// Search looks up a name in VASCAN.
func (c *Client) Search(ctx context.Context, name string) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, RequestError(name, err)
	}

	params := url.Values{}
	params.Add("q", name)
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.url+"?"+params.Encode(), nil,
	)
	if err != nil {
		return nil, RequestError(name, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, RequestError(name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		return nil, RequestError(name, err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, RequestError(name, err)
	}

	var res Response
	if err = c.enc.Decode(body, &res); err != nil {
		return nil, ResponseError(name, err)
	}
	return &res, nil
}
