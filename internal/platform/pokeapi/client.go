package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"pokedex/internal/pokemon"
)

const (
	DefaultBaseURL = "https://pokeapi.co"
	ListPath       = "/api/v2/pokemon"
	// ListLimit is the page size requested from the listing endpoint. It is
	// not configurable.
	ListLimit = 10
)

var (
	ErrTransport        = errors.New("pokeapi: transport failure")
	ErrUnexpectedStatus = errors.New("pokeapi: unexpected status code")
	ErrDecode           = errors.New("pokeapi: malformed response body")
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithRateLimit paces outbound requests to rps per second. Zero or less
// disables pacing. Pacing only delays a request; it never adds one.
func WithRateLimit(rps int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1)
	}
}

// NewClient builds a client on top of httpClient. A nil httpClient is an
// error at call time rather than a silent fallback to http.DefaultClient.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListURL is the exact URL requested by ListPokemon.
func (c *Client) ListURL() string {
	return c.baseURL + ListPath + "?limit=" + strconv.Itoa(ListLimit)
}

// ListPokemon issues a single GET for the first ListLimit entries. There are
// no retries and no timeout beyond what httpClient and ctx impose.
func (c *Client) ListPokemon(ctx context.Context) (*pokemon.ListResponse, error) {
	var res *pokemon.ListResponse
	if err := c.get(ctx, c.ListURL(), &res); err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("%w: null listing", ErrDecode)
	}
	return res, nil
}

func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	if c.httpClient == nil {
		return fmt.Errorf("%w: no http client configured", ErrTransport)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	// The body must hold exactly one JSON value.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after listing", ErrDecode)
	}
	return nil
}
