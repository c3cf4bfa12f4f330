package chain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ErrBadStatus is returned when the data endpoint answers with a non-2xx status
var ErrBadStatus = errors.New("unexpected response status")

// DefaultEndpoint is where the chain service listens by default
const DefaultEndpoint = "http://localhost:5000/data_helper"

// Source supplies a chain
type Source interface {
	Load(ctx context.Context) (Chain, error)
}

// SourceFunc adapts a function to the Source interface
type SourceFunc func(ctx context.Context) (Chain, error)

// Load calls f
func (f SourceFunc) Load(ctx context.Context) (Chain, error) {
	return f(ctx)
}

// StaticSource supplies the built-in sample chain
type StaticSource struct{}

// Load returns the static chain
func (StaticSource) Load(context.Context) (Chain, error) {
	return Static(), nil
}

// RemoteSource fetches a chain from the data endpoint with a single GET.
// There is no retry. The client has no timeout unless one is configured,
// so the request lives as long as ctx.
type RemoteSource struct {
	URL    string
	Client *http.Client
}

// NewRemoteSource creates a source for the given endpoint URL
func NewRemoteSource(url string) *RemoteSource {
	if url == "" {
		url = DefaultEndpoint
	}
	return &RemoteSource{URL: url, Client: http.DefaultClient}
}

// Load fetches and decodes the chain, closing it with the origin
func (s *RemoteSource) Load(ctx context.Context) (Chain, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s from %s", ErrBadStatus, resp.Status, s.URL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return DecodePayload(body)
}

// FileSource reads a chain from a JSON file. Both the plain vertex object
// and the double-encoded endpoint form are accepted.
type FileSource struct {
	Path string
	// CloseLoop appends the origin after the file's vertices
	CloseLoop bool
}

// Load reads and decodes the file
func (s *FileSource) Load(ctx context.Context) (Chain, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain file: %w", err)
	}

	if isQuoted(data) {
		data, err = unwrapString(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", s.Path, err)
		}
	}

	c, err := DecodeVertices(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.Path, err)
	}
	if s.CloseLoop {
		c = c.WithClosure()
	}
	return c, nil
}

// GeneratorSource produces a closed chain locally with the lattice generator
type GeneratorSource struct {
	Length      int
	Seed        uint64 // 0 picks a time based seed
	MaxAttempts int
}

// Load generates a closed chain, already terminated by the origin
func (s *GeneratorSource) Load(ctx context.Context) (Chain, error) {
	seed := s.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	c, _, err := GenerateClosedChain(ctx, s.Length, NewRand(seed), s.MaxAttempts)
	return c, err
}
