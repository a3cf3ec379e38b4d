package figma

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const figmaAPIBase = "https://api.figma.com/v1"

// Client is a Figma REST API client with transport settings tuned for
// reliable communication: connection pooling, disabled HTTP/2 (stream errors
// on large files), and a generous timeout.
type Client struct {
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new Figma API client with the provided personal
// access token.
func NewClient(accessToken string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		// Disable HTTP/2 to avoid stream errors with large files.
		ForceAttemptHTTP2: false,
	}

	return &Client{
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout:   10 * time.Minute,
			Transport: transport,
		},
	}
}

// ExtractFileKey extracts the unique file identifier from a Figma URL.
// Supports both /file/ and /design/ URL patterns (e.g.
// figma.com/file/ABC123/Design-Name). Returns an error if the URL does not
// match the expected Figma domain pattern.
func ExtractFileKey(figmaURL string) (string, error) {
	// Anchored to ensure the entire URL matches the expected pattern.
	re := regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:/|$|\?)`)
	matches := re.FindStringSubmatch(figmaURL)

	if len(matches) < 2 {
		return "", fmt.Errorf("invalid Figma URL format: must be a valid figma.com URL with /file/ or /design/ path")
	}

	return matches[1], nil
}

// StylesResponse is the response from the published-styles endpoint.
type StylesResponse struct {
	Meta StylesMeta `json:"meta"`
}

// StylesMeta lists the published style metadata entries of a file.
type StylesMeta struct {
	Styles []StyleMetadata `json:"styles"`
}

// StyleMetadata describes a single published style: its key, the node that
// defines it, the style type (FILL, TEXT, EFFECT, or GRID), name, and
// description.
type StyleMetadata struct {
	Key         string `json:"key"`
	FileKey     string `json:"file_key"`
	NodeID      string `json:"node_id"`
	StyleType   string `json:"style_type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NodesResponse is the response from the nodes endpoint when fetching
// specific style-defining nodes.
type NodesResponse struct {
	Name  string              `json:"name"`
	Nodes map[string]NodeData `json:"nodes"`
}

// NodeData wraps a fetched node document.
type NodeData struct {
	Document Node `json:"document"`
}

// Node carries the style-relevant payload of a style-defining node: fills,
// effects, layout grids, and typographic properties.
type Node struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Fills       []Paint      `json:"fills,omitempty"`
	Effects     []Effect     `json:"effects,omitempty"`
	LayoutGrids []LayoutGrid `json:"layoutGrids,omitempty"`
	Style       *TypeStyle   `json:"style,omitempty"`
}

// TypeStyle is the REST representation of typographic properties.
type TypeStyle struct {
	FontFamily          string  `json:"fontFamily"`
	FontPostScriptName  string  `json:"fontPostScriptName,omitempty"`
	FontWeight          float64 `json:"fontWeight,omitempty"`
	FontSize            float64 `json:"fontSize,omitempty"`
	Italic              bool    `json:"italic,omitempty"`
	LineHeightPx        float64 `json:"lineHeightPx,omitempty"`
	LineHeightPercent   float64 `json:"lineHeightPercentFontSize,omitempty"`
	LineHeightUnit      string  `json:"lineHeightUnit,omitempty"`
	LetterSpacing       float64 `json:"letterSpacing,omitempty"`
	TextCase            string  `json:"textCase,omitempty"`
	TextDecoration      string  `json:"textDecoration,omitempty"`
	TextAlignHorizontal string  `json:"textAlignHorizontal,omitempty"`
}

// FileMeta is the subset of the file endpoint used for document metadata.
type FileMeta struct {
	Name         string `json:"name"`
	LastModified string `json:"lastModified"`
	Version      string `json:"version"`
}

// VariablesResponse is the response from the local-variables endpoint.
type VariablesResponse struct {
	Meta VariablesMeta `json:"meta"`
}

// VariablesMeta holds the variable and collection maps keyed by id.
type VariablesMeta struct {
	Variables           map[string]Variable           `json:"variables"`
	VariableCollections map[string]VariableCollection `json:"variableCollections"`
}

// GetFileMeta retrieves file-level metadata (name, version) without the
// document tree.
func (c *Client) GetFileMeta(ctx context.Context, fileKey string) (*FileMeta, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/files/%s?depth=1", figmaAPIBase, fileKey))
	if err != nil {
		return nil, err
	}

	var meta FileMeta
	if err := json.Unmarshal(body, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &meta, nil
}

// GetStyles retrieves metadata for all published styles (colors, text,
// effects, grids) of a file.
func (c *Client) GetStyles(ctx context.Context, fileKey string) (*StylesResponse, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/files/%s/styles", figmaAPIBase, fileKey))
	if err != nil {
		return nil, err
	}

	var stylesResp StylesResponse
	if err := json.Unmarshal(body, &stylesResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &stylesResp, nil
}

// GetNodes retrieves the documents of specific nodes, used to read the
// paint/effect/grid/text payload of each published style's defining node.
func (c *Client) GetNodes(ctx context.Context, fileKey string, nodeIDs []string) (*NodesResponse, error) {
	endpoint := fmt.Sprintf("%s/files/%s/nodes?ids=%s", figmaAPIBase, fileKey, url.QueryEscape(strings.Join(nodeIDs, ",")))
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var nodesResp NodesResponse
	if err := json.Unmarshal(body, &nodesResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &nodesResp, nil
}

// GetLocalVariables retrieves all local variables and variable collections
// of a file.
func (c *Client) GetLocalVariables(ctx context.Context, fileKey string) (*VariablesResponse, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/files/%s/variables/local", figmaAPIBase, fileKey))
	if err != nil {
		return nil, err
	}

	var varsResp VariablesResponse
	if err := json.Unmarshal(body, &varsResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &varsResp, nil
}

// get executes an authenticated GET request with automatic retry (up to 3
// attempts, linear backoff) on network errors, rate limits (429), and server
// errors (5xx).
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	var lastErr error
	maxRetries := 3

	for attempt := 1; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("X-Figma-Token", c.accessToken)
		// Disable HTTP/2 to avoid stream errors with large files.
		req.Header.Set("Connection", "close")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("attempt %d failed to execute request: %w", attempt, err)
			if attempt < maxRetries {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return nil, lastErr
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
			if attempt < maxRetries && (resp.StatusCode == 429 || resp.StatusCode >= 500) {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return nil, lastErr
		}

		if readErr != nil {
			lastErr = fmt.Errorf("attempt %d failed to read response body: %w", attempt, readErr)
			if attempt < maxRetries {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return nil, lastErr
		}

		return body, nil
	}

	return nil, lastErr
}
