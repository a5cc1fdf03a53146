package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"

	// apiVersion is the Notion-Version header value; the block schemas in
	// this package are written against this revision.
	apiVersion = "2022-06-28"
)

// Client is a minimal Notion REST client. Pages are pulled and pushed
// wholesale - the sync service fetches a page's full block list into a
// document and appends a document's converted blocks on push; nothing
// is streamed or patched incrementally.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client using the given integration token.
func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// blockChildrenResponse is the paginated envelope for block listings.
type blockChildrenResponse struct {
	Results    []Block `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// PageBlocks fetches the complete block list of a page, following
// pagination until the API reports no more results.
func (c *Client) PageBlocks(ctx context.Context, pageID string) ([]Block, error) {
	var blocks []Block
	var cursor *string

	for {
		path := fmt.Sprintf("/blocks/%s/children?page_size=100", pageID)
		if cursor != nil {
			path += "&start_cursor=" + *cursor
		}

		var resp blockChildrenResponse
		if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
			return nil, fmt.Errorf("fetch blocks for page %s: %w", pageID, err)
		}

		blocks = append(blocks, resp.Results...)
		if !resp.HasMore || resp.NextCursor == nil {
			return blocks, nil
		}
		cursor = resp.NextCursor
	}
}

// AppendBlocks appends blocks to the end of a page.
func (c *Client) AppendBlocks(ctx context.Context, pageID string, blocks []Block) error {
	body := map[string]interface{}{"children": blocks}
	path := fmt.Sprintf("/blocks/%s/children", pageID)
	if err := c.do(ctx, http.MethodPatch, path, body, nil); err != nil {
		return fmt.Errorf("append blocks to page %s: %w", pageID, err)
	}
	return nil
}

// do performs one API request, encoding body as JSON when present and
// decoding the response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("notion API %s %s: status %d: %s", method, path, resp.StatusCode, data)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
