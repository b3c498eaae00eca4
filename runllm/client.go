// Package runllm implements the documentation service client over HTTP.
package runllm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fwojciec/autodoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ autodoc.Client = (*Client)(nil)

// Client talks to a RunLLM documentation server.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the server at baseURL, authenticating every
// request with apiKey.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
}

// APIError is a non-success response from the server.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed with status code %d. Response: %s", e.StatusCode, e.Body)
}

// ListRepositories returns all repositories visible to the API key.
func (c *Client) ListRepositories(ctx context.Context) ([]autodoc.Repository, error) {
	var repos []autodoc.Repository
	if err := c.do(ctx, http.MethodGet, "/api/repositories", nil, nil, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// CreateRepository registers a new repository by owner-qualified name.
func (c *Client) CreateRepository(ctx context.Context, name string) (*autodoc.Repository, error) {
	body := struct {
		Name string `json:"name"`
	}{Name: name}
	var repo autodoc.Repository
	if err := c.do(ctx, http.MethodPost, "/api/repository", nil, body, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

// CreateRun registers a documentation run for the given file paths.
func (c *Client) CreateRun(ctx context.Context, repoID int, actionURL string, filePaths []string) (*autodoc.RunInfo, error) {
	body := struct {
		RepoID      int      `json:"repo_id"`
		GHActionURL string   `json:"gh_action_url"`
		FilePaths   []string `json:"file_paths"`
	}{RepoID: repoID, GHActionURL: actionURL, FilePaths: filePaths}
	var info autodoc.RunInfo
	if err := c.do(ctx, http.MethodPost, "/api/autodoc", nil, body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Generate requests documentation for a single file.
func (c *Client) Generate(ctx context.Context, runID int, filePath string, req autodoc.GenerateRequest) (*autodoc.Generation, error) {
	body := struct {
		OutputMode  string `json:"output_mode"`
		FileContent string `json:"file_content"`
		Language    string `json:"language"`
		Changes     string `json:"changes,omitempty"`
	}{
		OutputMode:  string(req.Mode),
		FileContent: req.FileContent,
		Language:    req.Language,
		Changes:     req.Changes,
	}
	query := url.Values{"file_path": {filePath}}
	var gen autodoc.Generation
	if err := c.do(ctx, http.MethodPost, "/api/autodoc/"+strconv.Itoa(runID), query, body, &gen); err != nil {
		return nil, err
	}
	return &gen, nil
}

// Explain requests a natural-language summary of the whole change set.
func (c *Client) Explain(ctx context.Context, runID int, mode autodoc.OutputMode, changes string) (*autodoc.Explanation, error) {
	body := struct {
		OutputMode string `json:"output_mode"`
		Changes    string `json:"changes"`
	}{OutputMode: string(mode), Changes: changes}
	var exp autodoc.Explanation
	if err := c.do(ctx, http.MethodPost, "/api/autodoc/"+strconv.Itoa(runID)+"/explanation", nil, body, &exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

// MarkSucceeded reports the terminal Succeeded status with a pull request URL.
func (c *Client) MarkSucceeded(ctx context.Context, runID int, pullRequestURL string) error {
	body := struct {
		Status         string `json:"status"`
		PullRequestURL string `json:"pull_request_url"`
	}{Status: "Succeeded", PullRequestURL: pullRequestURL}
	return c.do(ctx, http.MethodPut, "/api/autodoc/"+strconv.Itoa(runID), nil, body, nil)
}

// MarkFailed reports the terminal Failed status with an error message.
func (c *Client) MarkFailed(ctx context.Context, runID int, message string) error {
	body := struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}{Status: "Failed", Error: message}
	return c.do(ctx, http.MethodPut, "/api/autodoc/"+strconv.Itoa(runID), nil, body, nil)
}

// do executes one request. Any non-200 response is an *APIError carrying the
// status code and response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}
