// Package mcp exposes the game statistics over the Model Context
// Protocol as a thin proxy to the REST API.
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"snakegame/game/stats"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Snake Game Stats",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Snake Game - MCP Interface

This is a thin client that proxies all requests to the REST API server.

The snake game itself is played interactively in a terminal. These tools
give read access to the recorded statistics of past games.

AVAILABLE TOOLS:
- game_summary: Aggregate statistics over all recorded games
- high_scores: The top-ranked games
- recent_games: The most recently played games
- progress_report: Trend analysis and unlocked achievements
- game_rules: How the game is played and scored`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_summary",
		Description: "Get aggregate statistics over all recorded games",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleSummary)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "high_scores",
		Description: "Get the top-ranked games by score",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of entries to return (default: all, up to 10)",
				},
			},
		},
	}, c.handleHighScores)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "recent_games",
		Description: "Get the most recently played games",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of games to return (default: 10)",
				},
			},
		},
	}, c.handleRecentGames)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "progress_report",
		Description: "Get a trend analysis of recorded games and unlocked achievements",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleProgressReport)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_rules",
		Description: "Get the rules of the snake game: controls, scoring, and how sessions end",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameRules)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var summary stats.Summary
	err := c.apiCall("GET", "/api/summary", nil, &summary)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if summary.TotalGames == 0 {
		return mcp.NewToolResultText("No games recorded yet."), nil
	}

	result := fmt.Sprintf(`Game Summary:

Total games:     %d
Best score:      %d
Average score:   %.2f
Foods eaten:     %d
Total playtime:  %.0fs
Average game:    %.2fs
`,
		summary.TotalGames, summary.BestScore, summary.AverageScore,
		summary.TotalFoodsEaten, summary.TotalPlaytime, summary.AverageGameDuration)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleHighScores(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := "/api/highscores"
	if args, ok := request.Params.Arguments.(map[string]interface{}); ok {
		if limit, ok := args["limit"].(float64); ok && limit > 0 {
			path = fmt.Sprintf("%s?limit=%d", path, int(limit))
		}
	}

	var response struct {
		Count  int                   `json:"count"`
		Scores []stats.HighScoreEntry `json:"scores"`
	}
	err := c.apiCall("GET", path, nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if response.Count == 0 {
		return mcp.NewToolResultText("No high scores recorded yet."), nil
	}

	result := fmt.Sprintf("High Scores (%d):\n\n", response.Count)
	for i, entry := range response.Scores {
		result += fmt.Sprintf("%2d. score=%d length=%d foods=%d duration=%.1fs (%s)\n",
			i+1, entry.Score, entry.MaxLength, entry.FoodsEaten,
			entry.DurationSeconds, entry.Date.Format("2006-01-02"))
	}
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleRecentGames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := 10
	if args, ok := request.Params.Arguments.(map[string]interface{}); ok {
		if l, ok := args["limit"].(float64); ok && l > 0 {
			limit = int(l)
		}
	}

	var response struct {
		Count int                   `json:"count"`
		Games []stats.SessionRecord `json:"games"`
	}
	err := c.apiCall("GET", fmt.Sprintf("/api/history?order=desc&limit=%d", limit), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if response.Count == 0 {
		return mcp.NewToolResultText("No games recorded yet."), nil
	}

	result := fmt.Sprintf("Recent Games (%d):\n\n", response.Count)
	for _, game := range response.Games {
		result += fmt.Sprintf("- %s: score=%d length=%d moves=%d duration=%.1fs\n",
			game.StartTime.Format("2006-01-02 15:04"), game.Score,
			game.MaxLength, game.TotalMoves, game.DurationSeconds)
	}
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleProgressReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var report stats.Report
	err := c.apiCall("GET", "/api/report", nil, &report)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	trend := "holding steady"
	if report.Improving {
		trend = "improving"
	}

	result := fmt.Sprintf(`Progress Report:

Games played:    %d
Best score:      %d
Worst score:     %d
Average score:   %.2f (std dev %.2f)
Recent average:  %.2f (earlier: %.2f) - %s
`,
		report.Summary.TotalGames, report.Summary.BestScore, report.WorstScore,
		report.Summary.AverageScore, report.ScoreStdDev,
		report.RecentAverage, report.EarlierAverage, trend)

	if len(report.Achievements) > 0 {
		result += "\nAchievements:\n"
		for _, a := range report.Achievements {
			result += fmt.Sprintf("- %s\n", a)
		}
	}
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(`Snake Game Rules:

The snake moves continuously on a grid, one cell per tick. Arrow keys
or WASD steer it; reversing 180 degrees is ignored. Eating food grows
the snake by one segment, awards 10 points, and speeds the game up
slightly, down to a fixed minimum tick interval.

The session ends when the snake hits a wall or its own body. Space
pauses, r restarts after game over, q quits.

Every finished game is recorded with its score, peak length, duration,
and movement statistics. The top 10 games by score form the high-score
table.`), nil
}
