// Command snakegame runs the terminal snake game and its companion
// statistics services.
//
// It supports three modes:
//  1. "play" (default) – runs the interactive terminal game, optionally
//     broadcasting live state to spectators over HTTP/WebSocket
//  2. "serve" – runs the HTTP server exposing the stats REST API,
//     spectator WebSocket, and an /mcp HTTP endpoint, without a game
//  3. "stdio-mcp" – runs an MCP stdio server backed by an internal HTTP API
//
// Flags control host/port, the settings file, debug logging, and
// version output.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"snakegame/api"
	"snakegame/game/config"
	"snakegame/game/engine"
	"snakegame/game/loop"
	"snakegame/game/stats"
	"snakegame/terminal"
	"snakegame/transport/mcp"
	"snakegame/transport/websocket"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Snake Game"
)

// Configuration flags control how the game and its services start.
var (
	port       = flag.Int("port", 8080, "HTTP server port")
	host       = flag.String("host", "localhost", "HTTP server host")
	configPath = flag.String("config", getConfigPathDefault(), "Path to the settings file")
	debug      = flag.Bool("debug", false, "Enable debug logging")
	version    = flag.Bool("version", false, "Show version information")
	spectate   = flag.Bool("spectate", false, "Broadcast live game state over HTTP/WebSocket while playing")
)

// getConfigPathDefault returns the default settings file path. It first
// honors the SNAKE_CONFIG environment variable, then falls back to
// "configs/settings.json".
func getConfigPathDefault() string {
	if path := os.Getenv("SNAKE_CONFIG"); path != "" {
		return path
	}
	return "configs/settings.json"
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] [MODE]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "%s v%s\n\n", AppName, Version)
		fmt.Fprintf(os.Stderr, "Available modes:\n")
		fmt.Fprintf(os.Stderr, "  play             Run the interactive terminal game (default)\n")
		fmt.Fprintf(os.Stderr, "  serve, http      Run the stats HTTP server with API, WebSocket, and MCP endpoint\n")
		fmt.Fprintf(os.Stderr, "  stdio-mcp, mcp   Run the MCP stdio server\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                    # Play in the terminal\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -spectate play     # Play and broadcast to ws://localhost:8080/ws\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s serve -port 9090   # Serve the stats API on port 9090\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s stdio-mcp          # Run the MCP stdio server\n", os.Args[0])
	}
}

// main parses flags, loads configuration, and starts the selected mode.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	flag.Parse()

	// Show version if requested
	if *version {
		fmt.Printf("%s v%s\n", AppName, Version)
		os.Exit(0)
	}

	// Setup logging
	if *debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}

	// Determine mode from command
	args := flag.Args()
	mode := "play" // default
	if len(args) > 0 {
		mode = args[0]
	}

	cfg := config.NewManager(*configPath).Load()

	switch mode {
	case "play":
		runGame(cfg)

	case "serve", "server", "http":
		log.Printf("Starting %s v%s (mode: %s)", AppName, Version, mode)
		runHTTPServer(cfg, nil)

	case "stdio-mcp", "mcp-stdio", "mcp":
		runStdioMCPWithInternalServer(cfg)

	default:
		log.Fatalf("Unknown mode: %s. Use 'play' (default), 'serve', or 'stdio-mcp'", mode)
	}
}

// runGame runs the interactive terminal game until the player quits.
// With -spectate it also serves the stats API and broadcasts every tick
// to connected websocket spectators.
func runGame(cfg *engine.Config) {
	eng, err := engine.NewEngine(cfg)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	var store stats.Persistence
	if cfg.Data.SaveGameHistory {
		store = stats.NewFileStore(cfg.Data.StatsFile, cfg.Data.HighScoresFile)
	}

	screen, err := terminal.NewScreen(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize terminal: %v", err)
	}
	defer screen.Close()

	// Logging would corrupt the terminal UI while the game runs.
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	gameLoop := loop.New(eng, screen, screen, store)

	if *spectate {
		hub := websocket.NewHub()
		go hub.Run()
		gameLoop.AddObserver(hub.BroadcastSnapshot)

		addr := fmt.Sprintf("%s:%d", *host, *port)
		go func() {
			httpServer := &http.Server{
				Addr:         addr,
				Handler:      api.NewServer(store, cfg, hub),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("Spectator server error: %v", err)
			}
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	runErr := gameLoop.Run(ctx)
	screen.Close()
	log.SetOutput(os.Stderr)
	if runErr != nil {
		log.Fatalf("Game loop error: %v", runErr)
	}

	// The terminal is restored; show the player how the session went.
	if store != nil {
		if history := store.History(); len(history) > 0 {
			fmt.Print(stats.FormatSummary(stats.Summarize(history)))
		}
	}
}

// runHTTPServer starts the HTTP server with the stats REST API, the
// spectator WebSocket hub, and an /mcp proxy endpoint. If hub is nil a
// fresh hub is created (it will have no game feeding it).
func runHTTPServer(cfg *engine.Config, hub *websocket.Hub) {
	if hub == nil {
		hub = websocket.NewHub()
		go hub.Run()
	}

	store := stats.NewFileStore(cfg.Data.StatsFile, cfg.Data.HighScoresFile)
	apiServer := api.NewServer(store, cfg, hub)

	addr := fmt.Sprintf("%s:%d", *host, *port)

	// Create MCP client for /mcp endpoint
	baseURL := fmt.Sprintf("http://%s", addr)
	mcpClient := mcp.NewClient(baseURL)

	mainRouter := http.NewServeMux()
	mainRouter.Handle("/", apiServer)
	mainRouter.HandleFunc("/mcp", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := mcpClient.GetMCPServer().HandleMessage(r.Context(), body)

		w.Header().Set("Content-Type", "application/json")
		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Write(responseData)
	})

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mainRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Handle shutdown signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("HTTP server listening on %s", addr)
		log.Printf("REST API: http://%s/api", addr)
		log.Printf("WebSocket: ws://%s/ws", addr)
		log.Printf("MCP endpoint: http://%s/mcp", addr)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	sig := <-stop
	log.Printf("Received signal: %v. Shutting down...", sig)

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

// runStdioMCPWithInternalServer runs an MCP stdio server. It tries to
// reuse an external API at the configured address; if unavailable, it
// starts a minimal internal HTTP API bound to a random loopback port
// and targets that.
func runStdioMCPWithInternalServer(cfg *engine.Config) {
	var baseURL string

	externalURL := fmt.Sprintf("http://%s:%d", *host, *port)
	log.Printf("Checking for external API server at %s...", externalURL)

	testClient := &http.Client{Timeout: 2 * time.Second}
	resp, err := testClient.Get(externalURL + "/api/health")
	if err == nil && resp.StatusCode < 500 {
		resp.Body.Close()
		log.Printf("External API server found at %s, using it for MCP", externalURL)
		baseURL = externalURL
	} else {
		log.Printf("No external API server found, starting internal HTTP server")

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			log.Fatalf("Failed to get available port: %v", err)
		}

		internalAddr := listener.Addr().String()
		log.Printf("Starting internal HTTP server on %s for MCP stdio", internalAddr)

		store := stats.NewFileStore(cfg.Data.StatsFile, cfg.Data.HighScoresFile)
		httpServer := &http.Server{
			Handler: api.NewServer(store, cfg, nil),
		}

		go func() {
			if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
				log.Printf("Internal HTTP server error: %v", err)
			}
		}()

		// Wait a moment for the server to be ready
		time.Sleep(100 * time.Millisecond)

		baseURL = fmt.Sprintf("http://%s", internalAddr)
	}

	mcpClient := mcp.NewClient(baseURL)

	log.Println("MCP stdio server ready")
	if err := server.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		log.Fatalf("MCP stdio server error: %v", err)
	}
}
