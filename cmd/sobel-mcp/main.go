package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/sobel-edge-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("sobel-edge-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("sobel-edge-mcp - MCP server for Sobel gradient analysis")
			fmt.Println()
			fmt.Println("Usage: sobel-edge-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  SOBEL_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println("  SOBEL_MCP_PARALLEL=1         Split Sobel passes across goroutines")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	parallel := parallelEnabled(os.Getenv("SOBEL_MCP_PARALLEL"))

	logLevel := os.Getenv("SOBEL_MCP_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("Sobel MCP Server v%s (built %s, commit %s, parallel %t)", Version, BuildTime, GitCommit, parallel)
	}

	srv := server.New(server.WithParallel(parallel))
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// parallelEnabled reports whether an environment value switches row
// parallelism on. It accepts strconv.ParseBool spellings plus yes/on.
func parallelEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "on":
		return true
	}
	enabled, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && enabled
}
