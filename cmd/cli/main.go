package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/tbrown320/compliance-cicd-pipeline/internal/logger"
)

const defaultAddr = "http://localhost:5000"

func main() {
	log := logger.New()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "create":
		runCreate(log)
	case "get":
		runGet(log)
	case "list":
		runList(log)
	case "delete":
		runDelete(log)
	case "report":
		runReport(log)
	case "health":
		runHealth(log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Compliance API CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  cli <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  create    Submit a compliance transaction")
	fmt.Println("  get       Retrieve a transaction by id")
	fmt.Println("  list      List all stored transactions")
	fmt.Println("  delete    Delete a transaction by id")
	fmt.Println("  report    Fetch the compliance summary report")
	fmt.Println("  health    Check service health")
	fmt.Println("  help      Show this help message")
	fmt.Println("\nRun 'cli <command> -h' for more information on a command.")
}

func addrFlag(fs *flag.FlagSet) *string {
	addr := defaultAddr
	if v := os.Getenv("COMPLIANCE_API_URL"); v != "" {
		addr = v
	}
	return fs.String("addr", addr, "Base URL of the compliance API")
}

func runCreate(log zerolog.Logger) {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	addr := addrFlag(fs)
	data := fs.String("data", "", "Transaction payload as inline JSON")
	file := fs.String("file", "", "Path to a JSON file with the transaction payload")
	fs.Parse(os.Args[2:])

	var payload []byte
	switch {
	case *data != "":
		payload = []byte(*data)
	case *file != "":
		raw, err := os.ReadFile(*file)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read payload file")
		}
		payload = raw
	default:
		log.Fatal().Msg("Usage: cli create -data JSON | -file PATH")
	}

	body := request(log, http.MethodPost, *addr+"/api/compliance/transactions",
		bytes.NewReader(payload))
	printJSON(body)
}

func runGet(log zerolog.Logger) {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	addr := addrFlag(fs)
	id := fs.String("id", "", "Transaction id")
	fs.Parse(os.Args[2:])

	if *id == "" {
		log.Fatal().Msg("Error: -id is required")
	}

	body := request(log, http.MethodGet, *addr+"/api/compliance/transactions/"+*id, nil)
	printJSON(body)
}

func runList(log zerolog.Logger) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	addr := addrFlag(fs)
	fs.Parse(os.Args[2:])

	body := request(log, http.MethodGet, *addr+"/api/compliance/transactions", nil)

	var listing struct {
		Count        int              `json:"count"`
		Transactions []map[string]any `json:"transactions"`
	}
	if err := json.Unmarshal(body, &listing); err != nil {
		log.Fatal().Err(err).Msg("Failed to decode response")
	}

	fmt.Printf("\n=== Transactions (%d) ===\n", listing.Count)
	for i, tx := range listing.Transactions {
		fmt.Printf("\n%d. %v\n", i+1, tx["transaction_id"])
		fmt.Printf("   Amount:  %v\n", tx["amount"])
		fmt.Printf("   Status:  %v\n", tx["status"])
		fmt.Printf("   Created: %v\n", tx["created_at"])
	}
	fmt.Println()
}

func runDelete(log zerolog.Logger) {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	addr := addrFlag(fs)
	id := fs.String("id", "", "Transaction id")
	fs.Parse(os.Args[2:])

	if *id == "" {
		log.Fatal().Msg("Error: -id is required")
	}

	body := request(log, http.MethodDelete, *addr+"/api/compliance/transactions/"+*id, nil)
	printJSON(body)
}

func runReport(log zerolog.Logger) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	addr := addrFlag(fs)
	fs.Parse(os.Args[2:])

	body := request(log, http.MethodGet, *addr+"/api/compliance/report", nil)
	printJSON(body)
}

func runHealth(log zerolog.Logger) {
	fs := flag.NewFlagSet("health", flag.ExitOnError)
	addr := addrFlag(fs)
	fs.Parse(os.Args[2:])

	body := request(log, http.MethodGet, *addr+"/health", nil)
	printJSON(body)
}

// request performs one API call and returns the response body. Non-2xx
// responses are fatal after printing the server's error body.
func request(log zerolog.Logger, method, url string, body io.Reader) []byte {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatal().Err(err).Str("url", url).Msg("Request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read response")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		printJSON(raw)
		log.Fatal().Int("status", resp.StatusCode).Str("url", url).Msg("API error")
	}
	return raw
}

func printJSON(raw []byte) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(buf.String())
}
