package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

const defaultAddress = "http://localhost:8080"

var serverAddr string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "memoctl",
	Short: "Command line client for the GoldenCity Memo API",
	Long: `memoctl talks to a running Memo API instance over HTTP.
It covers the full note lifecycle: create, list, get, update and delete.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Адрес сервера: флаг --addr, иначе SERVER_ADDRESS, иначе значение по умолчанию
	addr := os.Getenv("SERVER_ADDRESS")
	if addr == "" {
		addr = defaultAddress
	}
	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", addr, "Memo API base URL")
}

// apiRequest выполняет HTTP запрос к API с JSON телом (body может быть nil)
func apiRequest(method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, serverAddr+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	return client.Do(req)
}

// printResponse выводит тело ответа; ошибки API (4xx/5xx) идут в stderr
func printResponse(resp *http.Response) error {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		fmt.Fprintf(os.Stderr, "error (%d): %s\n", resp.StatusCode, bytes.TrimSpace(data))
		os.Exit(1)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		// Не JSON — выводим как есть
		fmt.Println(string(data))
		return nil
	}
	fmt.Println(pretty.String())
	return nil
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
