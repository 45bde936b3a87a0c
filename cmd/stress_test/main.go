package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	defaultBaseURL = "http://localhost:3000"
	totalRequests  = 50
	requestTimeout = 5 * time.Second
)

type listedPart struct {
	ID    string `json:"_id"`
	Model string `json:"model"`
}

func main() {
	baseURL := os.Getenv("PARTSTORE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client := &http.Client{Timeout: requestTimeout}
	ctx := context.Background()

	// Tag this run so earlier data does not disturb the counts
	runID := uuid.NewString()

	var successCount atomic.Int32
	var failCount atomic.Int32

	// Spawn concurrent submits
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			if err := submit(ctx, client, baseURL, runID, n); err != nil {
				log.Printf("submit %d: %v", n, err)
				failCount.Add(1)
				return
			}
			successCount.Add(1)
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(start)

	parts, err := list(ctx, client, baseURL)
	if err != nil {
		log.Fatalf("failed to list parts: %v", err)
	}

	var ours []listedPart
	for _, p := range parts {
		if strings.HasPrefix(p.Model, runID+"-") {
			ours = append(ours, p)
		}
	}

	ordered := true
	for i := 1; i < len(parts); i++ {
		if parts[i-1].ID <= parts[i].ID {
			ordered = false
			break
		}
	}

	// Results
	success := successCount.Load()
	fail := failCount.Load()

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Failed:           %d\n", fail)
	fmt.Printf("Listed (run):     %d\n", len(ours))
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	// Assertions
	if success == totalRequests && len(ours) == totalRequests {
		fmt.Printf("PASS: all %d parts stored and listed\n", totalRequests)
	} else {
		fmt.Printf("FAIL: expected %d stored and listed, got %d/%d\n", totalRequests, success, len(ours))
	}

	if ordered {
		fmt.Println("PASS: listing is newest first")
	} else {
		fmt.Println("FAIL: listing is not in descending id order")
	}
}

func submit(ctx context.Context, client *http.Client, baseURL, runID string, n int) error {
	body, err := json.Marshal(map[string]any{
		"type":     "resistor",
		"brand":    "stress",
		"model":    fmt.Sprintf("%s-%d", runID, n),
		"quantity": n,
		"price":    0.01 * float64(n),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/submit", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func list(ctx context.Context, client *http.Client, baseURL string) ([]listedPart, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/parts", nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var parts []listedPart
	if err := json.NewDecoder(resp.Body).Decode(&parts); err != nil {
		return nil, err
	}
	return parts, nil
}
