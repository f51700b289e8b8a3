// Replays one payment callback concurrently against a running server and
// checks that the buyer is credited once. The order must already be paid
// in Razorpay test mode; pass its order and payment ids.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/Akilan7123/DreamPixel/internal/domain/usecase/transaction"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/api/dto"
)

// TestResult contains metrics for a single request
type TestResult struct {
	Forged       bool
	StatusCode   int
	Message      string
	ResponseTime time.Duration
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests   int
	StatusCounts    map[int]int
	MessageCounts   map[string]int
	ForgedAccepted  int
	ResponseTimes   []time.Duration
	TotalTime       time.Duration
	CreditsBefore   int64
	CreditsAfter    int64
	TransportErrors map[string]int
	Lock            sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 8, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 50, "Total number of callback deliveries")
	forgedEvery := flag.Int("forged", 5, "Send a forged signature every N requests, 0 disables")
	baseURL := flag.String("url", "http://localhost:4000", "Base URL for the API")
	token := flag.String("token", "", "Session token of the buyer")
	orderID := flag.String("order", "", "Razorpay order id of a paid order")
	paymentID := flag.String("payment", "", "Razorpay payment id for that order")
	secret := flag.String("secret", os.Getenv("RAZORPAY_KEY_SECRET"), "Gateway key secret used to sign callbacks")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	if *token == "" || *orderID == "" || *paymentID == "" || *secret == "" {
		fmt.Println("token, order, payment and secret are required")
		flag.Usage()
		os.Exit(2)
	}

	client := &http.Client{Timeout: 30 * time.Second}

	before, err := fetchCredits(client, *baseURL, *token)
	if err != nil {
		fmt.Printf("Failed to read credits: %v\n", err)
		os.Exit(1)
	}

	signature := transaction.ComputeSignature(*orderID, *paymentID, *secret)

	fmt.Printf("Replaying callback for order %s\n", *orderID)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total deliveries: %d\n", *totalRequests)
	fmt.Printf("Credits before: %d\n", before)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		StatusCounts:    make(map[int]int),
		MessageCounts:   make(map[string]int),
		TransportErrors: make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		CreditsBefore:   before,
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for jobID := range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				forged := *forgedEvery > 0 && jobID%*forgedEvery == *forgedEvery-1
				sig := signature
				if forged {
					sig = transaction.ComputeSignature(*orderID, *paymentID, "not-the-secret")
				}
				results <- deliver(client, *baseURL, *token, dto.VerifyPaymentRequest{
					OrderID:   *orderID,
					PaymentID: *paymentID,
					Signature: sig,
				}, forged)
			}
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	startTime := time.Now()
	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		stats.Lock.Lock()
		if result.Error != nil {
			stats.TransportErrors[result.Error.Error()]++
		} else {
			stats.StatusCounts[result.StatusCode]++
			stats.MessageCounts[result.Message]++
			if result.Forged && result.StatusCode < 300 {
				stats.ForgedAccepted++
			}
		}
		stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
		stats.Lock.Unlock()
	}
	stats.TotalTime = time.Since(startTime)

	after, err := fetchCredits(client, *baseURL, *token)
	if err != nil {
		fmt.Printf("Failed to read credits: %v\n", err)
		os.Exit(1)
	}
	stats.CreditsAfter = after

	if !printResults(stats) {
		os.Exit(1)
	}
}

func deliver(client *http.Client, baseURL, token string, body dto.VerifyPaymentRequest, forged bool) TestResult {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return TestResult{Forged: forged, Error: err}
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/user/verify-razor", bytes.NewReader(jsonData))
	if err != nil {
		return TestResult{Forged: forged, Error: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("token", token)

	startTime := time.Now()
	resp, err := client.Do(req)
	result := TestResult{Forged: forged, ResponseTime: time.Since(startTime)}
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		result.Message = payload.Message
	}
	return result
}

func fetchCredits(client *http.Client, baseURL, token string) (int64, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/user/credits", nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("token", token)

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	var credits dto.CreditsResponse
	if err := json.NewDecoder(resp.Body).Decode(&credits); err != nil {
		return 0, err
	}
	return credits.Credits, nil
}

// printResults reports the run and whether the balance moved at most one plan's worth
func printResults(stats *TestStats) bool {
	var p50, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sorted := make([]time.Duration, len(stats.ResponseTimes))
		copy(sorted, stats.ResponseTimes)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		p50 = sorted[len(sorted)*50/100]
		p99 = sorted[len(sorted)*99/100]
	}

	fmt.Println("\n================= REPLAY RESULTS =================")
	fmt.Printf("Total Deliveries:    %d\n", stats.TotalRequests)
	fmt.Printf("Total Time:          %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- STATUS CODES -----------------")
	for code, count := range stats.StatusCounts {
		fmt.Printf("%d: %d\n", code, count)
	}

	fmt.Println("\n----------------- MESSAGES -----------------")
	for msg, count := range stats.MessageCounts {
		fmt.Printf("%-40s: %d\n", msg, count)
	}

	if len(stats.TransportErrors) > 0 {
		fmt.Println("\n----------------- TRANSPORT ERRORS -----------------")
		for msg, count := range stats.TransportErrors {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}

	credited := stats.MessageCounts[transaction.MessageCreditsAdded]
	delta := stats.CreditsAfter - stats.CreditsBefore

	fmt.Println("\n================= CONCLUSION =================")
	fmt.Printf("Credits before/after: %d -> %d (delta %d)\n", stats.CreditsBefore, stats.CreditsAfter, delta)
	ok := true
	if credited > 1 {
		fmt.Printf("❌ %d deliveries reported %q\n", credited, transaction.MessageCreditsAdded)
		ok = false
	}
	if stats.ForgedAccepted > 0 {
		fmt.Printf("❌ %d forged signatures were accepted\n", stats.ForgedAccepted)
		ok = false
	}
	if credited == 0 && delta != 0 {
		fmt.Println("❌ balance moved without a crediting delivery")
		ok = false
	}
	if ok {
		fmt.Println("✅ callback settled at most once")
	}
	fmt.Println("================================================")
	return ok
}
