// Package main provides a utility script that smoke tests the public intake endpoints
// of a running server. It can be run with: go run ./scripts/api_verification
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
)

const (
	baseURLEnvVar  = "API_BASE_URL"
	defaultBaseURL = "http://localhost:3000"
)

type EndpointTest struct {
	Name           string
	Method         string
	Path           string
	RequestBody    interface{}
	ExpectedStatus int
}

func main() {
	baseURL := os.Getenv(baseURLEnvVar)
	if baseURL == "" {
		baseURL = defaultBaseURL
		fmt.Printf("No %s environment variable found, using default: %s\n", baseURLEnvVar, defaultBaseURL)
	}

	fmt.Println("Travel Intake API Verification Tool")
	fmt.Println("===================================")
	fmt.Printf("Target API: %s\n\n", baseURL)

	client := &http.Client{Timeout: 10 * time.Second}
	passed, total := runChecks(client, baseURL, intakeEndpoints(uuid.NewString()))

	fmt.Println("\nTest Summary:")
	fmt.Printf("Passed: %d/%d\n", passed, total)

	if passed != total {
		fmt.Println("Some endpoints failed testing.")
		os.Exit(1)
	}
	fmt.Println("All tested endpoints are working as expected!")
}

// intakeEndpoints lists the checks. The newsletter address embeds runID so the
// first subscription succeeds against a long-running server.
func intakeEndpoints(runID string) []EndpointTest {
	email := fmt.Sprintf("smoke-%s@example.com", runID)
	return []EndpointTest{
		{Name: "Health Check", Method: http.MethodGet, Path: "/health", ExpectedStatus: http.StatusOK},
		{Name: "Liveness Check", Method: http.MethodGet, Path: "/health/liveness", ExpectedStatus: http.StatusOK},
		{Name: "Readiness Check", Method: http.MethodGet, Path: "/health/readiness", ExpectedStatus: http.StatusOK},
		{Name: "List Packages", Method: http.MethodGet, Path: "/api/packages", ExpectedStatus: http.StatusOK},
		{Name: "Get Package", Method: http.MethodGet, Path: "/api/packages/2", ExpectedStatus: http.StatusOK},
		{Name: "Unknown Package", Method: http.MethodGet, Path: "/api/packages/99", ExpectedStatus: http.StatusNotFound},
		{Name: "Create Booking", Method: http.MethodPost, Path: "/api/bookings", ExpectedStatus: http.StatusCreated,
			RequestBody: map[string]string{
				"name":        "Smoke Test",
				"email":       email,
				"datetime":    "2999-01-01T00:00",
				"destination": "Alleppey",
			}},
		{Name: "Invalid Booking Email", Method: http.MethodPost, Path: "/api/bookings", ExpectedStatus: http.StatusBadRequest,
			RequestBody: map[string]string{
				"name":        "Smoke Test",
				"email":       "not-an-email",
				"datetime":    "2999-01-01T00:00",
				"destination": "Alleppey",
			}},
		{Name: "List Bookings", Method: http.MethodGet, Path: "/api/bookings", ExpectedStatus: http.StatusOK},
		{Name: "Send Contact Message", Method: http.MethodPost, Path: "/api/contact", ExpectedStatus: http.StatusCreated,
			RequestBody: map[string]string{
				"name":    "Smoke Test",
				"email":   email,
				"subject": "Smoke test",
				"message": "Checking the contact form",
			}},
		{Name: "Subscribe", Method: http.MethodPost, Path: "/api/newsletter", ExpectedStatus: http.StatusCreated,
			RequestBody: map[string]string{"email": email}},
		{Name: "Duplicate Subscription", Method: http.MethodPost, Path: "/api/newsletter", ExpectedStatus: http.StatusBadRequest,
			RequestBody: map[string]string{"email": email}},
		{Name: "Unknown Route", Method: http.MethodGet, Path: "/api/nowhere", ExpectedStatus: http.StatusNotFound},
	}
}

// runChecks executes every test in order and returns how many passed.
func runChecks(client *http.Client, baseURL string, tests []EndpointTest) (int, int) {
	successCount := 0
	for _, test := range tests {
		fmt.Printf("Testing %s... ", test.Name)

		success, statusCode, _ := testEndpoint(client, baseURL, test)
		if success {
			successCount++
			fmt.Printf("OK (HTTP %d)\n", statusCode)
		} else {
			fmt.Printf("FAILED (HTTP %d, expected %d)\n", statusCode, test.ExpectedStatus)
		}
	}
	return successCount, len(tests)
}

func testEndpoint(client *http.Client, baseURL string, test EndpointTest) (bool, int, string) {
	var body io.Reader
	if test.RequestBody != nil {
		jsonBody, err := json.Marshal(test.RequestBody)
		if err != nil {
			return false, 0, fmt.Sprintf("Error encoding body: %v", err)
		}
		body = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(test.Method, baseURL+test.Path, body)
	if err != nil {
		return false, 0, fmt.Sprintf("Error creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return false, 0, fmt.Sprintf("Error executing request: %v", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	return resp.StatusCode == test.ExpectedStatus, resp.StatusCode, string(respBody)
}
