// services/scan_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/fadhlanhapp/splitbill-backend/models"
	"github.com/fadhlanhapp/splitbill-backend/utils"
)

// Prompt sent with every bill image. The provider is expected to answer with
// a single JSON object.
const scanPrompt = `
Analyze this bill/receipt image and extract the following information in JSON format:
{
  "merchant_name": "name of the store/restaurant",
  "date": "transaction date (YYYY-MM-DD format)",
  "time": "transaction time (HH:MM format)",
  "items": [
    {
        "name": "item name",
        "quantity": "quantity",
        "price": "price per item",
        "total": "total price for this item"
    }
  ],
  "subtotal": "subtotal amount",
  "tax": "tax amount",
  "service_charge": "service charge if any",
  "discount": "discount amount if any",
  "total_amount": "final total amount",
  "payment_method": "cash/card/etc",
  "receipt_number": "receipt/transaction number"
}
Please extract as much information as possible. Respond with ONLY the JSON.
`

var jsonObjectPattern = regexp.MustCompile(`\{[\s\S]*\}`)

// ScanService proxies bill images to an external vision endpoint. The
// provider is opaque; only the generateContent wire shape is assumed.
type ScanService struct {
	apiURL string
	apiKey string
	client *http.Client
}

// NewScanService creates a new scan service. apiURL and apiKey come from
// configuration; every call is bounded by the scan timeout.
func NewScanService(apiURL, apiKey string) *ScanService {
	return &ScanService{
		apiURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{Timeout: utils.ScanTimeout},
	}
}

type scanResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Analyze sends the image to the vision endpoint and returns the parsed JSON
// the model extracted. A timeout is a 504 the caller may retry; other
// upstream failures are 502s.
func (s *ScanService) Analyze(ctx context.Context, req *models.ScanRequest) (map[string]interface{}, error) {
	if s.apiKey == "" || s.apiURL == "" {
		return nil, utils.NewInternalError("Scan service is not configured")
	}
	if req.MimeType == "" || req.Base64Image == "" {
		return nil, utils.NewBadRequestError("Missing required fields: mime_type and base64Image")
	}

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": scanPrompt},
					{
						"inline_data": map[string]interface{}{
							"mime_type": req.MimeType,
							"data":      req.Base64Image,
						},
					},
				},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, utils.NewInternalError("Failed to build scan request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s?key=%s", s.apiURL, s.apiKey), bytes.NewBuffer(body))
	if err != nil {
		return nil, utils.NewInternalError("Failed to build scan request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		var urlErr interface{ Timeout() bool }
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return nil, utils.NewUpstreamTimeoutError("Scan service timed out")
		}
		return nil, utils.NewUpstreamError("Scan service request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, utils.NewUpstreamError(fmt.Sprintf(
			"Scan service returned status %d: %s", resp.StatusCode, string(raw)))
	}

	var parsed scanResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, utils.NewUpstreamError("Invalid response from scan service")
	}

	var text string
	if len(parsed.Candidates) > 0 && len(parsed.Candidates[0].Content.Parts) > 0 {
		text = parsed.Candidates[0].Content.Parts[0].Text
	}
	if text == "" {
		return nil, utils.NewUpstreamError("Invalid response from scan service")
	}

	match := jsonObjectPattern.FindString(text)
	if match == "" {
		return nil, utils.NewUpstreamError("No JSON found in scan response")
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(match), &result); err != nil {
		return nil, utils.NewUpstreamError("Failed to parse JSON from scan response")
	}

	return result, nil
}
