package models

// ScanRequest is the body of POST /api/scan.
type ScanRequest struct {
	MimeType    string `json:"mime_type"`
	Base64Image string `json:"base64Image"`
}
