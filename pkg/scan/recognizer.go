package scan

import (
	"Smart-Expiry-Tracker/domain"
	"Smart-Expiry-Tracker/internal/utils"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

type (
	// Recognizer turns a label image into free-form text. The derivation
	// core never performs I/O itself; this is the boundary it sits behind.
	Recognizer interface {
		Recognize(ctx context.Context, image *multipart.FileHeader) (string, error)
	}

	httpRecognizer struct {
		client *http.Client
	}
)

// NewHTTPRecognizer talks to the external OCR service configured under
// OCR_SERVICE_URL.
func NewHTTPRecognizer() Recognizer {
	return &httpRecognizer{
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (r *httpRecognizer) Recognize(ctx context.Context, image *multipart.FileHeader) (string, error) {
	ocrServiceURL := utils.GetConfig("OCR_SERVICE_URL")
	if ocrServiceURL == "" {
		return "", fmt.Errorf("OCR_SERVICE_URL not configured")
	}

	file, err := image.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", image.Filename)
	if err != nil {
		return "", err
	}
	if _, err = part.Write(fileBytes); err != nil {
		return "", err
	}
	if err = writer.Close(); err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, ocrServiceURL, body)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: %s - %s", domain.ErrFailedRecognizeText, resp.Status, string(bodyBytes))
	}

	var ocrResponse struct {
		Success bool   `json:"success"`
		Text    string `json:"text"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&ocrResponse); err != nil {
		return "", err
	}

	if !ocrResponse.Success {
		return "", domain.ErrFailedRecognizeText
	}

	return ocrResponse.Text, nil
}
