package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
)

type RemoteConfig struct {
	// HTTP client used to make requests to the server
	Client *http.Client
	// Server base URL. For example http://127.0.0.1:8000
	BaseURL string
}

func DefaultRemoteConfig() RemoteConfig {
	return RemoteConfig{
		Client: http.DefaultClient,
	}
}

// Remote talks to the recognition server over its REST boundary: the image
// goes up as a multipart upload to POST {base}/extract and the recognized
// text comes back as {"text": ...}. Failures arrive as {"error": ...}.
type Remote struct {
	config RemoteConfig
}

func NewRemote(config RemoteConfig) *Remote {
	if config.Client == nil {
		config.Client = http.DefaultClient
	}
	return &Remote{
		config: config,
	}
}

func (p *Remote) Extract(ctx context.Context, image io.Reader, filename string) (string, error) {
	imageBytes, err := io.ReadAll(image)
	if err != nil {
		return "", errors.Join(errors.New("failed to read image"), err)
	}

	detected := mimetype.Detect(imageBytes)
	if !p.IsMimeTypeSupported(detected.String()) {
		return "", &ErrMimeTypeNotSupported{MimeType: detected.String()}
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	imagePart, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", errors.Join(errors.New("failed to prepare multipart form data: failed to prepare image for sending as file"), err)
	}
	if _, err := io.Copy(imagePart, bytes.NewReader(imageBytes)); err != nil {
		return "", errors.Join(errors.New("failed to prepare multipart form data: failed to write image to multipart"), err)
	}
	if err := writer.Close(); err != nil {
		return "", errors.Join(errors.New("failed to prepare multipart form data: failed to finalize writer"), err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.config.BaseURL+"/extract", body)
	if err != nil {
		return "", errors.Join(errors.New("failed to prepare HTTP request"), err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := p.config.Client.Do(req)
	if err != nil {
		return "", errors.Join(errors.New("HTTP request to recognition server failed"), err)
	}
	defer resp.Body.Close()

	responseBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Join(errors.New("error while reading response body from recognition server"), err)
	}

	var responseData struct {
		Text  string `json:"text"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(responseBytes, &responseData); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return "", fmt.Errorf("bad status code from recognition server: status code %d", resp.StatusCode)
		}
		return "", errors.Join(errors.New("failed to unmarshall response from recognition server"), err)
	}

	if responseData.Error != "" {
		return "", fmt.Errorf("recognition server returned error: %s", responseData.Error)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("bad status code from recognition server: status code %d", resp.StatusCode)
	}

	return responseData.Text, nil
}

// The recognition server accepts PNG and JPEG scans only.
func (p *Remote) IsMimeTypeSupported(mimeType string) bool {
	return mimeType == "image/png" || mimeType == "image/jpeg"
}
