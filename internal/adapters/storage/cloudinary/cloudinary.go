package cloudinary

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Storage uploads images through Cloudinary's signed upload API.
type Storage struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
	httpClient *http.Client
}

func New(cloudName, apiKey, apiSecret, folder string) *Storage {
	return &Storage{
		cloudName:  cloudName,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		folder:     folder,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *Storage) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	// Cloudinary signs the sorted key=value pairs joined by '&'.
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + s.apiSecret))
	return hex.EncodeToString(sum[:])
}

type uploadResp struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Storage) Upload(ctx context.Context, data []byte, filename, contentType, folder string) (string, error) {
	if folder == "" {
		folder = s.folder
	}
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	publicID := strings.TrimSuffix(filename, path.Ext(filename))
	params := map[string]string{
		"folder":    folder,
		"public_id": publicID,
		"timestamp": timestamp,
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	for k, v := range params {
		if err := mw.WriteField(k, v); err != nil {
			return "", err
		}
	}
	if err := mw.WriteField("api_key", s.apiKey); err != nil {
		return "", err
	}
	if err := mw.WriteField("signature", s.sign(params)); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	endpoint := "https://api.cloudinary.com/v1_1/" + s.cloudName + "/image/upload"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	res, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		b, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("cloudinary upload status %d: %s", res.StatusCode, string(b))
	}
	var out uploadResp
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Error != nil {
		return "", fmt.Errorf("cloudinary upload: %s", out.Error.Message)
	}
	return out.SecureURL, nil
}

// Delete removes the asset behind a delivery URL. URLs that do not look like
// Cloudinary delivery URLs are ignored.
func (s *Storage) Delete(ctx context.Context, publicURL string) error {
	publicID, ok := publicIDFromURL(publicURL)
	if !ok {
		return nil
	}
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	}
	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	form.Set("api_key", s.apiKey)
	form.Set("signature", s.sign(params))

	endpoint := "https://api.cloudinary.com/v1_1/" + s.cloudName + "/image/destroy"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		b, _ := io.ReadAll(res.Body)
		return fmt.Errorf("cloudinary destroy status %d: %s", res.StatusCode, string(b))
	}
	return nil
}

// publicIDFromURL extracts "<folder>/<name>" from a delivery URL like
// https://res.cloudinary.com/<cloud>/image/upload/v123/<folder>/<name>.jpg
func publicIDFromURL(publicURL string) (string, bool) {
	u, err := url.Parse(publicURL)
	if err != nil || !strings.Contains(u.Host, "cloudinary.com") {
		return "", false
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	idx := -1
	for i, p := range parts {
		if p == "upload" {
			idx = i
			break
		}
	}
	if idx < 0 || idx+1 >= len(parts) {
		return "", false
	}
	rest := parts[idx+1:]
	if len(rest) > 0 && len(rest[0]) > 1 && rest[0][0] == 'v' {
		if _, err := strconv.Atoi(rest[0][1:]); err == nil {
			rest = rest[1:]
		}
	}
	if len(rest) == 0 {
		return "", false
	}
	id := strings.Join(rest, "/")
	return strings.TrimSuffix(id, path.Ext(id)), true
}
