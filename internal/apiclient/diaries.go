package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"harulog/internal/models"
)

// ErrPinRejected is returned when the backend refuses an unlock PIN.
// The locked content is never part of the response.
var ErrPinRejected = errors.New("pin rejected")

// CreateDiaryRequest is the write-screen submission payload.
type CreateDiaryRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CategoryID *int64 `json:"category_id"`
	Date       string `json:"date,omitempty"`
	Mood       string `json:"mood,omitempty"`
}

// ListDiaries fetches diaries, optionally server-filtered by a title
// substring and a category id (0 means no category filter).
func (c *Client) ListDiaries(ctx context.Context, query string, categoryID int64) ([]models.Diary, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if categoryID != 0 {
		params.Set("category_id", fmt.Sprintf("%d", categoryID))
	}
	endpoint := c.baseURL + "/api/diaries"
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	var diaries []models.Diary
	if err := c.doJSON(req, &diaries); err != nil {
		return nil, err
	}
	c.logger.Debug("Fetched diaries", zap.Int("count", len(diaries)))
	return diaries, nil
}

// CreateDiary submits a new entry. The backend schedules AI analysis
// asynchronously, so the returned record has no analysis yet.
func (c *Client) CreateDiary(ctx context.Context, req CreateDiaryRequest) (*models.Diary, error) {
	var created models.Diary
	if err := c.sendJSON(ctx, http.MethodPost, c.baseURL+"/api/diaries", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// TogglePin flips the pinned flag of a diary.
func (c *Client) TogglePin(ctx context.Context, id int64) error {
	endpoint := fmt.Sprintf("%s/api/diaries/%d/pin", c.baseURL, id)
	return c.sendJSON(ctx, http.MethodPatch, endpoint, nil, nil)
}

// LockDiary protects a diary behind a PIN.
func (c *Client) LockDiary(ctx context.Context, id int64, pin string) error {
	endpoint := fmt.Sprintf("%s/api/diaries/%d/lock", c.baseURL, id)
	return c.sendJSON(ctx, http.MethodPost, endpoint, map[string]string{"pin": pin}, nil)
}

// UnlockDiary asks the backend to verify a PIN. A wrong PIN yields
// ErrPinRejected; the PIN itself is not retained anywhere client-side.
func (c *Client) UnlockDiary(ctx context.Context, id int64, pin string) error {
	endpoint := fmt.Sprintf("%s/api/diaries/%d/unlock", c.baseURL, id)
	err := c.sendJSON(ctx, http.MethodPost, endpoint, map[string]string{"pin": pin}, nil)
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
			return ErrPinRejected
		}
	}
	return err
}

// UploadImage attaches an image to a diary via multipart upload and
// returns the updated record.
func (c *Client) UploadImage(ctx context.Context, diaryID int64, filename string, r io.Reader) (*models.Diary, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/upload?diary_id=%d", c.baseURL, diaryID)
	req, err := c.newRequest(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var updated models.Diary
	if err := c.doJSON(req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
