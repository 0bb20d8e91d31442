package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"harulog/internal/models"
)

// Chat sends the conversation so far to the per-diary reflection chat
// and returns the assistant's reply.
func (c *Client) Chat(ctx context.Context, diaryID int64, messages []models.ChatMessage) (string, error) {
	endpoint := fmt.Sprintf("%s/api/diaries/%d/chat", c.baseURL, diaryID)
	payload := map[string][]models.ChatMessage{"messages": messages}
	var result struct {
		Reply string `json:"reply"`
	}
	if err := c.sendJSON(ctx, http.MethodPost, endpoint, payload, &result); err != nil {
		return "", err
	}
	return result.Reply, nil
}

// MonthlyReport fetches the AI-written summary for one month.
func (c *Client) MonthlyReport(ctx context.Context, year, month int) (*models.MonthlyReport, error) {
	endpoint := fmt.Sprintf("%s/api/report/monthly?year=%d&month=%d", c.baseURL, year, month)
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	var report models.MonthlyReport
	if err := c.doJSON(req, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Statistics fetches the aggregated emotion statistics.
func (c *Client) Statistics(ctx context.Context) (*models.Statistics, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.baseURL+"/api/statistics", nil)
	if err != nil {
		return nil, err
	}
	var stats models.Statistics
	if err := c.doJSON(req, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Transcribe sends a recorded audio segment to the speech-to-text
// endpoint and returns the recognized text.
func (c *Client) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("failed to read audio: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL+"/api/stt", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result struct {
		Text string `json:"text"`
	}
	if err := c.doJSON(req, &result); err != nil {
		return "", err
	}
	return result.Text, nil
}
