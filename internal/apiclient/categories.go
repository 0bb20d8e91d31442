package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"harulog/internal/models"
)

// ListCategories fetches all category labels.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.baseURL+"/api/categories", nil)
	if err != nil {
		return nil, err
	}
	var categories []models.Category
	if err := c.doJSON(req, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory adds a new category and returns it with its id.
func (c *Client) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	var created models.Category
	payload := map[string]string{"name": name}
	if err := c.sendJSON(ctx, http.MethodPost, c.baseURL+"/api/categories", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteCategory removes a category and returns how many diaries were
// deleted with it.
func (c *Client) DeleteCategory(ctx context.Context, id int64) (int, error) {
	endpoint := fmt.Sprintf("%s/api/categories/%d", c.baseURL, id)
	req, err := c.newRequest(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return 0, err
	}
	var result struct {
		DeletedDiaries int `json:"deleted_diaries"`
	}
	if err := c.doJSON(req, &result); err != nil {
		return 0, err
	}
	return result.DeletedDiaries, nil
}
