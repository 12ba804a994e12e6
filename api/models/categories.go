package models

import "github.com/Dailong90/fanta-claus/storage"

type CategoryCreateRequest struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Label  string `json:"label"`
	Points int    `json:"points"`
}

type CategoryUpdateRequest struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Points int    `json:"points"`
}

type CategoryResponse struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Label  string `json:"label"`
	Points int    `json:"points"`
}

func TransformCategoryFromStorage(c *storage.GiftCategory) CategoryResponse {
	return CategoryResponse{
		ID:     c.ID,
		Code:   c.Code,
		Label:  c.Label,
		Points: c.Points,
	}
}
