package models

import "github.com/Dailong90/fanta-claus/storage"

type GiftPutRequest struct {
	SantaOwnerID    string  `json:"santa_owner_id"`
	ReceiverOwnerID *string `json:"receiver_owner_id"`
	CategoryID      string  `json:"category_id"`
	BonusPoints     *int    `json:"bonus_points"` // nil defaults to 0
}

type GiftResponse struct {
	SantaOwnerID    string  `json:"santa_owner_id"`
	ReceiverOwnerID *string `json:"receiver_owner_id"`
	CategoryID      string  `json:"category_id"`
	BonusPoints     int     `json:"bonus_points"`
}

func TransformGiftFromStorage(g *storage.Gift) GiftResponse {
	return GiftResponse{
		SantaOwnerID:    g.SantaOwnerID,
		ReceiverOwnerID: g.ReceiverOwnerID,
		CategoryID:      g.CategoryID,
		BonusPoints:     g.BonusPoints,
	}
}
