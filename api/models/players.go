package models

import "github.com/Dailong90/fanta-claus/storage"

type LoginRequest struct {
	Code string `json:"code"`
}

type LoginResponse struct {
	OK       bool   `json:"ok"`
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"isAdmin"`
}

type PlayerResponse struct {
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

// PlayerAdminResponse includes the access code; only admin endpoints use it.
type PlayerAdminResponse struct {
	OwnerID    string `json:"owner_id"`
	Name       string `json:"name"`
	AccessCode string `json:"access_code"`
	IsAdmin    bool   `json:"is_admin"`
}

type PlayerCreateRequest struct {
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

func TransformPlayerFromStorage(p *storage.Player) PlayerResponse {
	return PlayerResponse{
		OwnerID: p.OwnerID,
		Name:    p.Name,
		IsAdmin: p.IsAdmin,
	}
}

func TransformPlayerForAdmin(p *storage.Player) PlayerAdminResponse {
	return PlayerAdminResponse{
		OwnerID:    p.OwnerID,
		Name:       p.Name,
		AccessCode: p.AccessCode,
		IsAdmin:    p.IsAdmin,
	}
}

func TransformPlayerToLoginResponse(p *storage.Player) LoginResponse {
	name := p.Name
	if name == "" {
		name = p.OwnerID
	}
	return LoginResponse{
		OK:       true,
		PlayerID: p.OwnerID,
		Name:     name,
		IsAdmin:  p.IsAdmin,
	}
}
