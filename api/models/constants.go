package models

// Alphabet used for generated player access codes.
var Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
