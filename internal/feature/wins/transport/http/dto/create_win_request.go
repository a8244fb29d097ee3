// Package dto defines data transfer objects for the wins feature's HTTP transport layer.
package dto

// CreateWinReq represents the JSON request body for POST /wins.
// Title length is validated in the usecase so the error message is consistent
// between the JSON and multipart paths.
type CreateWinReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ProofURL    string `json:"proofUrl"`
}
