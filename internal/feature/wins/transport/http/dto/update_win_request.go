package dto

// UpdateWinReq はPUT /wins/:idの部分更新リクエストボディを表します。
// nilのフィールドは「変更しない」を意味します。
type UpdateWinReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	ProofURL    *string `json:"proofUrl"`
}
