package handler

// ProcessResponse carries the identifier assigned to a stored receipt.
type ProcessResponse struct {
	ID string `json:"id"`
}

// PointsResponse carries the computed reward score.
type PointsResponse struct {
	Points int64 `json:"points"`
}
