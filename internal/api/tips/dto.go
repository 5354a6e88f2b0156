package tips

type CreateTipRequest struct {
	Title           string `json:"title" binding:"required"`
	Content         string `json:"content" binding:"required"`
	Category        string `json:"category"`
	Sport           string `json:"sport"`
	ConfidenceLevel string `json:"confidence_level"`
}

// UpdateTipRequest carries the mutable fields only; counters, creator and
// timestamps never change through an edit.
type UpdateTipRequest struct {
	Title           string `json:"title" binding:"required"`
	Content         string `json:"content" binding:"required"`
	Category        string `json:"category"`
	Sport           string `json:"sport"`
	ConfidenceLevel string `json:"confidence_level"`
}
