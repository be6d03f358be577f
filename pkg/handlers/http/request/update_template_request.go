package request

type UpdateTemplateRequest struct {
	Title      *string   `json:"title"`
	Category   *string   `json:"category"`
	Content    *string   `json:"content"`
	Tags       *[]string `json:"tags"`
	IsPublic   *bool     `json:"is_public"`
	IsFavorite *bool     `json:"is_favorite"`
}

func (r *UpdateTemplateRequest) HasUpdates() bool {
	return r.Title != nil || r.Category != nil || r.Content != nil ||
		r.Tags != nil || r.IsPublic != nil || r.IsFavorite != nil
}
