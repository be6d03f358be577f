package request

type CreateTemplateRequest struct {
	Title      string   `json:"title"`
	Category   string   `json:"category"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	IsPublic   bool     `json:"is_public"`
	IsFavorite bool     `json:"is_favorite"`
}
