package request

type GenerateSuperPromptRequest struct {
	Provider     string                 `json:"provider"`
	Task         string                 `json:"task"`
	CategoryID   string                 `json:"category_id"`
	CategoryName string                 `json:"category_name"`
	Tone         string                 `json:"tone"`
	Audience     string                 `json:"audience"`
	Questions    map[string]string      `json:"questions"`
	Metadata     map[string]interface{} `json:"metadata"`
}
