package request

type ImprovePromptRequest struct {
	Prompt string `json:"prompt"`
}
