package qwen

const (
	DefaultModel = "qwen-plus"

	// DefaultBaseURL is DashScope's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	providerName = "qwen"
	roleSystem   = "system"
)
