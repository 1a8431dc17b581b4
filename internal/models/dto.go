package models

// Data Transfer Objects

const (
	ServiceTypePlagiarism  = "plagiarism"
	ServiceTypeAIDetection = "ai_detection"
	ServiceTypeRephrasing  = "rephrasing"
)

// ServiceResult — итог обращения к одному внешнему сервису.
// Заполнено либо result, либо error, но не оба сразу.
type ServiceResult struct {
	ServiceName string                 `json:"service_name"`
	ServiceType string                 `json:"service_type"`
	Success     bool                   `json:"success"`
	Result      map[string]interface{} `json:"result"`
	Error       *string                `json:"error"`
}

func NewSuccessResult(name, serviceType string, payload map[string]interface{}) ServiceResult {
	return ServiceResult{
		ServiceName: name,
		ServiceType: serviceType,
		Success:     true,
		Result:      payload,
	}
}

func NewErrorResult(name, serviceType string, err error) ServiceResult {
	msg := err.Error()
	return ServiceResult{
		ServiceName: name,
		ServiceType: serviceType,
		Success:     false,
		Error:       &msg,
	}
}

type CheckResponse struct {
	Summary            string          `json:"summary"`
	PlagiarismResults  []ServiceResult `json:"plagiarism_results"`
	AIDetectionResults []ServiceResult `json:"ai_detection_results"`
	OriginalText       string          `json:"original_text"`
}

type RephraseResponse struct {
	Summary            string          `json:"summary"`
	RephrasedText      string          `json:"rephrased_text"`
	PlagiarismResults  []ServiceResult `json:"plagiarism_results"`
	AIDetectionResults []ServiceResult `json:"ai_detection_results"`
	OriginalText       string          `json:"original_text"`
}
