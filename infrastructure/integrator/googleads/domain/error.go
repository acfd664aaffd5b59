package googledomain

// ErrorResponse é o envelope de erro da API REST do Google Ads
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Status  string        `json:"status"`
	Details []ErrorDetail `json:"details"`
}

// ErrorDetail carrega a GoogleAdsFailure quando presente
type ErrorDetail struct {
	Type   string           `json:"@type"`
	Errors []GoogleAdsError `json:"errors"`
}

type GoogleAdsError struct {
	ErrorCode map[string]string `json:"errorCode"`
	Message   string            `json:"message"`
}

// FailureCode retorna o primeiro código específico do Google Ads (ex: "authorizationError:USER_PERMISSION_DENIED")
func (e *ErrorResponse) FailureCode() string {
	for _, detail := range e.Error.Details {
		for _, failure := range detail.Errors {
			for kind, code := range failure.ErrorCode {
				return kind + ":" + code
			}
		}
	}
	return ""
}

// FailureMessage retorna a mensagem mais específica disponível
func (e *ErrorResponse) FailureMessage() string {
	for _, detail := range e.Error.Details {
		for _, failure := range detail.Errors {
			if failure.Message != "" {
				return failure.Message
			}
		}
	}
	return e.Error.Message
}
