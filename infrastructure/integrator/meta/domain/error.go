package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// IsTokenExpired verifica se o erro é de token expirado ou invalidado
func (e *ErrorResponse) IsTokenExpired() bool {
	// 190 é "token inválido"; 460, 463 e 467 são senha alterada, expirado e sessão inválida
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// FailureCode no formato "<code>/<subcode>"
func (e *ErrorResponse) FailureCode() string {
	return fmt.Sprintf("%d/%d", e.Error.Code, e.Error.ErrorSubcode)
}
