package integrator

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

const microsExponent = -6

// MicrosToUnits converte um valor em micro-unidades (1/1.000.000) para a unidade principal
func MicrosToUnits(micros int64) float64 {
	return decimal.New(micros, microsExponent).InexactFloat64()
}

// FractionalMicrosToUnits converte médias reportadas em micro-unidades com casas decimais
func FractionalMicrosToUnits(micros float64) float64 {
	return decimal.NewFromFloat(micros).Shift(microsExponent).InexactFloat64()
}

// Units mantém um valor que já está na unidade principal
func Units(value float64) float64 {
	return value
}

// StatusTable mapeia o status nativo da plataforma para o status canônico
type StatusTable map[string]domain.Status

// Map nunca falha: valores desconhecidos viram UNKNOWN
func (t StatusTable) Map(raw string) domain.Status {
	if status, ok := t[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return status
	}
	return domain.StatusUnknown
}

// Action é uma ação tipada reportada pela plataforma (ex: conversões por tipo)
type Action struct {
	ActionType string  `json:"action_type"`
	Value      Float64 `json:"value"`
}

// FirstActionValue retorna o valor da primeira ação cujo tipo é igual ao alvo,
// na ordem em que a plataforma enviou. Não soma nem escolhe o maior.
func FirstActionValue(actions []Action, target string) (float64, bool) {
	for _, action := range actions {
		if action.ActionType == target {
			return action.Value.Float64(), true
		}
	}
	return 0, false
}

// RatioROAS calcula receita / investimento, zero quando não há investimento
func RatioROAS(revenue, spend float64) float64 {
	if spend <= 0 || revenue <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(revenue / spend)
}

// GuardROAS zera o ROAS quando nem conversões nem investimento são positivos
func GuardROAS(roas float64, conversions int64, spend float64) float64 {
	if conversions <= 0 && spend <= 0 {
		return 0
	}
	if math.IsNaN(roas) || math.IsInf(roas, 0) || roas < 0 {
		return 0
	}
	return roas
}

// CostPer divide custo por quantidade, zero quando a quantidade não é positiva
func CostPer(cost float64, quantity int64) float64 {
	if quantity <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(cost / float64(quantity))
}

// StringPtr devolve nil para strings vazias
func StringPtr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
