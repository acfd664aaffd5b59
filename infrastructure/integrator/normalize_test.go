package integrator

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

func TestMicrosToUnits_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("micro-unidades divididas por um milhão", prop.ForAll(
		func(micros int64) bool {
			return math.Abs(MicrosToUnits(micros)-float64(micros)/1_000_000) <= 1e-9
		},
		gen.Int64Range(0, 1_000_000_000_000),
	))

	properties.Property("unidade principal não é alterada", prop.ForAll(
		func(value float64) bool {
			return Units(value) == value
		},
		gen.Float64Range(0, 1e9),
	))

	properties.TestingRun(t)
}

func TestMicrosToUnits(t *testing.T) {
	tests := []struct {
		name     string
		micros   int64
		expected float64
	}{
		{name: "Zero", micros: 0, expected: 0},
		{name: "Dois reais e cinquenta", micros: 2_500_000, expected: 2.5},
		{name: "Um micro", micros: 1, expected: 0.000001},
		{name: "Valor alto", micros: 123_456_789_012, expected: 123456.789012},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, MicrosToUnits(tt.micros), 1e-9)
		})
	}
}

func TestStatusTable_Map_Property(t *testing.T) {
	table := StatusTable{
		"ENABLED": domain.StatusActive,
		"PAUSED":  domain.StatusPaused,
		"REMOVED": domain.StatusRemoved,
	}
	allowed := map[domain.Status]bool{
		domain.StatusActive:  true,
		domain.StatusPaused:  true,
		domain.StatusRemoved: true,
		domain.StatusUnknown: true,
	}

	properties := gopter.NewProperties(nil)
	properties.Property("qualquer status mapeia para o conjunto canônico", prop.ForAll(
		func(raw string) bool {
			return allowed[table.Map(raw)]
		},
		gen.AnyString(),
	))
	properties.TestingRun(t)

	assert.Equal(t, domain.StatusActive, table.Map(" enabled "))
	assert.Equal(t, domain.StatusUnknown, table.Map("SOMETHING_NEW"))
	assert.Equal(t, domain.StatusUnknown, table.Map(""))
}

func TestFirstActionValue(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		target   string
		expected float64
		found    bool
	}{
		{
			name: "Primeira ocorrência vence, sem somar nem pegar o maior",
			actions: []Action{
				{ActionType: "view"},
				{ActionType: "purchase", Value: 5},
				{ActionType: "purchase", Value: 9},
			},
			target:   "purchase",
			expected: 5,
			found:    true,
		},
		{
			name:     "Sem correspondência retorna zero",
			actions:  []Action{{ActionType: "link_click", Value: 12}},
			target:   "purchase",
			expected: 0,
			found:    false,
		},
		{
			name:     "Lista vazia retorna zero",
			actions:  nil,
			target:   "purchase",
			expected: 0,
			found:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, found := FirstActionValue(tt.actions, tt.target)
			assert.Equal(t, tt.expected, value)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestGuardROAS(t *testing.T) {
	assert.Equal(t, 0.0, GuardROAS(3.2, 0, 0))
	assert.Equal(t, 0.0, GuardROAS(math.NaN(), 2, 10))
	assert.Equal(t, 0.0, GuardROAS(math.Inf(1), 2, 10))
	assert.Equal(t, 3.2, GuardROAS(3.2, 2, 10))
	assert.Equal(t, 0.0, RatioROAS(100, 0))
	assert.Equal(t, 2.5, RatioROAS(25, 10))
	assert.Equal(t, 0.0, CostPer(10, 0))
	assert.Equal(t, 3.33, CostPer(10, 3))
}

func TestNumbers_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Quoted   Int64   `json:"quoted"`
		Bare     Int64   `json:"bare"`
		Fraction Int64   `json:"fraction"`
		Invalid  Int64   `json:"invalid"`
		Null     Int64   `json:"null"`
		Decimal  Float64 `json:"decimal"`
		BareDec  Float64 `json:"bare_dec"`
		BadDec   Float64 `json:"bad_dec"`
		Missing  Float64 `json:"missing"`
	}

	err := json.Unmarshal([]byte(`{
		"quoted": "2500000",
		"bare": 42,
		"fraction": 9.6,
		"invalid": "abc",
		"null": null,
		"decimal": "12.34",
		"bare_dec": 0.0512,
		"bad_dec": "n/a"
	}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, int64(2500000), payload.Quoted.Int64())
	assert.Equal(t, int64(42), payload.Bare.Int64())
	assert.Equal(t, int64(10), payload.Fraction.Int64())
	assert.Equal(t, int64(0), payload.Invalid.Int64())
	assert.Equal(t, int64(0), payload.Null.Int64())
	assert.Equal(t, 12.34, payload.Decimal.Float64())
	assert.Equal(t, 0.0512, payload.BareDec.Float64())
	assert.Equal(t, 0.0, payload.BadDec.Float64())
	assert.Equal(t, 0.0, payload.Missing.Float64())
}

func TestVendorErrors(t *testing.T) {
	queryErr := NewQueryError(VendorGoogleAds, "PERMISSION_DENIED", "denied", "customer 1", 403)
	assert.True(t, IsVendorError(queryErr))
	assert.Contains(t, queryErr.Error(), "customer 1")

	authErr := NewAuthError(VendorMetaAds, "missing access token", nil)
	assert.True(t, IsVendorError(authErr))
	assert.False(t, IsVendorError(assert.AnError))
}

func TestFractionalMicrosToUnits(t *testing.T) {
	assert.InDelta(t, 0.0512345, FractionalMicrosToUnits(51234.5), 1e-12)
	assert.Equal(t, 0.0, FractionalMicrosToUnits(0))
}
