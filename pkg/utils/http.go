package utils

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// PathParam devolve o parâmetro de rota registrado no httprouter
func PathParam(r *http.Request, name string) string {
	return strings.TrimSpace(httprouter.ParamsFromContext(r.Context()).ByName(name))
}

// PathInt exige um identificador numérico positivo
func PathInt(r *http.Request, name string) (int, error) {
	raw := PathParam(r, name)
	if raw == "" {
		return 0, fmt.Errorf("parâmetro %s ausente", name)
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("parâmetro %s inválido: %q", name, raw)
	}

	return value, nil
}
