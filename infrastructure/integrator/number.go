package integrator

import (
	"bytes"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Int64 aceita números inteiros enviados como string JSON ("123") ou como número (123).
// Valores ausentes, nulos ou inválidos viram zero.
type Int64 int64

func (n *Int64) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			logrus.WithField("value", s).Warn("integrator: invalid integer value, using 0")
			*n = 0
			return nil
		}
		v = int64(math.Round(f))
	}

	*n = Int64(v)
	return nil
}

func (n Int64) Int64() int64 {
	return int64(n)
}

// Float64 aceita decimais enviados como string JSON ("1.5") ou como número (1.5).
type Float64 float64

func (f *Float64) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		logrus.WithField("value", s).Warn("integrator: invalid decimal value, using 0")
		*f = 0
		return nil
	}

	*f = Float64(v)
	return nil
}

func (f Float64) Float64() float64 {
	return float64(f)
}
