package repository

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// ErrDuplicate indica violação de chave única
var ErrDuplicate = errors.New("duplicate key")

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
