package db

import (
	"errors"

	"github.com/lib/pq"
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeExclusionViolation  = "23P01"
)

func pqCode(err error) (pq.ErrorCode, string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code, pqErr.Constraint, true
	}
	return "", "", false
}

func IsUniqueViolation(err error) bool {
	code, _, ok := pqCode(err)
	return ok && code == codeUniqueViolation
}

func IsExclusionViolation(err error) bool {
	code, _, ok := pqCode(err)
	return ok && code == codeExclusionViolation
}

func IsForeignKeyViolation(err error) bool {
	code, _, ok := pqCode(err)
	return ok && code == codeForeignKeyViolation
}

// ViolatesConstraint reports whether err was raised by the named constraint or index.
func ViolatesConstraint(err error, name string) bool {
	_, constraint, ok := pqCode(err)
	return ok && constraint == name
}
