package repositories

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// RepositoryError е общият тип за сентинелни грешки на слоя.
type RepositoryError string

func (e RepositoryError) Error() string { return string(e) }

const (
	// ErrNotFound — записът не съществува.
	ErrNotFound RepositoryError = "записът не е намерен"
	// ErrTemplateReference — картичката сочи несъществуващ шаблон.
	// Класифицира се по Postgres код на грешката, не по текста ѝ.
	ErrTemplateReference RepositoryError = "избраният шаблон не съществува"
)

// classifyConstraintError превежда нарушение на външен ключ към типизирана
// грешка, така че горните слоеве да не зависят от текста на драйвера.
func classifyConstraintError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return ErrTemplateReference
	}
	return err
}
