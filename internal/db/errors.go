package db

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"

	constraintVLANAddress = "unique_vlan_address"
	constraintIPv4Binding = "unique_ipv4_binding"
	constraintIPv6Binding = "unique_ipv6_binding"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func isUniqueViolation(err error, constraints ...string) bool {
	pgErr, ok := pgError(err)
	if !ok || pgErr.Code != uniqueViolation {
		return false
	}
	if len(constraints) == 0 {
		return true
	}
	for _, c := range constraints {
		if pgErr.ConstraintName == c {
			return true
		}
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == foreignKeyViolation
}

func parseUUID(id string) (pgtype.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return pgtype.UUID{}, err
	}

	return pgtype.UUID{Bytes: [16]byte(u), Valid: true}, nil
}

func uuidString(id pgtype.UUID) string {
	if !id.Valid {
		return ""
	}
	return uuid.UUID(id.Bytes).String()
}
