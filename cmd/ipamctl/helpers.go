package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	appdb "github.com/Flarenzy/ixp-ipam/internal/db"
	sqlcdb "github.com/Flarenzy/ixp-ipam/internal/db/sqlc"
	"github.com/Flarenzy/ixp-ipam/internal/domain"
)

type services struct {
	pool        *pgxpool.Pool
	network     domain.NetworkService
	allocations domain.AllocationService
}

func (s *services) Close() {
	s.pool.Close()
}

// requireDSN resolves the connection string from: --dsn flag > DB_CONN env > error.
func requireDSN() (string, error) {
	if dsn != "" {
		return dsn, nil
	}
	if v := os.Getenv("DB_CONN"); v != "" {
		return v, nil
	}
	return "", errors.New("database connection required: use --dsn or set DB_CONN")
}

func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	conn, err := requireDSN()
	if err != nil {
		return nil, err
	}
	return appdb.NewPool(ctx, conn)
}

func openServices(ctx context.Context) (*services, error) {
	pool, err := openPool(ctx)
	if err != nil {
		return nil, err
	}

	maxAllocation := domain.DefaultMaxAllocation
	if raw := os.Getenv("MAX_ALLOCATION_SIZE"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			pool.Close()
			return nil, fmt.Errorf("MAX_ALLOCATION_SIZE: invalid integer %q", raw)
		}
		maxAllocation = n
	}

	logger := slog.Default()
	queries := sqlcdb.New(pool)
	vlans := appdb.NewVLANRepository(queries)
	ips := appdb.NewIPRepository(queries)
	interfaces := appdb.NewInterfaceRepository(queries)

	return &services{
		pool:        pool,
		network:     domain.NewLoggingNetworkService(logger, domain.NewNetworkService(vlans, ips, interfaces)),
		allocations: domain.NewLoggingAllocationService(logger, domain.NewAllocationService(vlans, ips, maxAllocation)),
	}, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
