package db

import (
	"context"
	"fmt"
	"net/netip"

	sqlc "github.com/Flarenzy/ixp-ipam/internal/db/sqlc"
	"github.com/Flarenzy/ixp-ipam/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
)

type InterfaceRepository struct {
	queries *sqlc.Queries
}

func NewInterfaceRepository(queries *sqlc.Queries) *InterfaceRepository {
	return &InterfaceRepository{queries: queries}
}

func (r *InterfaceRepository) ListByVLAN(ctx context.Context, vlanID int64) ([]domain.VLANInterface, error) {
	rows, err := r.queries.ListVLANInterfacesByVLANID(ctx, vlanID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.VLANInterface, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainInterface(sqlc.GetVLANInterfaceByIDRow(row)))
	}

	return out, nil
}

func (r *InterfaceRepository) Create(ctx context.Context, vlanID int64, input domain.CreateInterfaceInput) (domain.VLANInterface, error) {
	ipv4ID, err := optionalUUID(input.IPv4AddressID)
	if err != nil {
		return domain.VLANInterface{}, err
	}
	ipv6ID, err := optionalUUID(input.IPv6AddressID)
	if err != nil {
		return domain.VLANInterface{}, err
	}

	id, err := r.queries.CreateVLANInterface(ctx, sqlc.CreateVLANInterfaceParams{
		VlanID:        vlanID,
		Hostname:      input.Hostname,
		Ipv4AddressID: ipv4ID,
		Ipv6AddressID: ipv6ID,
	})
	if err != nil {
		switch {
		case isUniqueViolation(err, constraintIPv4Binding, constraintIPv6Binding):
			return domain.VLANInterface{}, domain.ErrAddressInUse
		case isForeignKeyViolation(err):
			return domain.VLANInterface{}, domain.ErrAddressNotFound
		}
		return domain.VLANInterface{}, err
	}

	row, err := r.queries.GetVLANInterfaceByID(ctx, id)
	if err != nil {
		return domain.VLANInterface{}, err
	}

	return toDomainInterface(row), nil
}

func (r *InterfaceRepository) DeleteByIDAndVLAN(ctx context.Context, id domain.InterfaceID, vlanID int64) (bool, error) {
	parsedID, err := parseUUID(string(id))
	if err != nil {
		return false, fmt.Errorf("%w: invalid vlan interface id", domain.ErrInvalidInput)
	}

	deleted, err := r.queries.DeleteVLANInterfaceByUUIDAndVLANID(ctx, sqlc.DeleteVLANInterfaceByUUIDAndVLANIDParams{
		ID:     parsedID,
		VlanID: vlanID,
	})
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}

func optionalUUID(id domain.IPAddressID) (pgtype.UUID, error) {
	if id == "" {
		return pgtype.UUID{}, nil
	}
	parsed, err := parseUUID(string(id))
	if err != nil {
		return pgtype.UUID{}, fmt.Errorf("%w: invalid ip id %q", domain.ErrInvalidInput, id)
	}
	return parsed, nil
}

func toDomainInterface(row sqlc.GetVLANInterfaceByIDRow) domain.VLANInterface {
	return domain.VLANInterface{
		ID:            domain.InterfaceID(uuidString(row.ID)),
		VLANID:        row.VlanID,
		Hostname:      row.Hostname,
		IPv4AddressID: domain.IPAddressID(uuidString(row.Ipv4AddressID)),
		IPv4:          derefAddr(row.Ipv4Address),
		IPv6AddressID: domain.IPAddressID(uuidString(row.Ipv6AddressID)),
		IPv6:          derefAddr(row.Ipv6Address),
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}

func derefAddr(addr *netip.Addr) netip.Addr {
	if addr == nil {
		return netip.Addr{}
	}
	return *addr
}
