package db

import (
	"context"
	"fmt"
	"net/netip"

	sqlc "github.com/Flarenzy/ixp-ipam/internal/db/sqlc"
	"github.com/Flarenzy/ixp-ipam/internal/domain"
	"github.com/Flarenzy/ixp-ipam/internal/netseq"
	"github.com/jackc/pgx/v5/pgtype"
)

type IPRepository struct {
	queries *sqlc.Queries
}

func NewIPRepository(queries *sqlc.Queries) *IPRepository {
	return &IPRepository{queries: queries}
}

func (r *IPRepository) ListByVLAN(ctx context.Context, vlanID int64, family domain.Family) ([]domain.IPAddress, error) {
	ips, err := r.queries.ListIPsByVLANAndFamily(ctx, sqlc.ListIPsByVLANAndFamilyParams{
		VlanID: vlanID,
		Family: int16(family.Code()),
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.IPAddress, 0, len(ips))
	for _, ip := range ips {
		out = append(out, domain.IPAddress{
			ID:          domain.IPAddressID(uuidString(ip.ID)),
			IP:          ip.Address,
			Family:      domain.Family(ip.Family),
			VLANID:      ip.VlanID,
			InterfaceID: domain.InterfaceID(uuidString(ip.InterfaceID)),
			Hostname:    ip.Hostname.String,
			CreatedAt:   ip.CreatedAt.Time,
			UpdatedAt:   ip.UpdatedAt.Time,
		})
	}

	return out, nil
}

func (r *IPRepository) FindByIDAndVLAN(ctx context.Context, id domain.IPAddressID, vlanID int64) (domain.IPAddress, error) {
	parsedID, err := parseUUID(string(id))
	if err != nil {
		return domain.IPAddress{}, fmt.Errorf("%w: invalid ip id", domain.ErrInvalidInput)
	}

	ip, err := r.queries.GetIPByUUIDAndVLANID(ctx, sqlc.GetIPByUUIDAndVLANIDParams{
		ID:     parsedID,
		VlanID: vlanID,
	})
	if err != nil {
		if isNoRows(err) {
			return domain.IPAddress{}, domain.ErrNotFound
		}
		return domain.IPAddress{}, err
	}

	return domain.IPAddress{
		ID:          domain.IPAddressID(uuidString(ip.ID)),
		IP:          ip.Address,
		Family:      domain.Family(ip.Family),
		VLANID:      ip.VlanID,
		InterfaceID: domain.InterfaceID(uuidString(ip.InterfaceID)),
		Hostname:    ip.Hostname.String,
		CreatedAt:   ip.CreatedAt.Time,
		UpdatedAt:   ip.UpdatedAt.Time,
	}, nil
}

func (r *IPRepository) Create(ctx context.Context, vlanID int64, addr netip.Addr) (domain.IPAddress, error) {
	ip, err := r.queries.CreateIPAddress(ctx, sqlc.CreateIPAddressParams{
		Address: addr,
		Family:  int16(netseq.FamilyOf(addr).Code()),
		VlanID:  vlanID,
	})
	if err != nil {
		switch {
		case isUniqueViolation(err, constraintVLANAddress):
			return domain.IPAddress{}, fmt.Errorf("%w: ip %s exists", domain.ErrConflict, addr)
		case isForeignKeyViolation(err):
			return domain.IPAddress{}, domain.ErrVLANNotFound
		}
		return domain.IPAddress{}, err
	}

	return toDomainIP(ip), nil
}

func (r *IPRepository) DeleteByIDAndVLAN(ctx context.Context, id domain.IPAddressID, vlanID int64) (bool, error) {
	parsedID, err := parseUUID(string(id))
	if err != nil {
		return false, fmt.Errorf("%w: invalid ip id", domain.ErrInvalidInput)
	}

	deleted, err := r.queries.DeleteIPByUUIDAndVLANID(ctx, sqlc.DeleteIPByUUIDAndVLANIDParams{
		ID:     parsedID,
		VlanID: vlanID,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrAddressInUse
		}
		return false, err
	}

	return deleted > 0, nil
}

// ForFamily returns the batch store the allocator uses for one family.
func (r *IPRepository) ForFamily(family domain.Family) domain.AddressStore {
	return &familyAddressStore{queries: r.queries, family: family}
}

type familyAddressStore struct {
	queries *sqlc.Queries
	family  domain.Family
}

func (s *familyAddressStore) Family() domain.Family {
	return s.family
}

func (s *familyAddressStore) ExistingAddresses(ctx context.Context, vlanID int64, candidates []netip.Addr) ([]netip.Addr, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	return s.queries.ListExistingAddresses(ctx, sqlc.ListExistingAddressesParams{
		VlanID:    vlanID,
		Family:    int16(s.family.Code()),
		Addresses: candidates,
	})
}

func (s *familyAddressStore) InsertAddresses(ctx context.Context, vlanID int64, addrs []netip.Addr) (int64, error) {
	if len(addrs) == 0 {
		return 0, nil
	}

	inserted, err := s.queries.InsertAddresses(ctx, sqlc.InsertAddressesParams{
		Addresses: addrs,
		Family:    int16(s.family.Code()),
		VlanID:    vlanID,
	})
	if err != nil {
		switch {
		case isUniqueViolation(err, constraintVLANAddress):
			return 0, fmt.Errorf("%w: addresses were allocated concurrently", domain.ErrConflict)
		case isForeignKeyViolation(err):
			return 0, domain.ErrVLANNotFound
		}
		return 0, err
	}

	return inserted, nil
}

func (s *familyAddressStore) DeletableRecords(ctx context.Context, vlanID int64, candidates []netip.Addr) ([]domain.IPAddress, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	ips, err := s.queries.ListDeletableAddresses(ctx, sqlc.ListDeletableAddressesParams{
		VlanID:    vlanID,
		Family:    int16(s.family.Code()),
		Addresses: candidates,
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.IPAddress, 0, len(ips))
	for _, ip := range ips {
		out = append(out, toDomainIP(ip))
	}
	return out, nil
}

func (s *familyAddressStore) DeleteRecords(ctx context.Context, ids []domain.IPAddressID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	parsed := make([]pgtype.UUID, 0, len(ids))
	for _, id := range ids {
		u, err := parseUUID(string(id))
		if err != nil {
			return 0, fmt.Errorf("%w: invalid ip id %q", domain.ErrInvalidInput, id)
		}
		parsed = append(parsed, u)
	}

	return s.queries.DeleteUnboundAddressesByIDs(ctx, parsed)
}

func toDomainIP(ip sqlc.IpAddress) domain.IPAddress {
	return domain.IPAddress{
		ID:        domain.IPAddressID(uuidString(ip.ID)),
		IP:        ip.Address,
		Family:    domain.Family(ip.Family),
		VLANID:    ip.VlanID,
		CreatedAt: ip.CreatedAt.Time,
		UpdatedAt: ip.UpdatedAt.Time,
	}
}
