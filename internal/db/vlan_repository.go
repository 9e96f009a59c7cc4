package db

import (
	"context"

	sqlc "github.com/Flarenzy/ixp-ipam/internal/db/sqlc"
	"github.com/Flarenzy/ixp-ipam/internal/domain"
)

type VLANRepository struct {
	queries *sqlc.Queries
}

func NewVLANRepository(queries *sqlc.Queries) *VLANRepository {
	return &VLANRepository{queries: queries}
}

func (r *VLANRepository) List(ctx context.Context) ([]domain.VLAN, error) {
	vlans, err := r.queries.ListVLANs(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.VLAN, 0, len(vlans))
	for _, vlan := range vlans {
		out = append(out, toDomainVLAN(vlan))
	}

	return out, nil
}

func (r *VLANRepository) FindByID(ctx context.Context, id int64) (domain.VLAN, error) {
	vlan, err := r.queries.GetVLANByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return domain.VLAN{}, domain.ErrNotFound
		}
		return domain.VLAN{}, err
	}

	return toDomainVLAN(vlan), nil
}

func (r *VLANRepository) Create(ctx context.Context, input domain.CreateVLANInput) (domain.VLAN, error) {
	vlan, err := r.queries.CreateVLAN(ctx, sqlc.CreateVLANParams{
		Name:    input.Name,
		Number:  input.Number,
		Private: input.Private,
	})
	if err != nil {
		return domain.VLAN{}, err
	}

	return toDomainVLAN(vlan), nil
}

func (r *VLANRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.queries.DeleteVLANByID(ctx, id)
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}

func toDomainVLAN(vlan sqlc.Vlan) domain.VLAN {
	return domain.VLAN{
		ID:        vlan.ID,
		Name:      vlan.Name,
		Number:    vlan.Number,
		Private:   vlan.Private,
		CreatedAt: vlan.CreatedAt.Time,
		UpdatedAt: vlan.UpdatedAt.Time,
	}
}
