package domain

import (
	"context"
	"fmt"
	"net/netip"
	"slices"
)

type stubVLANRepository struct {
	listFn   func(context.Context) ([]VLAN, error)
	findFn   func(context.Context, int64) (VLAN, error)
	createFn func(context.Context, CreateVLANInput) (VLAN, error)
	deleteFn func(context.Context, int64) (bool, error)
}

func (s stubVLANRepository) List(ctx context.Context) ([]VLAN, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func (s stubVLANRepository) FindByID(ctx context.Context, id int64) (VLAN, error) {
	if s.findFn == nil {
		return VLAN{ID: id}, nil
	}
	return s.findFn(ctx, id)
}

func (s stubVLANRepository) Create(ctx context.Context, input CreateVLANInput) (VLAN, error) {
	if s.createFn == nil {
		return VLAN{}, nil
	}
	return s.createFn(ctx, input)
}

func (s stubVLANRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if s.deleteFn == nil {
		return false, nil
	}
	return s.deleteFn(ctx, id)
}

type stubIPRepository struct {
	listFn   func(context.Context, int64, Family) ([]IPAddress, error)
	findFn   func(context.Context, IPAddressID, int64) (IPAddress, error)
	createFn func(context.Context, int64, netip.Addr) (IPAddress, error)
	deleteFn func(context.Context, IPAddressID, int64) (bool, error)
	store    AddressStore
}

func (s stubIPRepository) ListByVLAN(ctx context.Context, vlanID int64, family Family) ([]IPAddress, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, vlanID, family)
}

func (s stubIPRepository) FindByIDAndVLAN(ctx context.Context, id IPAddressID, vlanID int64) (IPAddress, error) {
	if s.findFn == nil {
		return IPAddress{}, nil
	}
	return s.findFn(ctx, id, vlanID)
}

func (s stubIPRepository) Create(ctx context.Context, vlanID int64, ip netip.Addr) (IPAddress, error) {
	if s.createFn == nil {
		return IPAddress{}, nil
	}
	return s.createFn(ctx, vlanID, ip)
}

func (s stubIPRepository) DeleteByIDAndVLAN(ctx context.Context, id IPAddressID, vlanID int64) (bool, error) {
	if s.deleteFn == nil {
		return false, nil
	}
	return s.deleteFn(ctx, id, vlanID)
}

func (s stubIPRepository) ForFamily(Family) AddressStore {
	return s.store
}

type stubInterfaceRepository struct {
	listFn   func(context.Context, int64) ([]VLANInterface, error)
	createFn func(context.Context, int64, CreateInterfaceInput) (VLANInterface, error)
	deleteFn func(context.Context, InterfaceID, int64) (bool, error)
}

func (s stubInterfaceRepository) ListByVLAN(ctx context.Context, vlanID int64) ([]VLANInterface, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, vlanID)
}

func (s stubInterfaceRepository) Create(ctx context.Context, vlanID int64, input CreateInterfaceInput) (VLANInterface, error) {
	if s.createFn == nil {
		return VLANInterface{}, nil
	}
	return s.createFn(ctx, vlanID, input)
}

func (s stubInterfaceRepository) DeleteByIDAndVLAN(ctx context.Context, id InterfaceID, vlanID int64) (bool, error) {
	if s.deleteFn == nil {
		return false, nil
	}
	return s.deleteFn(ctx, id, vlanID)
}

type memRecord struct {
	id    IPAddressID
	vlan  int64
	addr  netip.Addr
	bound bool
}

// memAddressStore keeps records in insertion order and counts calls so tests
// can assert the batching and no-write guarantees.
type memAddressStore struct {
	family      Family
	records     []*memRecord
	nextID      int
	existsCalls int
	insertCalls int
	deleteCalls int
	insertErr   error
	existsErr   error
}

func newMemAddressStore(family Family) *memAddressStore {
	return &memAddressStore{family: family}
}

func (m *memAddressStore) seed(vlanID int64, addr string, bound bool) IPAddressID {
	m.nextID++
	id := IPAddressID(fmt.Sprintf("ip-%d", m.nextID))
	m.records = append(m.records, &memRecord{id: id, vlan: vlanID, addr: netip.MustParseAddr(addr), bound: bound})
	return id
}

func (m *memAddressStore) find(vlanID int64, addr netip.Addr) *memRecord {
	for _, r := range m.records {
		if r.vlan == vlanID && r.addr == addr {
			return r
		}
	}
	return nil
}

func (m *memAddressStore) Family() Family {
	return m.family
}

func (m *memAddressStore) ExistingAddresses(_ context.Context, vlanID int64, candidates []netip.Addr) ([]netip.Addr, error) {
	m.existsCalls++
	if m.existsErr != nil {
		return nil, m.existsErr
	}
	var out []netip.Addr
	for _, c := range candidates {
		if m.find(vlanID, c) != nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memAddressStore) InsertAddresses(_ context.Context, vlanID int64, addrs []netip.Addr) (int64, error) {
	m.insertCalls++
	if m.insertErr != nil {
		return 0, m.insertErr
	}
	for _, a := range addrs {
		if m.find(vlanID, a) != nil {
			return 0, ErrConflict
		}
	}
	for _, a := range addrs {
		m.seed(vlanID, a.String(), false)
	}
	return int64(len(addrs)), nil
}

func (m *memAddressStore) DeletableRecords(_ context.Context, vlanID int64, candidates []netip.Addr) ([]IPAddress, error) {
	var out []IPAddress
	for _, c := range candidates {
		r := m.find(vlanID, c)
		if r == nil || r.bound {
			continue
		}
		out = append(out, IPAddress{ID: r.id, IP: r.addr, Family: m.family, VLANID: r.vlan})
	}
	return out, nil
}

func (m *memAddressStore) DeleteRecords(_ context.Context, ids []IPAddressID) (int64, error) {
	m.deleteCalls++
	var deleted int64
	kept := m.records[:0]
	for _, r := range m.records {
		if slices.Contains(ids, r.id) && !r.bound {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	m.records = kept
	return deleted, nil
}
