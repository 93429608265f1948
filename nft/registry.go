package nft

import (
	"strconv"
	"sync"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/fox-one/mixin-sdk-go"
	"github.com/gofrs/uuid"
)

// Registry is the read surface shared by the unique and the batch models.
// Lookups of unknown names return the zero value sentinels, never an error.
type Registry interface {
	Category() string
	URI(id uint64) (string, error)
	ReadItem(id uint64) (*Item, error)
	OwnerAddressOf(name string) (Address, error)
	IsOwn(owner Address, name string) (bool, error)
	TokenIdOf(name string) (uint64, error)
	UsedTokenNames() ([]string, error)
	ReadReceipt(traceId string) (*Receipt, error)
	Receipts(limit int) ([]*Receipt, error)
}

type registry struct {
	mutex    sync.Mutex
	category string
	store    Store
	clock    *Clock
	resolver *Resolver
}

func newRegistry(category string, store Store, clock *Clock, resolver *Resolver) *registry {
	if resolver == nil {
		resolver = DefaultResolver()
	}
	return &registry{
		category: category,
		store:    store,
		clock:    clock,
		resolver: resolver,
	}
}

func (r *registry) Category() string {
	return r.category
}

func (r *registry) URI(id uint64) (string, error) {
	it, err := r.ReadItem(id)
	if err != nil {
		return "", err
	}
	return r.resolver.Resolve(r.category, it), nil
}

func (r *registry) ReadItem(id uint64) (*Item, error) {
	if id == 0 {
		return nil, &NotFoundError{Id: id}
	}
	it, err := r.store.ReadItem(r.category, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, &NotFoundError{Id: id}
	}
	return it, nil
}

func (r *registry) OwnerAddressOf(name string) (Address, error) {
	it, err := r.store.ReadItemByName(r.category, name)
	if err != nil || it == nil {
		return ZeroAddress, err
	}
	return it.Owner, nil
}

func (r *registry) IsOwn(owner Address, name string) (bool, error) {
	it, err := r.store.ReadItemByName(r.category, name)
	if err != nil || it == nil {
		return false, err
	}
	return it.Owner == owner, nil
}

func (r *registry) TokenIdOf(name string) (uint64, error) {
	it, err := r.store.ReadItemByName(r.category, name)
	if err != nil || it == nil {
		return 0, err
	}
	return it.Id, nil
}

func (r *registry) UsedTokenNames() ([]string, error) {
	return r.store.ListItemNames(r.category)
}

func (r *registry) ReadReceipt(traceId string) (*Receipt, error) {
	id, err := uuid.FromString(traceId)
	if err != nil {
		return nil, invalidArgument("trace %s", traceId)
	}
	return r.store.ReadReceipt(r.category, id.String())
}

func (r *registry) Receipts(limit int) ([]*Receipt, error) {
	return r.store.ListReceipts(r.category, limit)
}

// mint assigns the next sequential ids to items in order and commits them
// together, so a rejected name leaves every other item of the call unminted.
func (r *registry) mint(owner Address, items []*Item) ([]*Item, error) {
	if owner.IsZero() {
		return nil, invalidArgument("owner %s", owner)
	}
	if len(items) == 0 {
		return nil, invalidArgument("empty mint")
	}
	names := make([]string, len(items))
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		if it.Name == "" {
			return nil, invalidArgument("empty name")
		}
		if it.Quantity < 1 {
			return nil, invalidArgument("quantity %d of %s", it.Quantity, it.Name)
		}
		if seen[it.Name] {
			return nil, &DuplicateNameError{Name: it.Name}
		}
		seen[it.Name] = true
		names[i] = it.Name
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	last, err := r.store.ReadLastItemId(r.category)
	if err != nil {
		return nil, err
	}
	now, err := r.clock.Now()
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, len(items))
	for i, it := range items {
		it.Id = last + uint64(i) + 1
		it.Owner = owner
		it.MintedAt = now
		ids[i] = it.Id
	}
	receipt := &Receipt{
		TraceId:   mixin.UniqueConversationID(r.category, strconv.FormatUint(ids[0], 10)),
		Category:  r.category,
		Owner:     owner,
		Ids:       ids,
		CreatedAt: now,
	}
	err = r.store.WriteMintItems(r.category, items, receipt)
	if err != nil {
		logger.Verbosef("Registry(%s).mint(%s, %v) => %v\n", r.category, owner, names, err)
		return nil, err
	}
	logger.Verbosef("Registry(%s).mint(%s, %v) => %v %s\n", r.category, owner, names, ids, receipt.TraceId)
	return items, nil
}
