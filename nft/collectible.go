package nft

// CollectibleRegistry mints exactly one indivisible item per name.
type CollectibleRegistry struct {
	*registry
}

func NewCollectibleRegistry(store Store, clock *Clock, resolver *Resolver) *CollectibleRegistry {
	return &CollectibleRegistry{
		registry: newRegistry(CategoryCollectible, store, clock, resolver),
	}
}

func (cr *CollectibleRegistry) Mint(owner Address, name string, loc Location) (*Item, error) {
	items, err := cr.mint(owner, []*Item{{
		Name:     name,
		Quantity: 1,
		Location: loc,
	}})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

func (cr *CollectibleRegistry) TokenURI(id uint64) (string, error) {
	return cr.URI(id)
}

// CurrentSupply is the number of minted items, ids being contiguous from 1.
func (cr *CollectibleRegistry) CurrentSupply() (uint64, error) {
	return cr.store.ReadLastItemId(cr.category)
}

func (cr *CollectibleRegistry) BalanceOf(owner Address) (uint64, error) {
	items, err := cr.store.ListItemsForOwner(cr.category, owner)
	return uint64(len(items)), err
}
