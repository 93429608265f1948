package nft

// FungibleRegistry mints a quantity of interchangeable units per name.
type FungibleRegistry struct {
	*registry
}

func NewFungibleRegistry(store Store, clock *Clock, resolver *Resolver) *FungibleRegistry {
	return &FungibleRegistry{
		registry: newRegistry(CategoryFungible, store, clock, resolver),
	}
}

func (fr *FungibleRegistry) Mint(owner Address, name string, quantity uint64, loc Location) (*Item, error) {
	items, err := fr.mint(owner, []*Item{{
		Name:     name,
		Quantity: quantity,
		Location: loc,
	}})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

// MintBatch mints names[i] with quantities[i] in array order, all or nothing.
func (fr *FungibleRegistry) MintBatch(owner Address, names []string, quantities []uint64) ([]*Item, error) {
	if len(names) != len(quantities) {
		return nil, invalidArgument("batch %d names %d quantities", len(names), len(quantities))
	}
	items := make([]*Item, len(names))
	for i, name := range names {
		items[i] = &Item{Name: name, Quantity: quantities[i]}
	}
	return fr.mint(owner, items)
}

func (fr *FungibleRegistry) BalanceOf(owner Address, id uint64) (uint64, error) {
	it, err := fr.store.ReadItem(fr.category, id)
	if err != nil || it == nil || it.Owner != owner {
		return 0, err
	}
	return it.Quantity, nil
}
