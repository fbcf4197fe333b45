package repositories

import "context"

//go:generate mockgen -destination=mocks/mock_lookup_repositories.go -package=mocks -source=lookup_repositories.go

// CounterpartyTagReader resolves the tags attached to counterparties.
type CounterpartyTagReader interface {
	// FindTagIDsByCounterparty returns the tag IDs of one counterparty. Unknown counterparties
	// yield an empty slice.
	FindTagIDsByCounterparty(ctx context.Context, workplaceID, counterpartyID string) ([]string, error)

	// FindTagIDsByCounterparties returns tag IDs keyed by counterparty ID in a single read.
	FindTagIDsByCounterparties(ctx context.Context, workplaceID string, counterpartyIDs []string) (map[string][]string, error)
}

// ItemCategoryReader resolves the category of catalogue items.
type ItemCategoryReader interface {
	// FindCategoryByItem returns the item's category, or nil when the item is unknown or has none.
	FindCategoryByItem(ctx context.Context, workplaceID, itemID string) (*string, error)

	// FindCategoriesByItems returns category IDs keyed by item ID in a single read. Items without
	// a category are absent from the map.
	FindCategoriesByItems(ctx context.Context, workplaceID string, itemIDs []string) (map[string]string, error)
}
