package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/furniture_erp/internal/core/ports/repositories"
	"golang.org/x/sync/errgroup"
)

// ContextBuilder assembles match contexts from a line's counterparty and item.
// Lookup failures never fail the evaluation: a missing or unreadable fact degrades to an empty
// tag set or an unset category, which at worst means fewer rules match.
type ContextBuilder struct {
	BaseService
	tagReader      portsrepo.CounterpartyTagReader
	categoryReader portsrepo.ItemCategoryReader
}

// NewContextBuilder creates a context builder over the tag and category lookups.
func NewContextBuilder(tagReader portsrepo.CounterpartyTagReader, categoryReader portsrepo.ItemCategoryReader) *ContextBuilder {
	return &ContextBuilder{tagReader: tagReader, categoryReader: categoryReader}
}

// Build resolves the facts of a single line. The tag and category lookups run concurrently.
func (b *ContextBuilder) Build(ctx context.Context, workplaceID string, counterpartyID, itemID *string) domain.MatchContext {
	mctx := domain.MatchContext{
		CounterpartyID:     nonEmpty(counterpartyID),
		ItemID:             nonEmpty(itemID),
		CounterpartyTagIDs: []string{},
	}

	var g errgroup.Group
	if mctx.CounterpartyID != nil {
		g.Go(func() error {
			tags, err := b.tagReader.FindTagIDsByCounterparty(ctx, workplaceID, *mctx.CounterpartyID)
			if err != nil {
				b.LogWarn(ctx, "Counterparty tag lookup failed, matching without tags",
					slog.String("workplace_id", workplaceID),
					slog.String("counterparty_id", *mctx.CounterpartyID),
					slog.String("error", err.Error()))
				return nil
			}
			if tags != nil {
				mctx.CounterpartyTagIDs = tags
			}
			return nil
		})
	}
	if mctx.ItemID != nil {
		g.Go(func() error {
			category, err := b.categoryReader.FindCategoryByItem(ctx, workplaceID, *mctx.ItemID)
			if err != nil {
				b.LogWarn(ctx, "Item category lookup failed, matching without category",
					slog.String("workplace_id", workplaceID),
					slog.String("item_id", *mctx.ItemID),
					slog.String("error", err.Error()))
				return nil
			}
			mctx.ItemCategoryID = nonEmpty(category)
			return nil
		})
	}
	_ = g.Wait()

	return mctx
}

// BuildMany resolves the facts of many lines with one bulk tag read over the distinct
// counterparties and one bulk category read over the distinct items, run concurrently.
// The result is index-aligned with lines.
func (b *ContextBuilder) BuildMany(ctx context.Context, workplaceID string, lines []domain.LineInput) []domain.MatchContext {
	counterpartyIDs := distinct(lines, func(l domain.LineInput) *string { return l.CounterpartyID })
	itemIDs := distinct(lines, func(l domain.LineInput) *string { return l.ItemID })

	var (
		tagsByCounterparty map[string][]string
		categoryByItem     map[string]string
		g                  errgroup.Group
	)

	if len(counterpartyIDs) > 0 {
		g.Go(func() error {
			tags, err := b.tagReader.FindTagIDsByCounterparties(ctx, workplaceID, counterpartyIDs)
			if err != nil {
				b.LogWarn(ctx, "Bulk counterparty tag lookup failed, matching without tags",
					slog.String("workplace_id", workplaceID),
					slog.Int("counterparties", len(counterpartyIDs)),
					slog.String("error", err.Error()))
				return nil
			}
			tagsByCounterparty = tags
			return nil
		})
	}
	if len(itemIDs) > 0 {
		g.Go(func() error {
			categories, err := b.categoryReader.FindCategoriesByItems(ctx, workplaceID, itemIDs)
			if err != nil {
				b.LogWarn(ctx, "Bulk item category lookup failed, matching without categories",
					slog.String("workplace_id", workplaceID),
					slog.Int("items", len(itemIDs)),
					slog.String("error", err.Error()))
				return nil
			}
			categoryByItem = categories
			return nil
		})
	}
	_ = g.Wait()

	contexts := make([]domain.MatchContext, len(lines))
	for i, line := range lines {
		mctx := domain.MatchContext{
			CounterpartyID:     nonEmpty(line.CounterpartyID),
			ItemID:             nonEmpty(line.ItemID),
			CounterpartyTagIDs: []string{},
		}
		if mctx.CounterpartyID != nil {
			if tags, ok := tagsByCounterparty[*mctx.CounterpartyID]; ok && tags != nil {
				mctx.CounterpartyTagIDs = tags
			}
		}
		if mctx.ItemID != nil {
			if category, ok := categoryByItem[*mctx.ItemID]; ok && category != "" {
				c := category
				mctx.ItemCategoryID = &c
			}
		}
		contexts[i] = mctx
	}
	return contexts
}

func distinct(lines []domain.LineInput, field func(domain.LineInput) *string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		v := field(l)
		if v == nil || *v == "" {
			continue
		}
		if _, ok := seen[*v]; ok {
			continue
		}
		seen[*v] = struct{}{}
		out = append(out, *v)
	}
	return out
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
