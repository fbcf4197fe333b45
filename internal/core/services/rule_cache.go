package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/furniture_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/furniture_erp/internal/core/ports/repositories"
	"golang.org/x/sync/singleflight"
)

// DefaultRuleCacheTTL bounds how stale a cached rule set may become without an invalidation.
const DefaultRuleCacheTTL = 60 * time.Second

type ruleSnapshot struct {
	rules    []domain.AssignmentRule
	loadedAt time.Time
}

type cacheGeneration struct {
	workplace uint64
	epoch     uint64
}

// RuleCache holds one immutable snapshot of active assignment rules per workplace.
// Snapshots are replaced whole, never edited, so readers need no copy. Invalidate drops a
// workplace's snapshot and bumps its generation, which keeps loads that started before the
// invalidation from being stored.
type RuleCache struct {
	reader portsrepo.AssignmentRuleReader
	ttl    time.Duration

	mu          sync.RWMutex
	snapshots   map[string]ruleSnapshot
	generations map[string]uint64
	epoch       uint64 // bumped by InvalidateAll

	group singleflight.Group
}

// NewRuleCache creates a rule cache. A non-positive ttl selects DefaultRuleCacheTTL.
func NewRuleCache(reader portsrepo.AssignmentRuleReader, ttl time.Duration) *RuleCache {
	if ttl <= 0 {
		ttl = DefaultRuleCacheTTL
	}
	return &RuleCache{
		reader:      reader,
		ttl:         ttl,
		snapshots:   make(map[string]ruleSnapshot),
		generations: make(map[string]uint64),
	}
}

// TTL returns the configured time to live.
func (c *RuleCache) TTL() time.Duration {
	return c.ttl
}

// Get returns the active rules of a workplace, loading them when the snapshot is missing or
// older than the TTL. Concurrent misses for the same workplace share one store read.
// The returned slice must not be modified.
func (c *RuleCache) Get(ctx context.Context, workplaceID string) ([]domain.AssignmentRule, error) {
	c.mu.RLock()
	snap, ok := c.snapshots[workplaceID]
	gen := c.generationLocked(workplaceID)
	c.mu.RUnlock()

	if ok && time.Now().Sub(snap.loadedAt) < c.ttl {
		return snap.rules, nil
	}

	key := fmt.Sprintf("%s#%d.%d", workplaceID, gen.epoch, gen.workplace)
	// The shared load must not die with the first caller's request.
	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		return c.load(loadCtx, workplaceID, gen)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]domain.AssignmentRule), nil
	}
}

// Fresh bypasses the snapshot, reads the rules from the store and replaces the snapshot.
func (c *RuleCache) Fresh(ctx context.Context, workplaceID string) ([]domain.AssignmentRule, error) {
	c.mu.RLock()
	gen := c.generationLocked(workplaceID)
	c.mu.RUnlock()
	return c.load(ctx, workplaceID, gen)
}

// Invalidate drops the snapshot of one workplace.
func (c *RuleCache) Invalidate(workplaceID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.snapshots, workplaceID)
	c.generations[workplaceID]++
}

// InvalidateAll drops every snapshot.
func (c *RuleCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.snapshots = make(map[string]ruleSnapshot)
}

func (c *RuleCache) generationLocked(workplaceID string) cacheGeneration {
	return cacheGeneration{workplace: c.generations[workplaceID], epoch: c.epoch}
}

func (c *RuleCache) load(ctx context.Context, workplaceID string, gen cacheGeneration) ([]domain.AssignmentRule, error) {
	rules, err := c.reader.ListActiveRules(ctx, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignment rules for workplace %s: %w", workplaceID, err)
	}
	if rules == nil {
		rules = []domain.AssignmentRule{}
	}

	c.mu.Lock()
	if c.generationLocked(workplaceID) == gen {
		c.snapshots[workplaceID] = ruleSnapshot{rules: rules, loadedAt: time.Now()}
	}
	c.mu.Unlock()

	return rules, nil
}
