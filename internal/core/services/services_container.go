package services

import (
	"github.com/SscSPs/furniture_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/furniture_erp/internal/core/ports/services"
	"github.com/SscSPs/furniture_erp/internal/platform/config"
)

// NewServiceContainer creates and returns a new ServiceContainer with all services initialized.
// The rule service and the assignment service share one RuleCache so rule writes are
// visible to the next evaluation.
func NewServiceContainer(cfg *config.Config, repos repositories.RepositoryProvider) *portssvc.ServiceContainer {
	ttl := DefaultRuleCacheTTL
	retry := DefaultRetryOptions
	var invoicePrefix, billPrefix string
	if cfg != nil {
		if cfg.RuleCacheTTL > 0 {
			ttl = cfg.RuleCacheTTL
		}
		if cfg.PersistRetryAttempts > 0 {
			retry.MaxAttempts = cfg.PersistRetryAttempts
		}
		invoicePrefix, billPrefix = cfg.PaymentPrefixInvoice, cfg.PaymentPrefixBill
	}

	ruleCache := NewRuleCache(repos.AssignmentRuleRepo, ttl)
	builder := NewContextBuilder(repos.CounterpartyTagRepo, repos.ItemCategoryRepo)

	return &portssvc.ServiceContainer{
		CostCenter: NewCostCenterService(repos.CostCenterRepo),
		Rule:       NewRuleService(repos.AssignmentRuleRepo, repos.CostCenterRepo, ruleCache),
		Assignment: NewAssignmentService(ruleCache, builder, repos.TransactionLineRepo),
		Payment: NewPaymentService(repos.TxManager, repos.DocumentRepo, repos.LedgerRepo,
			WithPaymentPrefixes(invoicePrefix, billPrefix),
			WithPersistRetry(retry),
		),
	}
}
