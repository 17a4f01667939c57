// Package catalog contains the pure business logic for seller commission types.
// Guards are pure functions that evaluate preconditions without side effects.
package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency prices are shown in when none is configured.
const DefaultCurrency = "PHP"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// FormatPrice renders a price with exactly two decimal places in the given currency.
func FormatPrice(price decimal.Decimal, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return currency + " " + price.StringFixed(2)
}

// LookupContext provides context for catalog reads.
type LookupContext struct {
	Username string
}

// CanLookup evaluates whether a catalog can be fetched for a username.
func CanLookup(ctx LookupContext) GuardResult {
	if strings.TrimSpace(ctx.Username) == "" {
		return GuardResult{Allowed: false, Reason: "artist username is required"}
	}
	return GuardResult{Allowed: true}
}

// ManageContext provides context for seller catalog edits.
type ManageContext struct {
	IsSeller         bool
	CommissionTypeID int
}

// EditContext provides context for updating a commission type.
type EditContext struct {
	ManageContext
	Title string
	Price decimal.Decimal
}

// CanViewOwn evaluates whether the actor has a catalog of their own.
func CanViewOwn(isSeller bool) GuardResult {
	if !isSeller {
		return GuardResult{Allowed: false, Reason: "only sellers can manage commission types"}
	}
	return GuardResult{Allowed: true}
}

// CanManage evaluates whether the actor may manage a commission type.
// Rules:
// - Only sellers own commission types
// - A commission type must be selected
func CanManage(ctx ManageContext) GuardResult {
	if result := CanViewOwn(ctx.IsSeller); !result.Allowed {
		return result
	}
	if ctx.CommissionTypeID <= 0 {
		return GuardResult{Allowed: false, Reason: "select a commission type first"}
	}
	return GuardResult{Allowed: true}
}

// CanEdit evaluates whether a commission type update is valid.
// Rules:
// - CanManage rules apply
// - Title must not be blank
// - Price must not be negative
func CanEdit(ctx EditContext) GuardResult {
	if result := CanManage(ctx.ManageContext); !result.Allowed {
		return result
	}
	if strings.TrimSpace(ctx.Title) == "" {
		return GuardResult{Allowed: false, Reason: "title is required"}
	}
	if ctx.Price.IsNegative() {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("price cannot be negative (got %s)", ctx.Price.String()),
		}
	}
	return GuardResult{Allowed: true}
}
