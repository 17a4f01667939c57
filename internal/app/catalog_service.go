package app

import (
	"context"
	"fmt"
	"log"

	corecatalog "github.com/example/atelier/internal/core/catalog"
	corecommission "github.com/example/atelier/internal/core/commission"
	"github.com/example/atelier/internal/core/effects"
	"github.com/example/atelier/internal/ctxutil"
	"github.com/example/atelier/internal/ports/primary"
	"github.com/example/atelier/internal/ports/secondary"
)

// CatalogServiceImpl implements the CatalogService interface.
type CatalogServiceImpl struct {
	gateway  secondary.CatalogGateway
	session  secondary.SessionReader
	executor EffectExecutor
	logger   *log.Logger
	currency string
}

// NewCatalogService creates a new CatalogService with injected dependencies.
func NewCatalogService(
	gateway secondary.CatalogGateway,
	session secondary.SessionReader,
	executor EffectExecutor,
	logger *log.Logger,
	currency string,
) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		gateway:  gateway,
		session:  session,
		executor: executor,
		logger:   orDiscard(logger),
		currency: currency,
	}
}

// ListCommissionTypes returns an artist's catalog in server order.
// An empty catalog is a valid result, not an error.
func (s *CatalogServiceImpl) ListCommissionTypes(ctx context.Context, username string) ([]*primary.CommissionType, error) {
	if err := corecatalog.CanLookup(corecatalog.LookupContext{Username: username}).Error(); err != nil {
		return nil, err
	}

	records, err := s.gateway.ListCommissionTypes(ctxutil.EnsureRequestID(ctx), username)
	if err != nil {
		return nil, fmt.Errorf("failed to list commission types for %s: %w", username, readFailure(err, "Artist", username))
	}
	return s.recordsToTypes(records), nil
}

// ListMine returns the logged-in seller's own catalog.
func (s *CatalogServiceImpl) ListMine(ctx context.Context) ([]*primary.CommissionType, error) {
	ctx = ctxutil.EnsureRequestID(ctx)
	sess, err := s.session.Current(ctx)
	if err != nil {
		return nil, err
	}
	if err := corecatalog.CanViewOwn(isSeller(sess)).Error(); err != nil {
		return nil, err
	}

	records, err := s.gateway.ListOwnCommissionTypes(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to list your commission types: %w", readFailure(err, "Commission catalog", ""))
	}
	return s.recordsToTypes(records), nil
}

// UpdateType changes the title and price of a seller's commission type.
// Commissions already requested keep the title and price they were created with.
func (s *CatalogServiceImpl) UpdateType(ctx context.Context, req primary.UpdateCommissionTypeRequest) error {
	ctx = ctxutil.EnsureRequestID(ctx)
	sess, err := s.session.Current(ctx)
	if err != nil {
		return err
	}
	ctx = ctxutil.WithActorID(ctx, sess.Email)

	guardCtx := corecatalog.EditContext{
		ManageContext: corecatalog.ManageContext{IsSeller: isSeller(sess), CommissionTypeID: req.CommissionTypeID},
		Title:         req.Title,
		Price:         req.Price,
	}
	if err := corecatalog.CanEdit(guardCtx).Error(); err != nil {
		return err
	}

	err = s.gateway.UpdateCommissionType(ctx, sess.Token, &secondary.CommissionTypeRecord{
		ID:    req.CommissionTypeID,
		Title: req.Title,
		Price: req.Price,
	})
	if err != nil {
		return s.fail(ctx, corecatalog.ActivityUpdateType, req.CommissionTypeID, fmt.Errorf("failed to update commission type %d: %w", req.CommissionTypeID, err))
	}

	s.apply(ctx, corecatalog.PlanUpdateEffects(req.CommissionTypeID, req.Title, req.Price))
	return nil
}

// DeleteType removes a seller's commission type.
func (s *CatalogServiceImpl) DeleteType(ctx context.Context, commissionTypeID int) error {
	ctx = ctxutil.EnsureRequestID(ctx)
	sess, err := s.session.Current(ctx)
	if err != nil {
		return err
	}
	ctx = ctxutil.WithActorID(ctx, sess.Email)

	guardCtx := corecatalog.ManageContext{IsSeller: isSeller(sess), CommissionTypeID: commissionTypeID}
	if err := corecatalog.CanManage(guardCtx).Error(); err != nil {
		return err
	}

	if err := s.gateway.DeleteCommissionType(ctx, sess.Token, commissionTypeID); err != nil {
		return s.fail(ctx, corecatalog.ActivityDeleteType, commissionTypeID, fmt.Errorf("failed to delete commission type %d: %w", commissionTypeID, err))
	}

	s.apply(ctx, corecatalog.PlanDeleteEffects(commissionTypeID))
	return nil
}

// Helper methods

func (s *CatalogServiceImpl) apply(ctx context.Context, effs []effects.Effect) {
	if err := s.executor.Execute(ctx, effs); err != nil {
		s.logger.Printf("request_id=%s: %v", ctxutil.RequestIDFromContext(ctx), err)
	}
}

func (s *CatalogServiceImpl) fail(ctx context.Context, action string, entityID int, err error) error {
	s.apply(ctx, corecatalog.PlanFailureEffects(action, entityID, UserMessage(err), err.Error()))
	return err
}

func (s *CatalogServiceImpl) recordsToTypes(records []*secondary.CommissionTypeRecord) []*primary.CommissionType {
	types := make([]*primary.CommissionType, len(records))
	for i, r := range records {
		types[i] = &primary.CommissionType{
			ID:         r.ID,
			Title:      r.Title,
			Price:      r.Price,
			PriceLabel: corecatalog.FormatPrice(r.Price, s.currency),
			SellerID:   r.SellerID,
		}
	}
	return types
}

func isSeller(sess *secondary.SessionRecord) bool {
	return sess.Role == string(corecommission.RoleSeller)
}

// Ensure CatalogServiceImpl implements the interface
var _ primary.CatalogService = (*CatalogServiceImpl)(nil)
