package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/singleflight"

	"github.com/example/atelier/internal/core/catalog"
	corecommission "github.com/example/atelier/internal/core/commission"
	"github.com/example/atelier/internal/core/effects"
	"github.com/example/atelier/internal/ctxutil"
	"github.com/example/atelier/internal/ports/primary"
	"github.com/example/atelier/internal/ports/secondary"
)

// CommissionServiceImpl implements the CommissionService interface.
type CommissionServiceImpl struct {
	gateway  secondary.CommissionGateway
	catalog  secondary.CatalogGateway
	session  secondary.SessionReader
	executor EffectExecutor
	logger   *log.Logger
	currency string
	inflight singleflight.Group
}

// NewCommissionService creates a new CommissionService with injected dependencies.
func NewCommissionService(
	gateway secondary.CommissionGateway,
	catalogGateway secondary.CatalogGateway,
	session secondary.SessionReader,
	executor EffectExecutor,
	logger *log.Logger,
	currency string,
) *CommissionServiceImpl {
	return &CommissionServiceImpl{
		gateway:  gateway,
		catalog:  catalogGateway,
		session:  session,
		executor: executor,
		logger:   orDiscard(logger),
		currency: currency,
	}
}

// actor is the logged-in account as the lifecycle sees it.
type actor struct {
	token string
	email string
	role  corecommission.Role
}

// currentActor reads the session and binds its email to ctx.
func (s *CommissionServiceImpl) currentActor(ctx context.Context) (context.Context, *actor, error) {
	sess, err := s.session.Current(ctx)
	if err != nil {
		return ctx, nil, err
	}
	role, err := corecommission.ParseRole(sess.Role)
	if err != nil {
		return ctx, nil, fmt.Errorf("stored session is invalid: %w", err)
	}
	return ctxutil.WithActorID(ctx, sess.Email), &actor{token: sess.Token, email: sess.Email, role: role}, nil
}

// ListCommissions returns the caller's commissions and the badge count.
func (s *CommissionServiceImpl) ListCommissions(ctx context.Context) (*primary.CommissionList, error) {
	ctx = ctxutil.EnsureRequestID(ctx)
	ctx, a, err := s.currentActor(ctx)
	if err != nil {
		return nil, err
	}
	return s.fetchList(ctx, a)
}

// fetchList loads the authoritative list. A failure yields no partial data.
func (s *CommissionServiceImpl) fetchList(ctx context.Context, a *actor) (*primary.CommissionList, error) {
	records, err := s.gateway.ListCommissions(ctx, a.token, a.role.PathSegment())
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions: %w", readFailure(err, "Commission list", ""))
	}

	list := &primary.CommissionList{
		Role:        string(a.role),
		Commissions: make([]*primary.Commission, len(records)),
	}
	stages := make([]corecommission.Stage, len(records))
	for i, r := range records {
		list.Commissions[i] = s.recordToCommission(r, a.role)
		stages[i] = corecommission.Stage(list.Commissions[i].Stage)
	}
	list.BadgeCount = corecommission.BadgeCount(stages)
	return list, nil
}

// RequestCommission submits a new commission on behalf of the logged-in buyer.
func (s *CommissionServiceImpl) RequestCommission(ctx context.Context, req primary.RequestCommissionRequest) (*primary.RequestCommissionResponse, error) {
	ctx = ctxutil.EnsureRequestID(ctx)

	guardCtx := corecommission.RequestContext{
		CommissionTypeID: req.CommissionTypeID,
		InCatalog:        true,
	}
	ctx, a, err := s.currentActor(ctx)
	switch {
	case errors.Is(err, secondary.ErrNoSession):
	case err != nil:
		return nil, err
	default:
		guardCtx.Role = a.role
		guardCtx.HasToken = a.token != ""
	}

	// Guard: check everything that needs no I/O first
	if err := corecommission.CanRequestCommission(guardCtx).Error(); err != nil {
		return nil, err
	}

	if req.ArtistUsername != "" {
		types, err := s.catalog.ListCommissionTypes(ctx, req.ArtistUsername)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog for %s: %w", req.ArtistUsername, readFailure(err, "Artist", req.ArtistUsername))
		}
		guardCtx.InCatalog = containsType(types, req.CommissionTypeID)
		if err := corecommission.CanRequestCommission(guardCtx).Error(); err != nil {
			return nil, err
		}
	}

	record, err := s.gateway.CreateCommission(ctx, a.token, secondary.CreateCommissionRecord{
		CommissionTypeID: req.CommissionTypeID,
		Description:      req.Description,
	})
	if err != nil {
		return nil, s.fail(ctx, corecommission.ActivityRequest, req.CommissionTypeID, fmt.Errorf("failed to request commission: %w", err))
	}

	s.apply(ctx, corecommission.PlanRequestEffects(record.ID, req.CommissionTypeID))

	list, err := s.fetchList(ctx, a)
	if err != nil {
		return nil, err
	}

	created := list.Find(record.ID)
	if created == nil {
		if record.Stage == "" {
			record.Stage = string(corecommission.InitialStatus())
		}
		created = s.recordToCommission(record, a.role)
	}
	return &primary.RequestCommissionResponse{Commission: created, List: list}, nil
}

// AdvanceStage performs the single action available on a commission.
// Concurrent advances of the same commission share one request.
func (s *CommissionServiceImpl) AdvanceStage(ctx context.Context, commissionID int) (*primary.AdvanceStageResponse, error) {
	v, err, _ := s.inflight.Do(fmt.Sprintf("advance:%d", commissionID), func() (any, error) {
		return s.advance(ctxutil.EnsureRequestID(ctx), commissionID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*primary.AdvanceStageResponse), nil
}

func (s *CommissionServiceImpl) advance(ctx context.Context, commissionID int) (*primary.AdvanceStageResponse, error) {
	ctx, a, err := s.currentActor(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.fetchList(ctx, a)
	if err != nil {
		return nil, err
	}
	current := list.Find(commissionID)
	if current == nil {
		return nil, fmt.Errorf("commission %d not found", commissionID)
	}

	from := corecommission.Stage(current.Stage)
	guardCtx := corecommission.AdvanceContext{
		CommissionID: commissionID,
		Role:         a.role,
		Stage:        from,
		Rated:        current.Rating != nil,
	}
	if err := corecommission.CanAdvance(guardCtx).Error(); err != nil {
		return nil, err
	}

	outcome, to := corecommission.PlanAdvance(from)
	if outcome == corecommission.OutcomeRatingRequired {
		return &primary.AdvanceStageResponse{
			Outcome:      primary.OutcomeRatingRequired,
			CommissionID: commissionID,
			From:         string(from),
			To:           string(from),
			List:         list,
		}, nil
	}

	if _, err := s.gateway.UpdateStage(ctx, a.token, commissionID, string(from), string(to)); err != nil {
		return nil, s.fail(ctx, corecommission.ActivityAdvance, commissionID, fmt.Errorf("failed to update commission %d: %w", commissionID, err))
	}

	s.apply(ctx, corecommission.PlanAdvanceEffects(commissionID, from, to))

	refreshed, err := s.fetchList(ctx, a)
	if err != nil {
		return nil, err
	}
	return &primary.AdvanceStageResponse{
		Outcome:      primary.OutcomeStageChange,
		CommissionID: commissionID,
		From:         string(from),
		To:           string(to),
		List:         refreshed,
	}, nil
}

// SubmitRating attaches a 1..5 rating to a completed, unrated commission.
func (s *CommissionServiceImpl) SubmitRating(ctx context.Context, commissionID, rating int) (*primary.SubmitRatingResponse, error) {
	if err := corecommission.ValidRating(rating).Error(); err != nil {
		return nil, err
	}

	v, err, _ := s.inflight.Do(fmt.Sprintf("rate:%d", commissionID), func() (any, error) {
		return s.rate(ctxutil.EnsureRequestID(ctx), commissionID, rating)
	})
	if err != nil {
		return nil, err
	}
	return v.(*primary.SubmitRatingResponse), nil
}

func (s *CommissionServiceImpl) rate(ctx context.Context, commissionID, rating int) (*primary.SubmitRatingResponse, error) {
	ctx, a, err := s.currentActor(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.fetchList(ctx, a)
	if err != nil {
		return nil, err
	}
	current := list.Find(commissionID)
	if current == nil {
		return nil, fmt.Errorf("commission %d not found", commissionID)
	}

	guardCtx := corecommission.RateContext{
		CommissionID:  commissionID,
		Role:          a.role,
		Stage:         corecommission.Stage(current.Stage),
		CurrentRating: current.Rating,
		Rating:        rating,
	}
	if err := corecommission.CanRate(guardCtx).Error(); err != nil {
		return nil, err
	}

	if _, err := s.gateway.RateCommission(ctx, a.token, commissionID, rating); err != nil {
		return nil, s.fail(ctx, corecommission.ActivityRate, commissionID, fmt.Errorf("failed to rate commission %d: %w", commissionID, err))
	}

	s.apply(ctx, corecommission.PlanRateEffects(commissionID, rating))

	refreshed, err := s.fetchList(ctx, a)
	if err != nil {
		return nil, err
	}
	return &primary.SubmitRatingResponse{Commission: refreshed.Find(commissionID), List: refreshed}, nil
}

// Helper methods

// apply runs success effects. The mutation already happened, so failures are only logged.
func (s *CommissionServiceImpl) apply(ctx context.Context, effs []effects.Effect) {
	if err := s.executor.Execute(ctx, effs); err != nil {
		s.logger.Printf("request_id=%s: %v", ctxutil.RequestIDFromContext(ctx), err)
	}
}

// fail records a rejected or unanswered mutation and returns err unchanged.
func (s *CommissionServiceImpl) fail(ctx context.Context, action string, entityID int, err error) error {
	s.apply(ctx, corecommission.PlanFailureEffects(action, entityID, UserMessage(err), err.Error()))
	return err
}

// recordToCommission normalizes the server's stage spelling. A stage outside
// the lifecycle is kept verbatim, flagged, and offers no action.
func (s *CommissionServiceImpl) recordToCommission(r *secondary.CommissionRecord, role corecommission.Role) *primary.Commission {
	c := &primary.Commission{
		ID:             r.ID,
		BuyerID:        r.BuyerID,
		SellerID:       r.SellerID,
		BuyerUsername:  r.BuyerUsername,
		SellerUsername: r.SellerUsername,
		Title:          r.Title,
		Price:          r.Price,
		PriceLabel:     catalog.FormatPrice(r.Price, s.currency),
		Description:    r.Description,
		Stage:          r.Stage,
		Rating:         r.Rating,
	}

	stage, err := corecommission.ParseStage(r.Stage)
	if err != nil {
		s.logger.Printf("commission %d: %v", r.ID, err)
		c.UnknownStage = true
		return c
	}
	c.Stage = string(stage)
	action := corecommission.ActionFor(role, stage, r.Rating != nil)
	c.Action = primary.CommissionAction{Label: action.Label, Enabled: action.Enabled}
	return c
}

func containsType(types []*secondary.CommissionTypeRecord, id int) bool {
	for _, t := range types {
		if t.ID == id {
			return true
		}
	}
	return false
}

// Ensure CommissionServiceImpl implements the interface
var _ primary.CommissionService = (*CommissionServiceImpl)(nil)
