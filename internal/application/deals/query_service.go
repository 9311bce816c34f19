package deals

import (
	"context"
	"time"

	"github.com/bizroot/backend/internal/domain/catalog"
	"github.com/bizroot/backend/internal/domain/deal"
	"github.com/bizroot/backend/internal/domain/partner"
	"github.com/bizroot/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DealQueryService is the filter engine: it turns a raw filter request into a
// flattened deal list by computing the query window, evaluating the nested
// window predicates in-process and resolving the three display references.
type DealQueryService struct {
	deals    deal.Repository
	clients  partner.ClientRepository
	orgs     partner.OrganizationRepository
	products catalog.ProductRepository
	logger   *zap.Logger
}

// NewDealQueryService creates a new DealQueryService
func NewDealQueryService(
	deals deal.Repository,
	clients partner.ClientRepository,
	orgs partner.OrganizationRepository,
	products catalog.ProductRepository,
	logger *zap.Logger,
) *DealQueryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DealQueryService{
		deals:    deals,
		clients:  clients,
		orgs:     orgs,
		products: products,
		logger:   logger,
	}
}

// acceptedDateLayouts are the wire formats a filter date may arrive in
var acceptedDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range acceptedDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// QueryDeals validates the request, fetches the organization's deals, applies
// the window predicate and returns the matching deals with productName,
// clientFullName and organizationName flattened in.
//
// DealType is optional: empty or unrecognized values fall back to the base
// time clause. A missing organization or product reference degrades to an
// empty display name; a missing client reference fails the request.
func (s *DealQueryService) QueryDeals(ctx context.Context, req QueryRequest) ([]FlattenedDeal, error) {
	if req.OrganizationID == "" || req.StartDate == "" || req.EndDate == "" {
		return nil, shared.NewValidationError("organizationId, startDate, endDate required")
	}

	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		return nil, shared.NewValidationError("invalid organizationId: %s", req.OrganizationID)
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, shared.NewValidationError("invalid startDate: %s", req.StartDate)
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, shared.NewValidationError("invalid endDate: %s", req.EndDate)
	}

	window := deal.NewWindow(startDate, endDate)
	filterType := deal.FilterType(req.DealType)
	if req.DealType != "" && !filterType.IsKnown() {
		s.logger.Warn("unrecognized dealType, applying base clause only",
			zap.String("deal_type", req.DealType),
		)
	}

	all, err := s.deals.FindActiveByOrganization(ctx, orgID)
	if err != nil {
		s.logger.Error("deal query failed",
			zap.String("organization_id", orgID.String()),
			zap.Error(err),
		)
		return nil, shared.ErrInternal
	}

	pred := deal.QueryPredicate(filterType, window)
	matched := make([]deal.Deal, 0, len(all))
	for _, d := range all {
		if pred(&d) {
			matched = append(matched, d)
		}
	}

	names, err := s.resolveNames(ctx, matched)
	if err != nil {
		s.logger.Error("reference resolution failed",
			zap.String("organization_id", orgID.String()),
			zap.Error(err),
		)
		return nil, shared.ErrInternal
	}

	return s.flatten(matched, names)
}

// referenceNames holds the resolved display names of the three reference
// collections a deal points at.
type referenceNames struct {
	products map[uuid.UUID]string
	clients  map[uuid.UUID]string
	orgs     map[uuid.UUID]string
}

// resolveNames runs the three reference lookups concurrently; all of them
// must complete before a response is produced.
func (s *DealQueryService) resolveNames(ctx context.Context, matched []deal.Deal) (*referenceNames, error) {
	productIDs := make(map[uuid.UUID]struct{}, len(matched))
	clientIDs := make(map[uuid.UUID]struct{}, len(matched))
	orgIDs := make(map[uuid.UUID]struct{}, 1)
	for _, d := range matched {
		productIDs[d.ProductID] = struct{}{}
		clientIDs[d.ClientID] = struct{}{}
		orgIDs[d.OrganizationID] = struct{}{}
	}

	names := &referenceNames{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := s.products.FindNamesByIDs(gctx, keys(productIDs))
		names.products = m
		return err
	})
	g.Go(func() error {
		m, err := s.clients.FindNamesByIDs(gctx, keys(clientIDs))
		names.clients = m
		return err
	})
	g.Go(func() error {
		m, err := s.orgs.FindNamesByIDs(gctx, keys(orgIDs))
		names.orgs = m
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return names, nil
}

func keys(set map[uuid.UUID]struct{}) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}

func (s *DealQueryService) flatten(matched []deal.Deal, names *referenceNames) ([]FlattenedDeal, error) {
	flattened := make([]FlattenedDeal, 0, len(matched))
	for _, d := range matched {
		clientName, ok := names.clients[d.ClientID]
		if !ok {
			// A deal without its client record is broken data, not a
			// degradable lookup; surface it instead of masking it.
			s.logger.Error("deal references a missing client",
				zap.String("deal_id", d.ID.String()),
				zap.String("client_id", d.ClientID.String()),
			)
			return nil, shared.NewIntegrityError("deal %s references a missing client", d.ID)
		}

		flattened = append(flattened, FlattenedDeal{
			ID:               d.ID.String(),
			Amount:           d.Amount,
			Status:           d.Status.String(),
			WonDate:          d.WonDate,
			ProductName:      names.products[d.ProductID],
			ClientFullName:   clientName,
			OrganizationName: names.orgs[d.OrganizationID],
			Installments:     d.Installments,
		})
	}
	return flattened, nil
}
