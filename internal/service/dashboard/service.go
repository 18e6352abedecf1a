// internal/service/dashboard/service.go
package dashboard

import (
	"context"
	"fmt"

	"voltride-service/internal/domain/blog"
	"voltride-service/internal/domain/booking"
	"voltride-service/internal/domain/catalog"
	"voltride-service/internal/domain/dealer"
	"voltride-service/internal/domain/lead"

	"go.uber.org/zap"
)

const recentItems = 5

// Overview is the back-office landing payload: headline counts plus the
// latest intake activity.
type Overview struct {
	Leads    *lead.Stats    `json:"leads"`
	Bookings *booking.Stats `json:"bookings"`

	ActiveModels   int64 `json:"active_models"`
	ActiveDealers  int64 `json:"active_dealers"`
	PublishedPosts int64 `json:"published_posts"`

	RecentLeads    []lead.Lead               `json:"recent_leads"`
	RecentBookings []booking.TestRideBooking `json:"recent_bookings"`
}

type Service struct {
	leadRepo    lead.Repository
	bookingRepo booking.Repository
	catalogRepo catalog.Repository
	dealerRepo  dealer.Repository
	blogRepo    blog.Repository
	logger      *zap.Logger
}

func NewService(leadRepo lead.Repository, bookingRepo booking.Repository, catalogRepo catalog.Repository, dealerRepo dealer.Repository, blogRepo blog.Repository, logger *zap.Logger) *Service {
	return &Service{
		leadRepo:    leadRepo,
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		dealerRepo:  dealerRepo,
		blogRepo:    blogRepo,
		logger:      logger,
	}
}

// Overview aggregates counts across every domain in one call.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	leadStats, err := s.leadRepo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load lead stats: %w", err)
	}

	bookingStats, err := s.bookingRepo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking stats: %w", err)
	}

	activeModels, err := s.catalogRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count models: %w", err)
	}

	activeDealers, err := s.dealerRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count dealers: %w", err)
	}

	publishedPosts, err := s.blogRepo.CountPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	recentLeads, _, err := s.leadRepo.List(ctx, &lead.ListFilters{Page: 1, PageSize: recentItems})
	if err != nil {
		return nil, fmt.Errorf("failed to load recent leads: %w", err)
	}

	recentBookings, _, err := s.bookingRepo.List(ctx, &booking.ListFilters{Page: 1, PageSize: recentItems})
	if err != nil {
		return nil, fmt.Errorf("failed to load recent bookings: %w", err)
	}

	return &Overview{
		Leads:          leadStats,
		Bookings:       bookingStats,
		ActiveModels:   activeModels,
		ActiveDealers:  activeDealers,
		PublishedPosts: publishedPosts,
		RecentLeads:    recentLeads,
		RecentBookings: recentBookings,
	}, nil
}
