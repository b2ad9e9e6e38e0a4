package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/Sheddybata/sdp.app/internal/content"
	"github.com/Sheddybata/sdp.app/internal/geo"
	"github.com/Sheddybata/sdp.app/internal/member"
	"github.com/Sheddybata/sdp.app/internal/shared/logger"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// GrowthWindow is the look-back period for the growth KPI.
const GrowthWindow = 7 * 24 * time.Hour

type AdminService struct {
	db               *gorm.DB
	memberRepository *member.MemberRepository
	memberService    *member.MemberService
	contentService   *content.ContentService
	geo              geo.Provider
	now              func() time.Time
}

func NewAdminService(
	db *gorm.DB,
	memberRepository *member.MemberRepository,
	memberService *member.MemberService,
	contentService *content.ContentService,
	provider geo.Provider,
) *AdminService {
	return &AdminService{
		db:               db,
		memberRepository: memberRepository,
		memberService:    memberService,
		contentService:   contentService,
		geo:              provider,
		now:              time.Now,
	}
}

// WithClock replaces the clock used for the growth window and export names.
func (s *AdminService) WithClock(now func() time.Time) *AdminService {
	s.now = now
	return s
}

// Browse returns one directory page for b.
func (s *AdminService) Browse(ctx context.Context, b Browser) (*Page, error) {
	rows, err := s.responses(ctx)
	if err != nil {
		return nil, err
	}
	page := b.View(rows)

	logger.FromContext(ctx).Debug("member directory served",
		"total", page.Total,
		"page", page.Page,
		"sort", page.Sort.Key,
	)
	return &page, nil
}

// Export returns every member matching f in s order.
func (s *AdminService) Export(ctx context.Context, f Filter, sort Sort) ([]member.Response, error) {
	rows, err := s.responses(ctx)
	if err != nil {
		return nil, err
	}
	return Select(rows, f, sort), nil
}

func (s *AdminService) responses(ctx context.Context) ([]member.Response, error) {
	members, err := s.memberService.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]member.Response, len(members))
	for i := range members {
		rows[i] = member.NewResponse(&members[i], s.geo)
	}
	return rows, nil
}

// StateCount is the number of members registered in one state.
type StateCount struct {
	State     string `json:"state"`
	StateName string `json:"stateName"`
	Count     int64  `json:"count"`
}

// Dashboard holds the admin overview KPIs.
type Dashboard struct {
	Total          int64        `json:"total"`
	Female         int64        `json:"female"`
	Male           int64        `json:"male"`
	Unspecified    int64        `json:"unspecified"`
	TopState       *StateCount  `json:"topState"`
	GrowthThisWeek int64        `json:"growthThisWeek"`
	ByState        []StateCount `json:"byState"`
	Events         int64        `json:"events"`
	Announcements  int64        `json:"announcements"`
	// SignedInAs is filled by the handler from the session gate.
	SignedInAs     string       `json:"signedInAs,omitempty"`
}

// Dashboard runs the KPI queries concurrently.
func (s *AdminService) Dashboard(ctx context.Context) (*Dashboard, error) {
	var (
		d        Dashboard
		byGender map[string]int64
		byState  []member.GroupCount
	)
	since := s.now().Add(-GrowthWindow)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if d.Total, err = s.memberRepository.Count(gctx, s.db); err != nil {
			return s.unavailable(ctx, "count members", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if byGender, err = s.memberRepository.CountByGender(gctx, s.db); err != nil {
			return s.unavailable(ctx, "count members by gender", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if byState, err = s.memberRepository.CountByState(gctx, s.db); err != nil {
			return s.unavailable(ctx, "count members by state", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if d.GrowthThisWeek, err = s.memberRepository.CountCreatedSince(gctx, s.db, since); err != nil {
			return s.unavailable(ctx, "count recent members", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		d.Events, d.Announcements, err = s.contentService.Counts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.Female = byGender["female"]
	d.Male = byGender["male"]
	d.Unspecified = d.Total - d.Female - d.Male

	d.ByState = make([]StateCount, len(byState))
	for i, row := range byState {
		name, _, _ := s.geo.Names(row.Key, "", "")
		d.ByState[i] = StateCount{State: row.Key, StateName: name, Count: row.Count}
	}
	if len(d.ByState) > 0 {
		top := d.ByState[0]
		d.TopState = &top
	}
	return &d, nil
}

func (s *AdminService) unavailable(ctx context.Context, op string, err error) error {
	logger.FromContext(ctx).Error(op+" failed", "error", err)
	return fmt.Errorf("%s: %w: %w", op, member.ErrDatabaseUnavailable, err)
}
