package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sheddybata/sdp.app/internal/geo"
	"github.com/Sheddybata/sdp.app/internal/model"
	"github.com/Sheddybata/sdp.app/internal/shared/logger"
	"gorm.io/gorm"
)

// MemberService serves member reads and deletes. Persistence failures other
// than not-found surface as ErrDatabaseUnavailable.
type MemberService struct {
	db               *gorm.DB
	memberRepository *MemberRepository
	geo              geo.Provider
}

func NewMemberService(db *gorm.DB, memberRepository *MemberRepository, provider geo.Provider) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
		geo:              provider,
	}
}

func (s *MemberService) Get(ctx context.Context, id string) (*Response, error) {
	m, err := s.memberRepository.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, s.lookupError(ctx, "id", err)
	}
	resp := NewResponse(m, s.geo)
	return &resp, nil
}

// FindByVoterID looks up by canonical voter ID. Returns ErrMemberNotFound when absent.
func (s *MemberService) FindByVoterID(ctx context.Context, voterID string) (*Response, error) {
	m, err := s.memberRepository.FindByVoterID(ctx, s.db, voterID)
	if err != nil {
		return nil, s.lookupError(ctx, "voter_id", err)
	}
	resp := NewResponse(m, s.geo)
	return &resp, nil
}

// FindByMembershipID looks up by normalized membership ID. Returns ErrMemberNotFound when absent.
func (s *MemberService) FindByMembershipID(ctx context.Context, membershipID string) (*Response, error) {
	m, err := s.memberRepository.FindByMembershipID(ctx, s.db, membershipID)
	if err != nil {
		return nil, s.lookupError(ctx, "membership_id", err)
	}
	resp := NewResponse(m, s.geo)
	return &resp, nil
}

// List returns all stored members, newest first.
func (s *MemberService) List(ctx context.Context) ([]model.Member, error) {
	members, err := s.memberRepository.List(ctx, s.db)
	if err != nil {
		logger.FromContext(ctx).Error("list members failed", "error", err)
		return nil, fmt.Errorf("list members: %w: %w", ErrDatabaseUnavailable, err)
	}
	return members, nil
}

// Delete removes a member. Deleting an id that does not exist is not an error.
func (s *MemberService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	deleted, err := s.memberRepository.Delete(ctx, s.db, id)
	if err != nil {
		log.Error("delete member failed", "member_id", id, "error", err)
		return fmt.Errorf("delete member: %w: %w", ErrDatabaseUnavailable, err)
	}

	log.Info("member deleted", "member_id", id, "rows", deleted)
	return nil
}

func (s *MemberService) lookupError(ctx context.Context, by string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("find member by %s: %w", by, ErrMemberNotFound)
	}
	logger.FromContext(ctx).Error("member lookup failed", "by", by, "error", err)
	return fmt.Errorf("find member by %s: %w: %w", by, ErrDatabaseUnavailable, err)
}
