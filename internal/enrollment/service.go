package enrollment

import (
	"context"
	"fmt"
	"time"

	"github.com/Sheddybata/sdp.app/internal/geo"
	"github.com/Sheddybata/sdp.app/internal/identifier"
	"github.com/Sheddybata/sdp.app/internal/member"
	"github.com/Sheddybata/sdp.app/internal/model"
	"github.com/Sheddybata/sdp.app/internal/shared/database"
	"github.com/Sheddybata/sdp.app/internal/shared/logger"
	"github.com/Sheddybata/sdp.app/internal/shared/metrics"
	"github.com/Sheddybata/sdp.app/internal/shared/token"
	"gorm.io/gorm"
)

type EnrollmentService struct {
	db               *gorm.DB
	memberRepository *member.MemberRepository
	validator        *FormValidator
	cards            token.CardManager
	geo              geo.Provider
	metrics          *metrics.Metrics
	now              func() time.Time
}

func NewEnrollmentService(
	db *gorm.DB,
	memberRepository *member.MemberRepository,
	validator *FormValidator,
	cards token.CardManager,
	provider geo.Provider,
	m *metrics.Metrics,
) *EnrollmentService {
	return &EnrollmentService{
		db:               db,
		memberRepository: memberRepository,
		validator:        validator,
		cards:            cards,
		geo:              provider,
		metrics:          m,
		now:              time.Now,
	}
}

var _ Submitter = (*EnrollmentService)(nil)

// WithClock replaces the clock used for default join dates.
func (s *EnrollmentService) WithClock(now func() time.Time) *EnrollmentService {
	s.now = now
	return s
}

// Submit validates the whole record and stores it as a self-registration. A
// voter ID that is already registered yields member.ErrAlreadyRegistered; any
// other storage failure yields member.ErrDatabaseUnavailable.
func (s *EnrollmentService) Submit(ctx context.Context, form Form) (*Enrollment, error) {
	return s.submit(ctx, form, model.RegisteredBySelf)
}

// SubmitForAdmin stores a record entered by an administrator on a member's behalf.
func (s *EnrollmentService) SubmitForAdmin(ctx context.Context, form Form) (*Enrollment, error) {
	return s.submit(ctx, form, model.RegisteredByAdmin)
}

func (s *EnrollmentService) submit(ctx context.Context, form Form, registeredBy string) (*Enrollment, error) {
	log := logger.FromContext(ctx)

	form = form.Normalized()
	if err := s.validator.ValidateAll(form); err != nil {
		s.metrics.IncrementEnrollment(metrics.OutcomeInvalid)
		log.Info("enrollment rejected - invalid form", "error", err)
		return nil, err
	}

	record := s.newMember(form, registeredBy)
	if err := s.memberRepository.Create(ctx, s.db, record); err != nil {
		if database.IsUniqueViolation(err) {
			s.metrics.IncrementEnrollment(metrics.OutcomeConflict)
			log.Warn("enrollment rejected - voter id already registered",
				"voter_id", logger.MaskVoterID(record.VoterRegistrationNumber))
			return nil, fmt.Errorf("create member: %w", member.ErrAlreadyRegistered)
		}
		s.metrics.IncrementEnrollment(metrics.OutcomeUnavailable)
		log.Error("enrollment failed - database error", "error", err)
		return nil, fmt.Errorf("create member: %w: %w", member.ErrDatabaseUnavailable, err)
	}

	resp := member.NewResponse(record, s.geo)

	// The member is stored either way; a card without a token still prints.
	cardToken, err := s.cards.Issue(resp.ID, resp.MembershipID)
	if err != nil {
		log.Error("issue member card token failed", "member_id", resp.ID, "error", err)
		cardToken = ""
	}

	s.metrics.IncrementEnrollment(metrics.OutcomeSuccess)
	log.Info("member enrolled",
		"member_id", resp.ID,
		"membership_id", resp.MembershipID,
		"state", record.State,
		"registered_by", registeredBy,
	)

	return &Enrollment{
		Member: resp,
		Card:   NewCard(resp, cardToken, s.now()),
	}, nil
}

func (s *EnrollmentService) newMember(form Form, registeredBy string) *model.Member {
	voterID := identifier.CanonicalVoterID(form.VoterRegistrationNumber)

	joinDate := form.JoinDate
	if joinDate == "" {
		joinDate = s.now().Format(model.DateLayout)
	}

	return &model.Member{
		Title:                   form.Title,
		Surname:                 form.Surname,
		FirstName:               form.FirstName,
		OtherNames:              form.OtherNames,
		Phone:                   form.Phone,
		Email:                   form.Email,
		DateOfBirth:             form.DateOfBirth,
		JoinDate:                joinDate,
		State:                   form.State,
		LGA:                     form.LGA,
		Ward:                    form.Ward,
		VoterRegistrationNumber: voterID,
		MembershipID:            identifier.DeriveMembershipID(form.Surname, voterID),
		PortraitDataURL:         form.PortraitDataURL,
		AgreedToConstitution:    form.AgreedToConstitution,
		RegisteredBy:            registeredBy,
	}
}
