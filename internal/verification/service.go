package verification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Sheddybata/sdp.app/internal/identifier"
	"github.com/Sheddybata/sdp.app/internal/member"
	sharedError "github.com/Sheddybata/sdp.app/internal/shared/error"
	"github.com/Sheddybata/sdp.app/internal/shared/logger"
	"github.com/Sheddybata/sdp.app/internal/shared/metrics"
	"github.com/Sheddybata/sdp.app/internal/shared/token"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Lookup methods, used as metric and span labels.
const (
	MethodMembershipID = "membership_id"
	MethodVoterID      = "voter_id"
	MethodCard         = "card"
)

const minMembershipIDLength = 6

// MemberFinder is the read side of the member store.
type MemberFinder interface {
	FindByMembershipID(ctx context.Context, membershipID string) (*member.Response, error)
	FindByVoterID(ctx context.Context, voterID string) (*member.Response, error)
}

// CardValidator checks member card tokens.
type CardValidator interface {
	Validate(tokenString string) (*token.CardClaims, error)
}

// Result is a completed lookup. Not-found is a result, not an error.
type Result struct {
	Found   bool             `json:"found"`
	Message string           `json:"message,omitempty"`
	Member  *member.Response `json:"member,omitempty"`
}

type VerificationService struct {
	finder  MemberFinder
	cards   CardValidator
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

func NewVerificationService(finder MemberFinder, cards CardValidator, m *metrics.Metrics) *VerificationService {
	return &VerificationService{
		finder:  finder,
		cards:   cards,
		metrics: m,
		tracer:  otel.Tracer("github.com/Sheddybata/sdp.app/internal/verification"),
	}
}

// VerifyByMembershipID looks a member up by an ID such as SDP-OKO-567890.
// Input that cannot be a membership ID is reported as not found without
// querying the store.
func (s *VerificationService) VerifyByMembershipID(ctx context.Context, input string) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "verification.VerifyByMembershipID")
	defer span.End()

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, s.invalid(span, MethodMembershipID, msgMembershipIDRequired)
	}
	if len([]rune(trimmed)) < minMembershipIDLength {
		return nil, s.invalid(span, MethodMembershipID, msgMembershipIDTooShort)
	}

	membershipID, err := identifier.ParseMembershipID(trimmed)
	if err != nil {
		span.SetAttributes(attribute.Bool("verification.well_formed", false))
		return s.notFound(MethodMembershipID, msgMembershipNotFound), nil
	}
	span.SetAttributes(attribute.String("verification.membership_id", membershipID))

	found, err := s.finder.FindByMembershipID(ctx, membershipID)
	return s.complete(ctx, span, MethodMembershipID, found, err, msgMembershipNotFound)
}

// VerifyByVoterID looks a member up by voter registration number. Spaces are
// ignored and letters match in any case.
func (s *VerificationService) VerifyByVoterID(ctx context.Context, input string) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "verification.VerifyByVoterID")
	defer span.End()

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, s.invalid(span, MethodVoterID, msgVoterIDRequired)
	}

	voterID := identifier.CanonicalVoterID(trimmed)
	if n := len([]rune(voterID)); n != identifier.VoterIDLength {
		return nil, s.invalid(span, MethodVoterID, voterIDLengthMessage(n))
	}

	found, err := s.finder.FindByVoterID(ctx, voterID)
	return s.complete(ctx, span, MethodVoterID, found, err, msgVoterNotFound)
}

// VerifyByCard checks a member card token and looks up the member it names.
// A card whose member was removed, or whose membership ID now belongs to
// someone else, is not found.
func (s *VerificationService) VerifyByCard(ctx context.Context, cardToken string) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "verification.VerifyByCard")
	defer span.End()

	cardToken = strings.TrimSpace(cardToken)
	if cardToken == "" {
		return nil, s.invalid(span, MethodCard, msgCardRequired)
	}

	claims, err := s.cards.Validate(cardToken)
	if err != nil {
		logger.FromContext(ctx).Info("member card rejected", "reason", err)
		if errors.Is(err, token.ErrExpiredToken) {
			return nil, s.invalid(span, MethodCard, msgCardExpired)
		}
		return nil, s.invalid(span, MethodCard, msgCardInvalid)
	}

	found, err := s.finder.FindByMembershipID(ctx, claims.MembershipID)
	if err == nil && found.ID != claims.Subject {
		found, err = nil, member.ErrMemberNotFound
	}
	return s.complete(ctx, span, MethodCard, found, err, msgCardNotFound)
}

func (s *VerificationService) complete(ctx context.Context, span trace.Span, method string, found *member.Response, err error, notFoundMsg string) (*Result, error) {
	switch {
	case err == nil:
		s.metrics.IncrementVerification(method, metrics.OutcomeSuccess)
		span.SetAttributes(attribute.Bool("verification.found", true))
		return &Result{Found: true, Member: found}, nil
	case errors.Is(err, member.ErrMemberNotFound):
		span.SetAttributes(attribute.Bool("verification.found", false))
		return s.notFound(method, notFoundMsg), nil
	default:
		s.metrics.IncrementVerification(method, metrics.OutcomeUnavailable)
		span.RecordError(err)
		span.SetStatus(codes.Error, "member lookup failed")
		logger.FromContext(ctx).Error("verification lookup failed", "method", method, "error", err)
		if !errors.Is(err, member.ErrDatabaseUnavailable) {
			err = fmt.Errorf("%w: %w", member.ErrDatabaseUnavailable, err)
		}
		return nil, fmt.Errorf("verify by %s: %w", method, err)
	}
}

func (s *VerificationService) notFound(method, msg string) *Result {
	s.metrics.IncrementVerification(method, metrics.OutcomeNotFound)
	return &Result{Found: false, Message: msg}
}

func (s *VerificationService) invalid(span trace.Span, method, msg string) error {
	s.metrics.IncrementVerification(method, metrics.OutcomeInvalid)
	span.SetAttributes(attribute.Bool("verification.valid_input", false))
	return sharedError.WithMessage(ErrInvalidInput, msg)
}

func voterIDLengthMessage(n int) string {
	plural := "s"
	if n == 1 {
		plural = ""
	}
	return fmt.Sprintf("Voter ID must be exactly 20 characters. You entered %d character%s. Please check and try again.", n, plural)
}
