package enrollment_test

import (
	"context"
	"testing"
	"time"

	"github.com/Sheddybata/sdp.app/internal/enrollment"
	"github.com/Sheddybata/sdp.app/internal/geo"
	"github.com/Sheddybata/sdp.app/internal/member"
	"github.com/Sheddybata/sdp.app/internal/model"
	"github.com/Sheddybata/sdp.app/internal/shared/metrics"
	"github.com/Sheddybata/sdp.app/internal/shared/testutil"
	"github.com/Sheddybata/sdp.app/internal/shared/token"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type serviceFixture struct {
	db      *gorm.DB
	service *enrollment.EnrollmentService
	metrics *metrics.Metrics
	cards   *token.JWTCardManager
}

func setupService(t *testing.T) serviceFixture {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := testutil.NewTestConfig()
	m := metrics.NewNop()
	cards := token.NewJWTCardManager(cfg)

	svc := enrollment.NewEnrollmentService(
		db,
		member.NewMemberRepository(),
		newFormValidator(t),
		cards,
		geo.Sample(),
		m,
	).WithClock(func() time.Time { return fixedNow })

	return serviceFixture{db: db, service: svc, metrics: m, cards: cards}
}

func TestEnrollmentService_Submit(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	form := validForm()
	form.VoterRegistrationNumber = "abcd efgh ij12 3456 7890"

	result, err := f.service.Submit(ctx, form)
	require.NoError(t, err)

	assert.Equal(t, "SDP-OKO-567890", result.Member.MembershipID)
	assert.Equal(t, "ABCDEFGHIJ1234567890", result.Member.VoterRegistrationNumber)
	assert.Equal(t, model.RegisteredBySelf, result.Member.RegisteredBy)

	card := result.Card
	assert.Equal(t, "SDP-OKO-567890", card.MembershipID)
	assert.Equal(t, "ABCD EFGH IJ12 3456 7890", card.VoterID)
	assert.Equal(t, "OKONKWO CHIDI EMEKA", card.FullName)
	assert.Equal(t, "Lagos", card.State)
	assert.Equal(t, "January 2026", card.MemberSince)
	assert.Equal(t, "SDP-MEMBER:ABCDEFGHIJ1234567890", card.QRPayload)

	claims, err := f.cards.Validate(card.Token)
	require.NoError(t, err)
	assert.Equal(t, result.Member.ID, claims.Subject)
	assert.Equal(t, "SDP-OKO-567890", claims.MembershipID)

	var stored model.Member
	require.NoError(t, f.db.First(&stored, "id = ?", result.Member.ID).Error)
	assert.Equal(t, "SDP-OKO-567890", stored.MembershipID)

	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.EnrollmentsTotal.WithLabelValues(metrics.OutcomeSuccess)))
}

func TestEnrollmentService_DefaultsJoinDate(t *testing.T) {
	f := setupService(t)

	form := validForm()
	form.JoinDate = ""

	result, err := f.service.SubmitForAdmin(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", result.Member.JoinDate)
	assert.Equal(t, "March 2026", result.Card.MemberSince)
	assert.Equal(t, model.RegisteredByAdmin, result.Member.RegisteredBy)
}

func TestEnrollmentService_DuplicateVoterID(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	_, err := f.service.Submit(ctx, validForm())
	require.NoError(t, err)

	// Same voter ID in a different case and spacing.
	again := validForm()
	again.Surname = "Adeyemi"
	again.VoterRegistrationNumber = "abcdefghij1234567890"

	_, err = f.service.Submit(ctx, again)
	assert.ErrorIs(t, err, member.ErrAlreadyRegistered)
	assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.EnrollmentsTotal.WithLabelValues(metrics.OutcomeConflict)))
}

func TestEnrollmentService_InvalidFormIsNotStored(t *testing.T) {
	f := setupService(t)

	form := validForm()
	form.AgreedToConstitution = false

	_, err := f.service.Submit(context.Background(), form)
	assert.ErrorIs(t, err, enrollment.ErrInvalidForm)

	var count int64
	require.NoError(t, f.db.Model(&model.Member{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEnrollmentService_PaddedSurnameIsRejected(t *testing.T) {
	for _, surname := range []string{"   ", "A "} {
		t.Run(surname, func(t *testing.T) {
			f := setupService(t)

			form := validForm()
			form.Surname = surname

			_, err := f.service.Submit(context.Background(), form)
			assert.Contains(t, fieldsOf(t, err), "surname")

			var count int64
			require.NoError(t, f.db.Model(&model.Member{}).Count(&count).Error)
			assert.Zero(t, count)
			assert.Equal(t, 1.0, promtest.ToFloat64(f.metrics.EnrollmentsTotal.WithLabelValues(metrics.OutcomeInvalid)))
		})
	}
}

func TestEnrollmentService_StoresTrimmedValues(t *testing.T) {
	f := setupService(t)

	form := validForm()
	form.Surname = "  Okonkwo "
	form.FirstName = " Chidi"
	form.Phone = " 0803 123 4567 "

	result, err := f.service.Submit(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "SDP-OKO-567890", result.Member.MembershipID)

	var stored model.Member
	require.NoError(t, f.db.First(&stored, "id = ?", result.Member.ID).Error)
	assert.Equal(t, "Okonkwo", stored.Surname)
	assert.Equal(t, "Chidi", stored.FirstName)
	assert.Equal(t, "0803 123 4567", stored.Phone)
}

func TestEnrollmentService_DatabaseUnavailable(t *testing.T) {
	f := setupService(t)
	testutil.CloseTestDB(t, f.db)

	_, err := f.service.Submit(context.Background(), validForm())

	assert.ErrorIs(t, err, member.ErrDatabaseUnavailable)
	assert.NotErrorIs(t, err, member.ErrAlreadyRegistered)
}
