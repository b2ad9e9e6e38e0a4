package member_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/Sheddybata/sdp.app/internal/geo"
	"github.com/Sheddybata/sdp.app/internal/member"
	sharedError "github.com/Sheddybata/sdp.app/internal/shared/error"
	"github.com/Sheddybata/sdp.app/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberService_ResponseDerivesMembershipID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := member.NewMemberRepository()
	svc := member.NewMemberService(db, repo, geo.Sample())
	ctx := context.Background()

	m := newMember("Okonkwo", "ABCDEFGHIJ1234567890", "lagos", "")
	m.MembershipID = "stale-value"
	require.NoError(t, repo.Create(ctx, db, m))

	resp, err := svc.FindByVoterID(ctx, "ABCDEFGHIJ1234567890")
	require.NoError(t, err)
	assert.Equal(t, "SDP-OKO-567890", resp.MembershipID)
	assert.Equal(t, "ABCD EFGH IJ12 3456 7890", resp.VoterIDDisplay)
	assert.Equal(t, "Lagos", resp.StateName)
	assert.Equal(t, "Ikeja", resp.LGAName)
	assert.Equal(t, "Anifowoshe", resp.WardName)
	assert.Equal(t, "Ade Okonkwo", resp.FullName())
}

func TestMemberService_NotFoundVersusUnavailable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := member.NewMemberService(db, member.NewMemberRepository(), nil)
	ctx := context.Background()

	_, err := svc.FindByMembershipID(ctx, "SDP-OKO-567890")
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
	assert.NotErrorIs(t, err, member.ErrDatabaseUnavailable)

	testutil.CloseTestDB(t, db)

	_, err = svc.FindByMembershipID(ctx, "SDP-OKO-567890")
	assert.ErrorIs(t, err, member.ErrDatabaseUnavailable)
	assert.NotErrorIs(t, err, member.ErrMemberNotFound)

	resp, ok := sharedError.ResolveDomainError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Status)
	assert.Contains(t, resp.Message, "trouble connecting")

	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, member.ErrDatabaseUnavailable)
	assert.ErrorIs(t, svc.Delete(ctx, "0b9f0d8e-5f6a-4bb8-9a57-7a0b1b9e2f10"), member.ErrDatabaseUnavailable)
}
