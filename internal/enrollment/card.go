package enrollment

import (
	"strings"
	"time"

	"github.com/Sheddybata/sdp.app/internal/identifier"
	"github.com/Sheddybata/sdp.app/internal/member"
	"github.com/Sheddybata/sdp.app/internal/model"
)

// Card is the printable member card.
type Card struct {
	MembershipID string `json:"membershipId"`
	VoterID      string `json:"voterId"`
	FullName     string `json:"fullName"`
	State        string `json:"state"`
	MemberSince  string `json:"memberSince"`
	QRPayload    string `json:"qrPayload"`
	Token        string `json:"cardToken,omitempty"`
}

// Enrollment is the outcome of a successful submission.
type Enrollment struct {
	Member member.Response `json:"member"`
	Card   Card            `json:"card"`
}

// NewCard lays out the card for a stored member.
func NewCard(m member.Response, token string, now time.Time) Card {
	names := []string{m.Surname, m.FirstName}
	if m.OtherNames != "" {
		names = append(names, m.OtherNames)
	}

	return Card{
		MembershipID: m.MembershipID,
		VoterID:      identifier.FormatVoterID(m.VoterRegistrationNumber),
		FullName:     strings.ToUpper(strings.Join(names, " ")),
		State:        m.StateName,
		MemberSince:  memberSince(m.JoinDate, now),
		QRPayload:    identifier.QRPayload(m.VoterRegistrationNumber),
		Token:        token,
	}
}

// memberSince renders the join month as "January 2026", or the current year
// when the join date is missing or unreadable.
func memberSince(joinDate string, now time.Time) string {
	t, err := time.Parse(model.DateLayout, joinDate)
	if err != nil {
		return now.Format("2006")
	}
	return t.Format("January 2006")
}
