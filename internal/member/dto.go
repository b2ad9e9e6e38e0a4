package member

import (
	"strings"
	"time"

	"github.com/Sheddybata/sdp.app/internal/geo"
	"github.com/Sheddybata/sdp.app/internal/identifier"
	"github.com/Sheddybata/sdp.app/internal/model"
)

// Response is the client view of a member. MembershipID is always derived
// from surname and voter ID, never read back from storage.
type Response struct {
	ID                      string    `json:"id"`
	MembershipID            string    `json:"membershipId"`
	Title                   string    `json:"title"`
	Surname                 string    `json:"surname"`
	FirstName               string    `json:"firstName"`
	OtherNames              string    `json:"otherNames,omitempty"`
	Phone                   string    `json:"phone"`
	Email                   string    `json:"email,omitempty"`
	DateOfBirth             string    `json:"dateOfBirth"`
	Gender                  string    `json:"gender,omitempty"`
	JoinDate                string    `json:"joinDate"`
	State                   string    `json:"state"`
	StateName               string    `json:"stateName"`
	LGA                     string    `json:"lga"`
	LGAName                 string    `json:"lgaName"`
	Ward                    string    `json:"ward"`
	WardName                string    `json:"wardName"`
	VoterRegistrationNumber string    `json:"voterRegistrationNumber"`
	VoterIDDisplay          string    `json:"voterIdDisplay"`
	PortraitDataURL         string    `json:"portraitDataUrl,omitempty"`
	RegisteredBy            string    `json:"registeredBy,omitempty"`
	CreatedAt               time.Time `json:"createdAt"`
}

// NewResponse maps a stored member. provider may be nil, in which case
// geography names echo the ids.
func NewResponse(m *model.Member, provider geo.Provider) Response {
	stateName, lgaName, wardName := m.State, m.LGA, m.Ward
	if provider != nil {
		stateName, lgaName, wardName = provider.Names(m.State, m.LGA, m.Ward)
	}

	return Response{
		ID:                      m.ID,
		MembershipID:            identifier.DeriveMembershipID(m.Surname, m.VoterRegistrationNumber),
		Title:                   m.Title,
		Surname:                 m.Surname,
		FirstName:               m.FirstName,
		OtherNames:              m.OtherNames,
		Phone:                   m.Phone,
		Email:                   m.Email,
		DateOfBirth:             m.DateOfBirth,
		Gender:                  m.Gender,
		JoinDate:                m.JoinDate,
		State:                   m.State,
		StateName:               stateName,
		LGA:                     m.LGA,
		LGAName:                 lgaName,
		Ward:                    m.Ward,
		WardName:                wardName,
		VoterRegistrationNumber: m.VoterRegistrationNumber,
		VoterIDDisplay:          identifier.FormatVoterID(m.VoterRegistrationNumber),
		PortraitDataURL:         m.PortraitDataURL,
		RegisteredBy:            m.RegisteredBy,
		CreatedAt:               m.CreatedAt,
	}
}

// FullName joins first name, other names and surname.
func (r Response) FullName() string {
	parts := []string{r.FirstName}
	if r.OtherNames != "" {
		parts = append(parts, r.OtherNames)
	}
	return strings.Join(append(parts, r.Surname), " ")
}
