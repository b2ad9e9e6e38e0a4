package model

// Registration channels recorded in Member.RegisteredBy.
const (
	RegisteredBySelf  = "self"
	RegisteredByAdmin = "admin"
)

// Member is an enrolled party member.
// Date columns hold ISO dates (YYYY-MM-DD) so range filters compare lexically on every driver.
type Member struct {
	BaseEntity

	Title      string `gorm:"column:title;size:20;not null"`
	Surname    string `gorm:"column:surname;size:80;not null"`
	FirstName  string `gorm:"column:first_name;size:80;not null"`
	OtherNames string `gorm:"column:other_names;size:160"`

	Phone       string `gorm:"column:phone;size:20;not null"`
	Email       string `gorm:"column:email;size:255"`
	DateOfBirth string `gorm:"column:date_of_birth;size:10;not null"`
	Gender      string `gorm:"column:gender;size:10"`

	JoinDate string `gorm:"column:join_date;size:10;not null;index"`
	State    string `gorm:"column:state;size:64;not null;index"`
	LGA      string `gorm:"column:lga;size:64;not null"`
	Ward     string `gorm:"column:ward;size:64;not null"`

	// Stored canonical: whitespace-free and upper-cased.
	VoterRegistrationNumber string `gorm:"column:voter_registration_number;size:20;not null;uniqueIndex:idx_members_voter_registration_number"`
	MembershipID            string `gorm:"column:membership_id;size:20;not null;index:idx_members_membership_id"`
	PortraitDataURL         string `gorm:"column:portrait_data_url"`
	AgreedToConstitution    bool   `gorm:"column:agreed_to_constitution;not null"`
	RegisteredBy            string `gorm:"column:registered_by;size:20;not null"`
}

func (*Member) TableName() string {
	return "members"
}

// FullName joins first name, other names and surname.
func (m *Member) FullName() string {
	name := m.FirstName
	if m.OtherNames != "" {
		name += " " + m.OtherNames
	}
	return name + " " + m.Surname
}
