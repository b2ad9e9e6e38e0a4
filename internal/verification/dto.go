package verification

type MembershipIDRequest struct {
	MembershipID string `json:"membershipId"`
}

type VoterIDRequest struct {
	VoterID string `json:"voterId"`
}

type CardRequest struct {
	CardToken string `json:"cardToken"`
}
