package identifier

import (
	"errors"
	"strings"
	"unicode"
)

const (
	// MembershipPrefix is the literal first segment of every membership ID.
	MembershipPrefix = "SDP"
	// MembershipPlaceholder stands in for the voter-derived suffix when no voter ID is known.
	MembershipPlaceholder = "------"

	surnameSegmentLength = 3
	voterSegmentLength   = 6
	qrPayloadPrefix      = "SDP-MEMBER:"
)

var ErrInvalidMembershipID = errors.New("identifier: membership ID must look like SDP-XXX-XXXXXX")

// DeriveMembershipID builds SDP-{surname prefix}-{voter suffix}.
//
// The prefix is the first three letters of surname, upper-cased and padded
// with 'X'. The suffix is the last six characters of the normalized voter ID,
// upper-cased and left-padded with '-', or MembershipPlaceholder when the
// voter ID is empty.
func DeriveMembershipID(surname, voterID string) string {
	return MembershipPrefix + "-" + surnamePrefix(surname) + "-" + voterSuffix(voterID)
}

func surnamePrefix(surname string) string {
	letters := make([]rune, 0, surnameSegmentLength)
	for _, r := range surname {
		if len(letters) == surnameSegmentLength {
			break
		}
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToUpper(r))
		}
	}
	for len(letters) < surnameSegmentLength {
		letters = append(letters, 'X')
	}
	return string(letters)
}

func voterSuffix(voterID string) string {
	raw := []rune(CanonicalVoterID(voterID))
	if len(raw) == 0 {
		return MembershipPlaceholder
	}
	if len(raw) > voterSegmentLength {
		raw = raw[len(raw)-voterSegmentLength:]
	}
	return MembershipPlaceholder[len(raw):] + string(raw)
}

// NormalizeMembershipID removes whitespace and upper-cases the input.
func NormalizeMembershipID(input string) string {
	return strings.ToUpper(StripWhitespace(input))
}

// ParseMembershipID normalizes input and checks it has three dash-separated
// segments, the first being SDP.
func ParseMembershipID(input string) (string, error) {
	normalized := NormalizeMembershipID(input)
	parts := strings.Split(normalized, "-")
	if len(parts) != 3 || parts[0] != MembershipPrefix || parts[1] == "" || parts[2] == "" {
		return "", ErrInvalidMembershipID
	}
	return normalized, nil
}

// QRPayload is the text encoded in the member card QR code.
func QRPayload(voterID string) string {
	return qrPayloadPrefix + CanonicalVoterID(voterID)
}
