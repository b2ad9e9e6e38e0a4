package enrollment

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Sheddybata/sdp.app/internal/geo"
	sharedValidator "github.com/Sheddybata/sdp.app/internal/shared/validator"
	"github.com/go-playground/validator/v10"
)

// Titles is the closed set of honorifics accepted for the title field.
var Titles = []string{
	"Mr", "Mrs", "Miss", "Ms", "Dr", "Prof", "Alh", "Chief",
	"Barr", "Pst", "Amb", "Maj", "Capt", "Lt", "Col", "Brig", "Gen",
	"Engr", "Elder", "Rev", "Ven", "Sir", "Dame", "Arc", "Pharm",
	"Hon", "Mallam", "Oba", "Emir", "Prince", "Prophet",
}

// Form is the enrollment record, complete or partial.
type Form struct {
	// Step 1: identity
	Title      string `json:"title" validate:"required,oneof=Mr Mrs Miss Ms Dr Prof Alh Chief Barr Pst Amb Maj Capt Lt Col Brig Gen Engr Elder Rev Ven Sir Dame Arc Pharm Hon Mallam Oba Emir Prince Prophet"`
	Surname    string `json:"surname" validate:"required,min=2,max=80"`
	FirstName  string `json:"firstName" validate:"required,min=2,max=80"`
	OtherNames string `json:"otherNames" validate:"max=160"`

	// Step 2: contact
	Phone       string `json:"phone" validate:"required,min=10,max=15,phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"`

	// Step 3: geography
	JoinDate string `json:"joinDate" validate:"omitempty,datetime=2006-01-02"`
	State    string `json:"state" validate:"required"`
	LGA      string `json:"lga" validate:"required"`
	Ward     string `json:"ward" validate:"required"`

	// Step 4: verification
	VoterRegistrationNumber string `json:"voterRegistrationNumber" validate:"required,voterid"`
	PortraitDataURL         string `json:"portraitDataUrl" validate:"omitempty,datauri"`
	AgreedToConstitution    bool   `json:"agreedToConstitution" validate:"accepted"`
}

// Normalized returns the form with surrounding whitespace removed from its
// text fields. Validation and storage both operate on the normalized form.
func (f Form) Normalized() Form {
	for _, field := range []*string{
		&f.Title, &f.Surname, &f.FirstName, &f.OtherNames,
		&f.Phone, &f.Email, &f.DateOfBirth,
		&f.JoinDate, &f.State, &f.LGA, &f.Ward,
		&f.VoterRegistrationNumber, &f.PortraitDataURL,
	} {
		*field = strings.TrimSpace(*field)
	}
	return f
}

// ValidationError lists failing fields by JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("enrollment: invalid fields: %s", strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidForm
}

// FieldMessages returns the per-field messages.
func (e *ValidationError) FieldMessages() map[string]string {
	return e.Fields
}

// fieldMessages overrides the shared messages for specific field/tag pairs.
var fieldMessages = map[string]map[string]string{
	"title":                   {"required": "Please select a title.", "oneof": "Please select a title from the list."},
	"surname":                 {"required": "Surname is required (min 2 characters)", "min": "Surname is required (min 2 characters)"},
	"firstName":               {"required": "First name is required", "min": "First name is required"},
	"phone":                   {"required": "Valid phone required", "min": "Valid phone required"},
	"email":                   {"email": "Valid email required"},
	"dateOfBirth":             {"required": "Date of birth is required"},
	"state":                   {"required": "State is required"},
	"lga":                     {"required": "LGA is required"},
	"ward":                    {"required": "Ward is required"},
	"voterRegistrationNumber": {"required": "Voter ID must be exactly 20 characters", "voterid": "Invalid format (20 letters and numbers only)"},
	"portraitDataUrl":         {"datauri": "The portrait could not be read. Please retake the photo."},
}

var chainMessages = map[string]string{
	"state": "Please select a valid state.",
	"lga":   "Please select an LGA in the chosen state.",
	"ward":  "Please select a ward in the chosen LGA.",
}

// FormValidator validates a Form one step at a time or end to end.
type FormValidator struct {
	validate *validator.Validate
	geo      geo.Provider
}

// NewFormValidator returns a validator. provider may be nil, in which case the
// state/lga/ward chain is only checked for presence.
func NewFormValidator(provider geo.Provider) (*FormValidator, error) {
	v, err := sharedValidator.New()
	if err != nil {
		return nil, fmt.Errorf("create form validator: %w", err)
	}
	return &FormValidator{validate: v, geo: provider}, nil
}

// ValidateStep checks only the fields that belong to step. Preview has no
// fields. Values are checked after normalization.
func (f *FormValidator) ValidateStep(form Form, step Step) error {
	form = form.Normalized()
	fields := step.structFields()
	if len(fields) == 0 {
		return nil
	}

	messages, err := f.collect(f.validate.StructPartial(form, fields...))
	if err != nil {
		return err
	}
	if step == StepGeography {
		f.checkChain(form, messages)
	}
	return asError(messages)
}

// ValidateAll re-checks every normalized field and the geography chain.
func (f *FormValidator) ValidateAll(form Form) error {
	form = form.Normalized()
	messages, err := f.collect(f.validate.Struct(form))
	if err != nil {
		return err
	}
	f.checkChain(form, messages)
	return asError(messages)
}

func (f *FormValidator) collect(err error) (map[string]string, error) {
	messages := map[string]string{}
	if err == nil {
		return messages, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, fmt.Errorf("validate enrollment form: %w", err)
	}

	for _, fe := range validationErrors {
		if _, exists := messages[fe.Field()]; exists {
			continue
		}
		if msg, ok := fieldMessages[fe.Field()][fe.Tag()]; ok {
			messages[fe.Field()] = msg
			continue
		}
		messages[fe.Field()] = sharedValidator.Message(fe)
	}
	return messages, nil
}

// checkChain validates state -> lga -> ward when all three are present.
func (f *FormValidator) checkChain(form Form, messages map[string]string) {
	if f.geo == nil {
		return
	}
	for _, field := range []string{"state", "lga", "ward"} {
		if _, failed := messages[field]; failed {
			return
		}
	}

	var chainErr *geo.ChainError
	if err := f.geo.ValidateChain(form.State, form.LGA, form.Ward); errors.As(err, &chainErr) {
		messages[chainErr.Field] = chainMessages[chainErr.Field]
	}
}

func asError(messages map[string]string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Fields: messages}
}
