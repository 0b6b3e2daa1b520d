package contact

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidationError describes the first submission rule an input failed.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

var (
	// ErrFieldsRequired is returned when any field is blank after trimming.
	ErrFieldsRequired = ValidationError{Code: "required", Message: "All fields are required."}
	// ErrFirstNameDigits is returned when the first name contains a digit.
	ErrFirstNameDigits = ValidationError{Code: "first_name_digits", Message: "First name should not contain numbers."}
	// ErrLastNameDigits is returned when the last name contains a digit.
	ErrLastNameDigits = ValidationError{Code: "last_name_digits", Message: "Last name should not contain numbers."}
	// ErrInvalidMobile is returned unless the mobile number is exactly ten digits.
	ErrInvalidMobile = ValidationError{Code: "mobile", Message: "Mobile number must be exactly 10 digits."}
	// ErrInvalidEmail is returned when the email lacks an '@' or a '.'.
	ErrInvalidEmail = ValidationError{Code: "email", Message: "Invalid email format."}
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("nodigits", noDigits); err != nil {
		panic(err)
	}
	return v
}

func noDigits(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsDigit)
}

type rule struct {
	field func(Input) string
	tag   string
	err   ValidationError
}

// Checked in order once every field is present.
var rules = []rule{
	{field: func(in Input) string { return in.FirstName }, tag: "nodigits", err: ErrFirstNameDigits},
	{field: func(in Input) string { return in.LastName }, tag: "nodigits", err: ErrLastNameDigits},
	{field: func(in Input) string { return in.Mobile }, tag: "len=10,number", err: ErrInvalidMobile},
	{field: func(in Input) string { return in.Email }, tag: "contains=@,contains=.", err: ErrInvalidEmail},
}

// Validate trims the input and applies the submission rules, stopping at the
// first failure. On success it returns a Contact ready for storage.
func Validate(in Input) (Contact, error) {
	in = in.Normalize()

	if err := validate.Struct(in); err != nil {
		return Contact{}, ErrFieldsRequired
	}
	for _, r := range rules {
		if err := validate.Var(r.field(in), r.tag); err != nil {
			return Contact{}, r.err
		}
	}

	return Contact{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Mobile:    in.Mobile,
		Location:  in.Location,
	}, nil
}
