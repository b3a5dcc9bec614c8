package registration

import (
	"formlab/internal/platform/validator"
)

const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldAge             = "age"
	FieldWebsite         = "website"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// Fields lists the registration form fields in display order.
var Fields = []string{
	FieldName,
	FieldEmail,
	FieldAge,
	FieldWebsite,
	FieldPassword,
	FieldConfirmPassword,
}

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// Schema returns the rule set of the registration form.
func Schema() validator.Schema {
	return validator.Schema{
		FieldName: {
			validator.Required("Name is required"),
			validator.MinLength(2, "Name must be at least 2 characters"),
			validator.MaxLength(50, "Name must be at most 50 characters"),
		},
		FieldEmail: {
			validator.Required("Email is required"),
			validator.Email("Please enter a valid email address"),
		},
		FieldAge: {
			validator.Required("Age is required"),
			validator.Numeric("Age must be a number"),
			validator.WholeNumber("Age must be a whole number"),
			validator.MinNumber(18, "You must be at least 18 years old"),
			validator.MaxNumber(120, "Please enter a valid age"),
		},
		FieldWebsite: {
			validator.Optional(validator.URL("Website must be a valid URL")),
		},
		FieldPassword: {
			validator.Required("Password is required"),
			validator.MinLength(8, "Password must be at least 8 characters"),
			validator.MaxBytes(MaxPasswordBytes, "Password is too long"),
			validator.ContainsUpper("Password must contain an uppercase letter"),
			validator.ContainsLower("Password must contain a lowercase letter"),
			validator.ContainsDigit("Password must contain a number"),
		},
		FieldConfirmPassword: {
			validator.Required("Please confirm your password"),
			validator.EqualsField(FieldPassword, "Passwords do not match"),
		},
	}
}

// Form is the struct-tag rendition of Schema.
type Form struct {
	Name            string `json:"name" validate:"required,min=2,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Age             string `json:"age" validate:"required,number,numgte=18,numlte=120"`
	Website         string `json:"website" validate:"omitempty,url"`
	Password        string `json:"password" validate:"required,min=8,maxbytes=72,containsany=ABCDEFGHIJKLMNOPQRSTUVWXYZ,containsany=abcdefghijklmnopqrstuvwxyz,containsany=0123456789"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func FormFromValues(values validator.Values) Form {
	return Form{
		Name:            values.Get(FieldName),
		Email:           values.Get(FieldEmail),
		Age:             values.Get(FieldAge),
		Website:         values.Get(FieldWebsite),
		Password:        values.Get(FieldPassword),
		ConfirmPassword: values.Get(FieldConfirmPassword),
	}
}

const (
	// ApproachRules validates with the hand-written rule schema.
	ApproachRules = "rules"
	// ApproachTags validates Form through its struct tags.
	ApproachTags = "tags"
)
