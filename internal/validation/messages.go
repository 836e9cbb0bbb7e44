package validation

// QuoteMessages is the text for quote form failures. The client checks the
// form before sending and the API checks it again, so both read this table.
var QuoteMessages = Messages{
	"firstName.required":    "First Name is required",
	"lastName.required":     "Last Name is required",
	"phoneNumber.required":  "Phone is required",
	"email.required":        "Email is required",
	"email.email":           "Must be valid email",
	"insuredValue.required": "Insured value is required",
}

// LoginMessages is the text for the login form.
var LoginMessages = Messages{
	"email.required":          "Email is required",
	"email.email":             "Enter a valid email",
	"password.required":       "Password is required",
	"password.strongpassword": "Please create a stronger password",
}
