package domain

// Credential is one row of the validation database. Passwords are stored
// and compared in plain text, matching the demo data source.
type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

// PaymentModes maps a payment mode key to its display name.
type PaymentModes map[string]string
