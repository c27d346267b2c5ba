package domain

// User is the users service's stored record. Its Credential is owned
// one-to-one and never outlives the user.
type User struct {
	UserID     int64
	FirstName  string
	LastName   string
	ImageURL   string
	Email      string
	Phone      string
	Credential Credential
}

type Credential struct {
	CredentialID int64
	Username     string
	Password     string
	IsEnabled    bool
}
