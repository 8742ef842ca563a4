package model

// Principal is the authenticated caller extracted from the access token.
type Principal struct {
	UserID      int64
	Username    string
	IsSuperuser bool
}
