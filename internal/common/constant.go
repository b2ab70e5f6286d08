package common

const (
	// AuthorizationHeader carries the bearer token on authenticated requests.
	AuthorizationHeader = "Authorization"

	// BearerScheme is the scheme prefix of AuthorizationHeader values.
	BearerScheme = "Bearer"
)
