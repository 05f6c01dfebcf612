package auth

// ClientClaims describes the authenticated caller of an API route.
type ClientClaims interface {
	KeyID() string
	Source() string
}

// APIKeyClaims carries the validated key behind an X-API-Key header.
type APIKeyClaims struct {
	KeyIDVal string
}

func (c *APIKeyClaims) KeyID() string  { return c.KeyIDVal }
func (c *APIKeyClaims) Source() string { return "API_KEY" }
