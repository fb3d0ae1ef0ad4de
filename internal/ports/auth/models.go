package auth

// Claims representa la información extraída del token.
type Claims struct {
	UserID int64
	Email  string
	Roles  []string
}

// HasRole responde si los claims incluyen el rol indicado.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}
