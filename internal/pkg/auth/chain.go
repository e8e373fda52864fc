package auth

// Chain issues with its first strategy and accepts a token any strategy accepts.
type Chain []Strategy

func (c Chain) IssueToken(shop string) (string, error) {
	if len(c) == 0 {
		return "", ErrInvalidToken
	}
	return c[0].IssueToken(shop)
}

func (c Chain) ParseToken(token string) (string, error) {
	for _, s := range c {
		if shop, err := s.ParseToken(token); err == nil {
			return shop, nil
		}
	}
	return "", ErrInvalidToken
}

func (c Chain) Name() string {
	return "chain"
}
