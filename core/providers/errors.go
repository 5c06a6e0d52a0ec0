package providers

import "fmt"

// AuthError is returned at call time when a handle has no usable
// credential for its provider. Resolution itself never checks keys.
type AuthError struct {
	Provider ProviderType
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("no API key available for provider %s", e.Provider)
}
