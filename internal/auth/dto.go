package auth

import "github.com/frahmantamala/vehicle-ledger/internal"

// LoginDTO is the transport shape used by the HTTP handler to accept login
// requests. There is no username: the ledger is single-user.
type LoginDTO struct {
	Password string `json:"password"`
}

func (d LoginDTO) Validate() error {
	if d.Password == "" {
		return internal.NewRequiredFieldError("password")
	}
	return nil
}
