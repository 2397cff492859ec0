package auth

import (
	"fmt"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
	"github.com/dmitrijs2005/launchkeeper/internal/server/auth/passwords"
)

const (
	KindPassword  = "password"
	KindFederated = "federated"
)

// Options select and configure the single provider used by the process.
type Options struct {
	Kind             string
	PasswordVerifier string
	PasswordSalt     string
	Federated        FederatedOptions
}

// New builds the provider named by opts.Kind.
func New(d Deps, opts Options) (Provider, error) {
	switch opts.Kind {
	case KindPassword, "":
		v, err := passwords.New(opts.PasswordVerifier, opts.PasswordSalt)
		if err != nil {
			return nil, err
		}
		p, err := NewPasswordProvider(d, v)
		if err != nil {
			return nil, err
		}
		return p, nil
	case KindFederated:
		p, err := NewFederatedProvider(d, opts.Federated)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, fmt.Errorf("%w: unknown auth provider %q", common.ErrorConfiguration, opts.Kind)
}
