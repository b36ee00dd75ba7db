package onboarding

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/identity-lifecycle/config"
	"github.com/ARM-software/identity-lifecycle/retry"
)

// Configuration tunes the onboarding run.
type Configuration struct {
	// Retry is the policy applied to the account creation call. Conflicts are never
	// retried: an existing account means the subject is already onboarded.
	Retry retry.RetryPolicyConfiguration `mapstructure:"retry"`
}

func (cfg *Configuration) Validate() error {
	err := config.ValidateEmbedded(cfg)
	if err != nil {
		return err
	}
	return validation.ValidateStruct(cfg)
}

func DefaultConfiguration() *Configuration {
	return &Configuration{
		Retry: *retry.DefaultExponentialBackoffRetryPolicyConfiguration(),
	}
}
