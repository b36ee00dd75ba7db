package config

//go:generate mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/identity-lifecycle/$GOPACKAGE IServiceConfiguration

type IServiceConfiguration interface {
	// Validates configuration entries.
	Validate() error
}

// Validator defines an object which can validate itself.
type Validator interface {
	Validate() error
}
