// Package identity holds the directory-facing model of the people involved in a
// lifecycle transition: the subject being onboarded or offboarded and the manager
// receiving ownership of the subject's resources.
package identity

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
	configvalidation "github.com/ARM-software/identity-lifecycle/config/validation"
)

// State is the lifecycle state a subject has reached.
type State string

const (
	StateActive       State = "ACTIVE"
	StateSuspended    State = "SUSPENDED"
	StateRenamed      State = "RENAMED"
	StateGroupCreated State = "GROUP_CREATED"
	StateArchived     State = "ARCHIVED"
	StateDeleted      State = "DELETED"
	StateReverted     State = "REVERTED"
)

// Address is the primary email address of a directory entity.
type Address string

func (a Address) String() string {
	return string(a)
}

func (a Address) Validate() error {
	return validation.Validate(string(a), validation.Required, configvalidation.IsEmailAddress())
}

// LocalPart returns the part of the address before the `@`.
func (a Address) LocalPart() string {
	local, _, _ := strings.Cut(string(a), "@")
	return local
}

// Domain returns the part of the address after the `@`.
func (a Address) Domain() string {
	_, domain, _ := strings.Cut(string(a), "@")
	return domain
}

// IsEmpty states whether the address is blank.
func (a Address) IsEmpty() bool {
	return strings.TrimSpace(string(a)) == ""
}

// SuspendedAddress derives the address a subject is renamed to whilst offboarding: the
// local part is retained and the domain replaced by suspendedDomain. When
// suspendedDomain is blank, `suspended.<original domain>` is used.
func SuspendedAddress(a Address, suspendedDomain string) Address {
	domain := strings.TrimSpace(suspendedDomain)
	if domain == "" {
		domain = fmt.Sprintf("suspended.%v", a.Domain())
	}
	return Address(fmt.Sprintf("%v@%v", a.LocalPart(), domain))
}

// Subject is the directory record a lifecycle transition operates on.
type Subject struct {
	// Primary is the subject's primary address.
	Primary Address
	// Manager is the address receiving ownership of the subject's resources. It may be
	// blank for flows which do not transfer anything.
	Manager Address
	// State is the lifecycle state the subject has reached. Only step actions mutate
	// it, as their effects land on the remote directory.
	State State
}

// NewSubject returns a subject in the ACTIVE state. The manager address may be blank.
func NewSubject(primary, manager string) (*Subject, error) {
	s := &Subject{
		Primary: Address(primary),
		Manager: Address(manager),
		State:   StateActive,
	}
	return s, s.Validate()
}

func (s *Subject) Validate() error {
	err := s.Primary.Validate()
	if err != nil {
		return commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "invalid subject address '%v'", s.Primary)
	}
	if !s.Manager.IsEmpty() {
		err = s.Manager.Validate()
		if err != nil {
			return commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "invalid manager address '%v'", s.Manager)
		}
	}
	if s.Primary == s.Manager {
		return commonerrors.Newf(commonerrors.ErrInvalid, "subject and manager share the address '%v'", s.Primary)
	}
	return nil
}
