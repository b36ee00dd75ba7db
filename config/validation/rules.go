package validation

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/ARM-software/identity-lifecycle/commonerrors"
)

// IsEmailAddress validates that the value is a plausible directory address. Single
// label hosts (`user@corp`) are accepted: the format rule wants a dotted domain, so
// those are checked against a dotted equivalent. Empty values are left to
// `validation.Required`.
func IsEmailAddress() validation.Rule {
	return validation.By(func(vRaw any) (err error) {
		val := reflect.ValueOf(vRaw)
		if val.Kind() != reflect.String {
			return commonerrors.Newf(commonerrors.ErrMarshalling, "unsupported type for email address validation: %T", vRaw)
		}
		address := val.String()
		if local, host, found := strings.Cut(address, "@"); found && local != "" && host != "" && !strings.Contains(host, ".") {
			address = fmt.Sprintf("%v@%v.%v", local, host, host)
		}
		err = is.EmailFormat.Validate(address)
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "")
		}
		return
	})
}

func IsPort() validation.Rule {
	return validation.By(func(vRaw any) (err error) {
		val := reflect.ValueOf(vRaw)
		switch val.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			err = is.Port.Validate(strconv.FormatInt(val.Int(), 10))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			err = is.Port.Validate(strconv.FormatUint(val.Uint(), 10))
		case reflect.String:
			err = is.Port.Validate(val.String())
		case reflect.Slice:
			if b, ok := vRaw.([]byte); ok {
				err = is.Port.Validate(string(b))
			}
		default:
			return commonerrors.Newf(commonerrors.ErrMarshalling, "unsupported type for port validation: %T", vRaw)
		}
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "")
		}
		return
	})
}
