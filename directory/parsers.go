package directory

import (
	"github.com/perimeterx/marshmallow"

	"github.com/ARM-software/identity-lifecycle/asyncjob"
	"github.com/ARM-software/identity-lifecycle/collection"
	"github.com/ARM-software/identity-lifecycle/commonerrors"
	"github.com/ARM-software/identity-lifecycle/identity"
)

// The CLI prints a JSON document for record-like results. Documents are parsed
// leniently: the fields this tool understands are typed and everything else is kept as
// attributes, so a directory reporting more than expected loses nothing in the logs.

func parseJobDocument(document string) (job *asyncjob.Job, err error) {
	fields := struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}{}
	attributes, err := marshmallow.Unmarshal([]byte(document), &fields)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrMarshalling, err, "could not parse the job document")
		return
	}
	delete(attributes, "id")
	delete(attributes, "status")
	job = &asyncjob.Job{
		ID:         fields.ID,
		Status:     asyncjob.ParseStatus(fields.Status),
		Attributes: attributes,
	}
	return
}

func parseUserDocument(document string) (user *User, err error) {
	fields := struct {
		Address   string `json:"address"`
		Suspended bool   `json:"suspended"`
	}{}
	attributes, err := marshmallow.Unmarshal([]byte(document), &fields)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrMarshalling, err, "could not parse the user document")
		return
	}
	delete(attributes, "address")
	delete(attributes, "suspended")
	user = &User{
		Address:    identity.Address(fields.Address),
		Suspended:  fields.Suspended,
		Attributes: attributes,
	}
	return
}

// parseAddressLines parses line-oriented CLI output into an address list, keeping the
// order the directory reported.
func parseAddressLines(output string) (addresses []identity.Address) {
	lines := collection.ParseListWithCleanup(output, "\n")
	addresses = make([]identity.Address, 0, len(lines))
	for i := range lines {
		addresses = append(addresses, identity.Address(lines[i]))
	}
	return
}
