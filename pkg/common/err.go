package common

type Err string

const (
	OK                  Err = "OK"
	ErrNoKey            Err = "ErrNoKey"
	ErrGeneration       Err = "ErrGeneration"
	ErrNamespace        Err = "ErrNamespace"
	ErrBadRecord        Err = "ErrBadRecord"
	ErrParam            Err = "ErrParam"
	ErrAuth             Err = "ErrAuth"
	ErrNotAuthenticated Err = "ErrNotAuthenticated"
	ErrFailed           Err = "ErrFailed"
	ErrServerClosed     Err = "ErrServerClosed"
)

var errDesc = map[Err]string{
	ErrNoKey:            "record not found",
	ErrGeneration:       "generation mismatch",
	ErrNamespace:        "namespace not found",
	ErrBadRecord:        "malformed record",
	ErrParam:            "invalid parameter",
	ErrAuth:             "invalid username or password",
	ErrNotAuthenticated: "not authenticated",
	ErrFailed:           "server failure",
	ErrServerClosed:     "server closed",
}

func (e Err) Error() string {
	if desc, ok := errDesc[e]; ok {
		return desc + " (" + string(e) + ")"
	}
	return string(e)
}

// AsError returns nil for OK so replies can be checked with a plain err != nil.
func (e Err) AsError() error {
	if e == OK || e == "" {
		return nil
	}
	return e
}
