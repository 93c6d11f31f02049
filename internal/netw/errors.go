package netw

import "errors"

var ErrEndClosed = errors.New("client end closed")
