package utils

import (
	"bytes"

	"github.com/Allen1211/msgp/msgp"
)

func MsgpEncode(e msgp.Encodable) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := msgp.Encode(buf, e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MsgpDecode decodes data into d. data is walked with msgp.Skip first so that no
// size header claims more bytes than data holds.
func MsgpDecode(data []byte, d msgp.Decodable) error {
	if _, err := msgp.Skip(data); err != nil {
		return err
	}
	return msgp.Decode(bytes.NewReader(data), d)
}
