package store

import (
	"github.com/Allen1211/msgp/msgp"
)

// Entry is the stored form of a record. VoidTime is a unix second after which the
// record is treated as absent; 0 means it never expires.
type Entry struct {
	Gen      uint32
	VoidTime int64
	Bins     []byte
}

func (e *Entry) Expired(now int64) bool {
	return e.VoidTime != 0 && now >= e.VoidTime
}

// TTL is the remaining lifetime in seconds, -1 when the entry never expires.
func (e *Entry) TTL(now int64) int32 {
	if e.VoidTime == 0 {
		return -1
	}
	left := e.VoidTime - now
	if left < 0 {
		return 0
	}
	return int32(left)
}

// EncodeMsg implements msgp.Encodable
func (e *Entry) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteArrayHeader(3); err != nil {
		return
	}
	if err = en.WriteUint32(e.Gen); err != nil {
		return msgp.WrapError(err, "Gen")
	}
	if err = en.WriteInt64(e.VoidTime); err != nil {
		return msgp.WrapError(err, "VoidTime")
	}
	if err = en.WriteBytes(e.Bins); err != nil {
		return msgp.WrapError(err, "Bins")
	}
	return
}

// DecodeMsg implements msgp.Decodable
func (e *Entry) DecodeMsg(dc *msgp.Reader) (err error) {
	var sz uint32
	if sz, err = dc.ReadArrayHeader(); err != nil {
		return
	}
	if sz != 3 {
		return msgp.ArrayError{Wanted: 3, Got: sz}
	}
	if e.Gen, err = dc.ReadUint32(); err != nil {
		return msgp.WrapError(err, "Gen")
	}
	if e.VoidTime, err = dc.ReadInt64(); err != nil {
		return msgp.WrapError(err, "VoidTime")
	}
	if e.Bins, err = dc.ReadBytes(e.Bins); err != nil {
		return msgp.WrapError(err, "Bins")
	}
	return
}
