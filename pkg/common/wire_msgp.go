package common

import (
	"github.com/Allen1211/msgp/msgp"
)

func writeOptString(en *msgp.Writer, p *string) error {
	if p == nil {
		return en.WriteNil()
	}
	return en.WriteString(*p)
}

func readOptString(dc *msgp.Reader) (*string, error) {
	if dc.IsNil() {
		return nil, dc.ReadNil()
	}
	s, err := dc.ReadString()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func writeOptInt32(en *msgp.Writer, p *int32) error {
	if p == nil {
		return en.WriteNil()
	}
	return en.WriteInt32(*p)
}

func readOptInt32(dc *msgp.Reader) (*int32, error) {
	if dc.IsNil() {
		return nil, dc.ReadNil()
	}
	v, err := dc.ReadInt32()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func writeOptUint32(en *msgp.Writer, p *uint32) error {
	if p == nil {
		return en.WriteNil()
	}
	return en.WriteUint32(*p)
}

func readOptUint32(dc *msgp.Reader) (*uint32, error) {
	if dc.IsNil() {
		return nil, dc.ReadNil()
	}
	v, err := dc.ReadUint32()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func readErr(dc *msgp.Reader) (Err, error) {
	s, err := dc.ReadString()
	return Err(s), err
}

// EncodeMsg implements msgp.Encodable
func (z *Key) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteMapHeader(3); err != nil {
		return
	}
	if err = en.WriteString("Namespace"); err != nil {
		return
	}
	if err = en.WriteString(z.Namespace); err != nil {
		return msgp.WrapError(err, "Namespace")
	}
	if err = en.WriteString("Set"); err != nil {
		return
	}
	if err = writeOptString(en, z.Set); err != nil {
		return msgp.WrapError(err, "Set")
	}
	if err = en.WriteString("UserKey"); err != nil {
		return
	}
	if err = en.WriteString(z.UserKey); err != nil {
		return msgp.WrapError(err, "UserKey")
	}
	return
}

// DecodeMsg implements msgp.Decodable
func (z *Key) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	var sz uint32
	if sz, err = dc.ReadMapHeader(); err != nil {
		return
	}
	for ; sz > 0; sz-- {
		if field, err = dc.ReadMapKeyPtr(); err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "Namespace":
			if z.Namespace, err = dc.ReadString(); err != nil {
				return msgp.WrapError(err, "Namespace")
			}
		case "Set":
			if z.Set, err = readOptString(dc); err != nil {
				return msgp.WrapError(err, "Set")
			}
		case "UserKey":
			if z.UserKey, err = dc.ReadString(); err != nil {
				return msgp.WrapError(err, "UserKey")
			}
		default:
			if err = dc.Skip(); err != nil {
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *WriteMeta) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteMapHeader(2); err != nil {
		return
	}
	if err = en.WriteString("TTL"); err != nil {
		return
	}
	if err = writeOptInt32(en, z.TTL); err != nil {
		return msgp.WrapError(err, "TTL")
	}
	if err = en.WriteString("Gen"); err != nil {
		return
	}
	if err = writeOptUint32(en, z.Gen); err != nil {
		return msgp.WrapError(err, "Gen")
	}
	return
}

// DecodeMsg implements msgp.Decodable
func (z *WriteMeta) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	var sz uint32
	if sz, err = dc.ReadMapHeader(); err != nil {
		return
	}
	for ; sz > 0; sz-- {
		if field, err = dc.ReadMapKeyPtr(); err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "TTL":
			if z.TTL, err = readOptInt32(dc); err != nil {
				return msgp.WrapError(err, "TTL")
			}
		case "Gen":
			if z.Gen, err = readOptUint32(dc); err != nil {
				return msgp.WrapError(err, "Gen")
			}
		default:
			if err = dc.Skip(); err != nil {
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *RecordMeta) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteMapHeader(2); err != nil {
		return
	}
	if err = en.WriteString("Gen"); err != nil {
		return
	}
	if err = en.WriteUint32(z.Gen); err != nil {
		return msgp.WrapError(err, "Gen")
	}
	if err = en.WriteString("TTL"); err != nil {
		return
	}
	if err = en.WriteInt32(z.TTL); err != nil {
		return msgp.WrapError(err, "TTL")
	}
	return
}

// DecodeMsg implements msgp.Decodable
func (z *RecordMeta) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	var sz uint32
	if sz, err = dc.ReadMapHeader(); err != nil {
		return
	}
	for ; sz > 0; sz-- {
		if field, err = dc.ReadMapKeyPtr(); err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "Gen":
			if z.Gen, err = dc.ReadUint32(); err != nil {
				return msgp.WrapError(err, "Gen")
			}
		case "TTL":
			if z.TTL, err = dc.ReadInt32(); err != nil {
				return msgp.WrapError(err, "TTL")
			}
		default:
			if err = dc.Skip(); err != nil {
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *LoginArgs) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteMapHeader(2); err != nil {
		return
	}
	if err = en.WriteString("User"); err != nil {
		return
	}
	if err = writeOptString(en, z.User); err != nil {
		return msgp.WrapError(err, "User")
	}
	if err = en.WriteString("Password"); err != nil {
		return
	}
	if err = writeOptString(en, z.Password); err != nil {
		return msgp.WrapError(err, "Password")
	}
	return
}

// DecodeMsg implements msgp.Decodable
func (z *LoginArgs) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	var sz uint32
	if sz, err = dc.ReadMapHeader(); err != nil {
		return
	}
	for ; sz > 0; sz-- {
		if field, err = dc.ReadMapKeyPtr(); err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "User":
			if z.User, err = readOptString(dc); err != nil {
				return msgp.WrapError(err, "User")
			}
		case "Password":
			if z.Password, err = readOptString(dc); err != nil {
				return msgp.WrapError(err, "Password")
			}
		default:
			if err = dc.Skip(); err != nil {
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *LoginReply) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteMapHeader(2); err != nil {
		return
	}
	if err = en.WriteString("Err"); err != nil {
		return
	}
	if err = en.WriteString(string(z.Err)); err != nil {
		return msgp.WrapError(err, "Err")
	}
	if err = en.WriteString("Token"); err != nil {
		return
	}
	if err = en.WriteString(z.Token); err != nil {
		return msgp.WrapError(err, "Token")
	}
	return
}

// DecodeMsg implements msgp.Decodable
func (z *LoginReply) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	var sz uint32
	if sz, err = dc.ReadMapHeader(); err != nil {
		return
	}
	for ; sz > 0; sz-- {
		if field, err = dc.ReadMapKeyPtr(); err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "Err":
			if z.Err, err = readErr(dc); err != nil {
				return msgp.WrapError(err, "Err")
			}
		case "Token":
			if z.Token, err = dc.ReadString(); err != nil {
				return msgp.WrapError(err, "Token")
			}
		default:
			if err = dc.Skip(); err != nil {
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *PutArgs) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteMapHeader(4); err != nil {
		return
	}
	if err = en.WriteString("Token"); err != nil {
		return
	}
	if err = en.WriteString(z.Token); err != nil {
		return msgp.WrapError(err, "Token")
	}
	if err = en.WriteString("Key"); err != nil {
		return
	}
	if err = z.Key.EncodeMsg(en); err != nil {
		return msgp.WrapError(err, "Key")
	}
	if err = en.WriteString("Bins"); err != nil {
		return
	}
	if err = en.WriteBytes(z.Bins); err != nil {
		return msgp.WrapError(err, "Bins")
	}
	if err = en.WriteString("Meta"); err != nil {
		return
	}
	if err = z.Meta.EncodeMsg(en); err != nil {
		return msgp.WrapError(err, "Meta")
	}
	return
}

// DecodeMsg implements msgp.Decodable
func (z *PutArgs) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	var sz uint32
	if sz, err = dc.ReadMapHeader(); err != nil {
		return
	}
	for ; sz > 0; sz-- {
		if field, err = dc.ReadMapKeyPtr(); err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "Token":
			if z.Token, err = dc.ReadString(); err != nil {
				return msgp.WrapError(err, "Token")
			}
		case "Key":
			if err = z.Key.DecodeMsg(dc); err != nil {
				return msgp.WrapError(err, "Key")
			}
		case "Bins":
			if z.Bins, err = dc.ReadBytes(z.Bins); err != nil {
				return msgp.WrapError(err, "Bins")
			}
		case "Meta":
			if err = z.Meta.DecodeMsg(dc); err != nil {
				return msgp.WrapError(err, "Meta")
			}
		default:
			if err = dc.Skip(); err != nil {
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *PutReply) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteMapHeader(2); err != nil {
		return
	}
	if err = en.WriteString("Err"); err != nil {
		return
	}
	if err = en.WriteString(string(z.Err)); err != nil {
		return msgp.WrapError(err, "Err")
	}
	if err = en.WriteString("Gen"); err != nil {
		return
	}
	if err = en.WriteUint32(z.Gen); err != nil {
		return msgp.WrapError(err, "Gen")
	}
	return
}

// DecodeMsg implements msgp.Decodable
func (z *PutReply) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	var sz uint32
	if sz, err = dc.ReadMapHeader(); err != nil {
		return
	}
	for ; sz > 0; sz-- {
		if field, err = dc.ReadMapKeyPtr(); err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "Err":
			if z.Err, err = readErr(dc); err != nil {
				return msgp.WrapError(err, "Err")
			}
		case "Gen":
			if z.Gen, err = dc.ReadUint32(); err != nil {
				return msgp.WrapError(err, "Gen")
			}
		default:
			if err = dc.Skip(); err != nil {
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *GetArgs) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteMapHeader(2); err != nil {
		return
	}
	if err = en.WriteString("Token"); err != nil {
		return
	}
	if err = en.WriteString(z.Token); err != nil {
		return msgp.WrapError(err, "Token")
	}
	if err = en.WriteString("Key"); err != nil {
		return
	}
	if err = z.Key.EncodeMsg(en); err != nil {
		return msgp.WrapError(err, "Key")
	}
	return
}

// DecodeMsg implements msgp.Decodable
func (z *GetArgs) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	var sz uint32
	if sz, err = dc.ReadMapHeader(); err != nil {
		return
	}
	for ; sz > 0; sz-- {
		if field, err = dc.ReadMapKeyPtr(); err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "Token":
			if z.Token, err = dc.ReadString(); err != nil {
				return msgp.WrapError(err, "Token")
			}
		case "Key":
			if err = z.Key.DecodeMsg(dc); err != nil {
				return msgp.WrapError(err, "Key")
			}
		default:
			if err = dc.Skip(); err != nil {
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *GetReply) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteMapHeader(3); err != nil {
		return
	}
	if err = en.WriteString("Err"); err != nil {
		return
	}
	if err = en.WriteString(string(z.Err)); err != nil {
		return msgp.WrapError(err, "Err")
	}
	if err = en.WriteString("Bins"); err != nil {
		return
	}
	if err = en.WriteBytes(z.Bins); err != nil {
		return msgp.WrapError(err, "Bins")
	}
	if err = en.WriteString("Meta"); err != nil {
		return
	}
	if err = z.Meta.EncodeMsg(en); err != nil {
		return msgp.WrapError(err, "Meta")
	}
	return
}

// DecodeMsg implements msgp.Decodable
func (z *GetReply) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	var sz uint32
	if sz, err = dc.ReadMapHeader(); err != nil {
		return
	}
	for ; sz > 0; sz-- {
		if field, err = dc.ReadMapKeyPtr(); err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "Err":
			if z.Err, err = readErr(dc); err != nil {
				return msgp.WrapError(err, "Err")
			}
		case "Bins":
			if z.Bins, err = dc.ReadBytes(z.Bins); err != nil {
				return msgp.WrapError(err, "Bins")
			}
		case "Meta":
			if err = z.Meta.DecodeMsg(dc); err != nil {
				return msgp.WrapError(err, "Meta")
			}
		default:
			if err = dc.Skip(); err != nil {
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *LogoutArgs) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteMapHeader(1); err != nil {
		return
	}
	if err = en.WriteString("Token"); err != nil {
		return
	}
	if err = en.WriteString(z.Token); err != nil {
		return msgp.WrapError(err, "Token")
	}
	return
}

// DecodeMsg implements msgp.Decodable
func (z *LogoutArgs) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	var sz uint32
	if sz, err = dc.ReadMapHeader(); err != nil {
		return
	}
	for ; sz > 0; sz-- {
		if field, err = dc.ReadMapKeyPtr(); err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "Token":
			if z.Token, err = dc.ReadString(); err != nil {
				return msgp.WrapError(err, "Token")
			}
		default:
			if err = dc.Skip(); err != nil {
				return
			}
		}
	}
	return
}

// EncodeMsg implements msgp.Encodable
func (z *LogoutReply) EncodeMsg(en *msgp.Writer) (err error) {
	if err = en.WriteMapHeader(1); err != nil {
		return
	}
	if err = en.WriteString("Err"); err != nil {
		return
	}
	if err = en.WriteString(string(z.Err)); err != nil {
		return msgp.WrapError(err, "Err")
	}
	return
}

// DecodeMsg implements msgp.Decodable
func (z *LogoutReply) DecodeMsg(dc *msgp.Reader) (err error) {
	var field []byte
	var sz uint32
	if sz, err = dc.ReadMapHeader(); err != nil {
		return
	}
	for ; sz > 0; sz-- {
		if field, err = dc.ReadMapKeyPtr(); err != nil {
			return
		}
		switch msgp.UnsafeString(field) {
		case "Err":
			if z.Err, err = readErr(dc); err != nil {
				return msgp.WrapError(err, "Err")
			}
		default:
			if err = dc.Skip(); err != nil {
				return
			}
		}
	}
	return
}
