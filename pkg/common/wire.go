package common

import "fmt"

const (
	ServiceName = "KV"

	ApiLogin  = "Login"
	ApiLogout = "Logout"
	ApiPut    = "Put"
	ApiGet    = "Get"
)

// Key locates a record. A nil or empty Set means the record belongs to no set.
type Key struct {
	Namespace string
	Set       *string
	UserKey   string
}

func NewKey(namespace string, set *string, userKey string) Key {
	if set != nil && *set == "" {
		set = nil
	}
	return Key{Namespace: namespace, Set: set, UserKey: userKey}
}

func (k Key) SetName() string {
	if k.Set == nil {
		return ""
	}
	return *k.Set
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%s:%s", k.Namespace, k.SetName(), k.UserKey)
}

// WriteMeta carries optional policy hints for a write. Nil fields are unset.
//
// TTL: 0 uses the namespace default, -1 never expires, a positive value is seconds
// from now. Gen, when set, must equal the stored generation (0 for an absent record).
type WriteMeta struct {
	TTL *int32
	Gen *uint32
}

// RecordMeta is what the store reports about a stored record. TTL is the number of
// seconds left, or -1 if the record never expires.
type RecordMeta struct {
	Gen uint32
	TTL int32
}

type LoginArgs struct {
	User     *string
	Password *string
}

type LoginReply struct {
	Err   Err
	Token string
}

// LogoutArgs ends the session named by Token.
type LogoutArgs struct {
	Token string
}

type LogoutReply struct {
	Err Err
}

type PutArgs struct {
	Token string
	Key   Key
	Bins  []byte
	Meta  WriteMeta
}

type PutReply struct {
	Err Err
	Gen uint32
}

type GetArgs struct {
	Token string
	Key   Key
}

type GetReply struct {
	Err  Err
	Bins []byte
	Meta RecordMeta
}
