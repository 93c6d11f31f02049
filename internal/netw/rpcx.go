package netw

import (
	"context"
	"net"
	"sync"

	rpcx_client "github.com/smallnest/rpcx/client"
	"github.com/smallnest/rpcx/log"
	"github.com/smallnest/rpcx/protocol"
	"github.com/smallnest/rpcx/server"
	"github.com/smallnest/rpcx/share"

	"github.com/allen1211/kvput/internal/netw/codec"
)

const SerializeMsgp = protocol.SerializeType(5)

func init() {

	log.SetDummyLogger()

	share.Codecs[SerializeMsgp] = &codec.MsgpCodec{}
}

type RpcxServer struct {
	Name		string
	Addr		string

	serv		*server.Server
}

func MakeRpcxServer(name, addr string) *RpcxServer {
	s := server.NewServer()
	return &RpcxServer{
		Name: name,
		Addr: addr,
		serv: s,
	}
}

func (s *RpcxServer) Register(name string, obj interface{}) error {
	return s.serv.RegisterName(name, obj, "")
}

// Start blocks serving until Stop is called.
func (s *RpcxServer) Start() error {
	err := s.serv.Serve("tcp", s.Addr)
	if err == server.ErrServerClosed {
		return nil
	}
	return err
}

// Address is the bound listen address, nil until Start has bound it.
func (s *RpcxServer) Address() net.Addr {
	return s.serv.Address()
}

func (s *RpcxServer) Stop() {
	_ = s.serv.Close()
}

// ClientEnd is one client connection to a single server address.
type ClientEnd struct {
	sync.Mutex
	Name		string
	Addr		string
	client 		rpcx_client.XClient
}

func MakeRPCEnd(name, addr string) (*ClientEnd, error) {
	d, err := rpcx_client.NewPeer2PeerDiscovery("tcp@"+addr, "")
	if err != nil {
		return nil, err
	}
	option := rpcx_client.DefaultOption
	option.SerializeType = SerializeMsgp
	cli := rpcx_client.NewXClient(name, rpcx_client.Failfast, rpcx_client.RoundRobin, d, option)

	return &ClientEnd{
		Name: name,
		Addr: addr,
		client: cli,
	}, nil
}

func (ce *ClientEnd) Call(ctx context.Context, method string, args interface{}, reply interface{}) error {
	ce.Lock()
	cli := ce.client
	ce.Unlock()
	if cli == nil {
		return ErrEndClosed
	}
	return cli.Call(ctx, method, args, reply)
}

func (ce *ClientEnd) Close() error {
	ce.Lock()
	defer ce.Unlock()
	if ce.client == nil {
		return nil
	}
	err := ce.client.Close()
	ce.client = nil
	return err
}
