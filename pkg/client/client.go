package client

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"

	"github.com/allen1211/kvput/internal/netw"
	"github.com/allen1211/kvput/pkg/common"
	"github.com/allen1211/kvput/pkg/record"
)

type API interface {
	Put(ctx context.Context, key common.Key, rec record.Record, meta common.WriteMeta) error
	Get(ctx context.Context, key common.Key) (record.Record, common.RecordMeta, error)
	Close() error
}

// Config describes the one server a Client talks to. Nil credentials mean the
// client logs in anonymously.
type Config struct {
	Host     string
	Port     int
	Username *string
	Password *string

	Logger *logrus.Logger
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ConnectError reports that no session could be established with the server.
type ConnectError struct {
	Addr string
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("failed to connect to %s: %v", e.Addr, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

type Client struct {
	mu     sync.Mutex
	conf   Config
	end    *netw.ClientEnd
	token  string
	logger *logrus.Logger
}

var _ API = (*Client)(nil)

// Connect opens a connection to conf.Addr() and logs in. The returned Client must
// be closed.
func Connect(ctx context.Context, conf Config) (*Client, error) {
	logger := conf.Logger
	if logger == nil {
		logger = common.DiscardLogger()
	}
	addr := conf.Addr()

	end, err := netw.MakeRPCEnd(common.ServiceName, addr)
	if err != nil {
		return nil, &ConnectError{Addr: addr, Err: err}
	}

	logger.Debugf("connecting to %s", addr)
	args := common.LoginArgs{User: conf.Username, Password: conf.Password}
	var reply common.LoginReply
	if err := end.Call(ctx, common.ApiLogin, &args, &reply); err != nil {
		_ = end.Close()
		return nil, &ConnectError{Addr: addr, Err: err}
	}
	if err := reply.Err.AsError(); err != nil {
		_ = end.Close()
		return nil, &ConnectError{Addr: addr, Err: err}
	}
	logger.Debugf("connected to %s", addr)

	return &Client{
		conf:   conf,
		end:    end,
		token:  reply.Token,
		logger: logger,
	}, nil
}

// Put writes rec under key, replacing any existing record.
func (c *Client) Put(ctx context.Context, key common.Key, rec record.Record, meta common.WriteMeta) error {
	bins, err := record.Encode(rec)
	if err != nil {
		return xerrors.Errorf("encode record %s: %w", key, err)
	}
	args := common.PutArgs{Token: c.session(), Key: key, Bins: bins, Meta: meta}
	var reply common.PutReply
	if err := c.end.Call(ctx, common.ApiPut, &args, &reply); err != nil {
		return xerrors.Errorf("put %s: %w", key, err)
	}
	if err := reply.Err.AsError(); err != nil {
		return xerrors.Errorf("put %s: %w", key, err)
	}
	c.logger.Debugf("put %s gen=%d", key, reply.Gen)
	return nil
}

func (c *Client) Get(ctx context.Context, key common.Key) (record.Record, common.RecordMeta, error) {
	args := common.GetArgs{Token: c.session(), Key: key}
	var reply common.GetReply
	if err := c.end.Call(ctx, common.ApiGet, &args, &reply); err != nil {
		return nil, common.RecordMeta{}, xerrors.Errorf("get %s: %w", key, err)
	}
	if err := reply.Err.AsError(); err != nil {
		return nil, common.RecordMeta{}, xerrors.Errorf("get %s: %w", key, err)
	}
	rec, err := record.Decode(reply.Bins)
	if err != nil {
		return nil, common.RecordMeta{}, xerrors.Errorf("decode record %s: %w", key, err)
	}
	return rec, reply.Meta, nil
}

func (c *Client) session() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Close ends the session and releases the connection. Calling it more than once
// is harmless.
func (c *Client) Close() error {
	c.mu.Lock()
	token := c.token
	c.token = ""
	c.mu.Unlock()

	var logoutErr error
	if token != "" {
		c.logger.Debugf("closing connection to %s", c.conf.Addr())
		args := common.LogoutArgs{Token: token}
		var reply common.LogoutReply
		if err := c.end.Call(context.Background(), common.ApiLogout, &args, &reply); err != nil {
			logoutErr = xerrors.Errorf("logout: %w", err)
		} else if err := reply.Err.AsError(); err != nil {
			logoutErr = xerrors.Errorf("logout: %w", err)
		}
	}
	if err := c.end.Close(); err != nil {
		return err
	}
	return logoutErr
}
