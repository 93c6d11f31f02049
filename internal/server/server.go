// Package server is the single-node record store daemon the client tools talk to.
package server

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/allen1211/kvput/internal/netw"
	"github.com/allen1211/kvput/internal/server/etc"
	"github.com/allen1211/kvput/internal/store"
	"github.com/allen1211/kvput/pkg/common"
)

type Server struct {
	mu			sync.Mutex
	conf		etc.ServerConf
	logger		*logrus.Logger

	store		*store.LevelStore
	namespaces	map[string]bool
	sessions	map[string]string

	rpcServ		*netw.RpcxServer
	metrics		*serverMetrics

	dead		int32
	KilledC		chan struct{}
}

func StartServer(conf etc.ServerConf) (*Server, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	logger, err := common.InitLogger(conf.LogLevel, "kvd")
	if err != nil {
		return nil, err
	}

	var lvs *store.LevelStore
	if conf.DBPath == "" {
		lvs, err = store.OpenMemStore()
	} else {
		lvs, err = store.MakeLevelStore(conf.DBPath)
	}
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	s := &Server{
		conf: conf,
		logger: logger,
		store: lvs,
		namespaces: map[string]bool{},
		sessions: map[string]string{},
		metrics: makeServerMetrics(logger),
		KilledC: make(chan struct{}),
	}
	for _, ns := range conf.Namespaces {
		s.namespaces[ns.Name] = true
		lvs.SetDefaultTTL(ns.Name, ns.DefaultTTL)
	}

	if conf.MetricAddr != "" {
		s.metrics.serveHTTP(conf.MetricAddr)
	}
	if conf.GraphiteAddr != "" {
		if err := s.metrics.reportGraphite(conf.GraphiteAddr); err != nil {
			s.logger.Warnf("graphite reporter disabled: %v", err)
		}
	}

	s.logger.Infof("store opened, db_dir=%q namespaces=%d auth=%v", conf.DBPath, len(s.namespaces), s.authEnabled())
	return s, nil
}

func (s *Server) StartRPCServer() error {
	rpcServ := netw.MakeRpcxServer(common.ServiceName, s.conf.Addr())
	if err := rpcServ.Register(common.ServiceName, &Service{s: s}); err != nil {
		return err
	}
	s.mu.Lock()
	s.rpcServ = rpcServ
	s.mu.Unlock()
	go func() {
		if err := rpcServ.Start(); err != nil {
			s.logger.Errorf("%v", err)
		}
	}()
	s.logger.Infof("serving %s on %s", common.ServiceName, s.conf.Addr())

	return nil
}

// Addr is the address the rpc server is bound to, nil until it is listening.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	rpcServ := s.rpcServ
	s.mu.Unlock()
	if rpcServ == nil {
		return nil
	}
	return rpcServ.Address()
}

func (s *Server) Store() *store.LevelStore {
	return s.store
}

func (s *Server) Kill() {
	if !atomic.CompareAndSwapInt32(&s.dead, 0, 1) {
		return
	}
	s.mu.Lock()
	if s.rpcServ != nil {
		s.rpcServ.Stop()
	}
	s.mu.Unlock()
	s.metrics.stop()
	if err := s.store.Close(); err != nil {
		s.logger.Errorf("close store: %v", err)
	}
	s.logger.Infof("server killed")
	close(s.KilledC)
}

func (s *Server) Killed() bool {
	return atomic.LoadInt32(&s.dead) == 1
}

func (s *Server) authEnabled() bool {
	return len(s.conf.Users) > 0
}

func (s *Server) login(user, password *string) (string, common.Err) {
	name := ""
	if s.authEnabled() {
		if user == nil || password == nil {
			return "", common.ErrAuth
		}
		want, ok := s.conf.Users[*user]
		if !ok || subtle.ConstantTimeCompare([]byte(want), []byte(*password)) != 1 {
			return "", common.ErrAuth
		}
		name = *user
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		s.logger.Errorf("generate session token: %v", err)
		return "", common.ErrFailed
	}
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	s.sessions[token] = name
	s.mu.Unlock()
	return token, common.OK
}

func (s *Server) logout(token string) common.Err {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[token]; !ok {
		return common.ErrNotAuthenticated
	}
	delete(s.sessions, token)
	return common.OK
}

// Sessions is the number of tokens currently logged in.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) authorized(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[token]
	return ok
}

func (s *Server) hasNamespace(ns string) bool {
	return s.namespaces[ns]
}

// errCode turns a store error into the code put in the reply.
func (s *Server) errCode(err error) common.Err {
	if err == nil {
		return common.OK
	}
	var code common.Err
	if errors.As(err, &code) {
		return code
	}
	s.logger.Errorf("store failure: %v", err)
	return common.ErrFailed
}
