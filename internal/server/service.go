package server

import (
	"context"
	"time"

	"github.com/allen1211/kvput/pkg/common"
	"github.com/allen1211/kvput/pkg/record"
)

// Service is the rpcx receiver registered as common.ServiceName.
type Service struct {
	s *Server
}

func (svc *Service) Login(ctx context.Context, args *common.LoginArgs, reply *common.LoginReply) error {
	*reply = common.LoginReply{}
	begin := time.Now()
	defer func() { svc.s.metrics.observe(common.ApiLogin, begin, reply.Err) }()

	if svc.s.Killed() {
		reply.Err = common.ErrServerClosed
		return nil
	}
	reply.Token, reply.Err = svc.s.login(args.User, args.Password)
	if reply.Err != common.OK {
		svc.s.logger.Warnf("login rejected: %v", reply.Err)
	}
	return nil
}

func (svc *Service) Logout(ctx context.Context, args *common.LogoutArgs, reply *common.LogoutReply) error {
	*reply = common.LogoutReply{}
	begin := time.Now()
	defer func() { svc.s.metrics.observe(common.ApiLogout, begin, reply.Err) }()

	if svc.s.Killed() {
		reply.Err = common.ErrServerClosed
		return nil
	}
	reply.Err = svc.s.logout(args.Token)
	return nil
}

func (svc *Service) Put(ctx context.Context, args *common.PutArgs, reply *common.PutReply) error {
	*reply = common.PutReply{}
	begin := time.Now()
	defer func() { svc.s.metrics.observe(common.ApiPut, begin, reply.Err) }()

	if reply.Err = svc.precheck(args.Token, args.Key); reply.Err != common.OK {
		return nil
	}
	rec, err := record.Decode(args.Bins)
	if err == nil {
		err = rec.Validate()
	}
	if err != nil {
		svc.s.logger.Debugf("Put %s rejected: %v", args.Key, err)
		reply.Err = common.ErrBadRecord
		return nil
	}

	gen, err := svc.s.store.Put(args.Key, args.Bins, args.Meta)
	reply.Gen, reply.Err = gen, svc.s.errCode(err)
	svc.s.logger.Debugf("Put %s gen=%d err=%s", args.Key, reply.Gen, reply.Err)
	return nil
}

func (svc *Service) Get(ctx context.Context, args *common.GetArgs, reply *common.GetReply) error {
	*reply = common.GetReply{}
	begin := time.Now()
	defer func() { svc.s.metrics.observe(common.ApiGet, begin, reply.Err) }()

	if reply.Err = svc.precheck(args.Token, args.Key); reply.Err != common.OK {
		return nil
	}
	entry, meta, err := svc.s.store.Get(args.Key)
	if reply.Err = svc.s.errCode(err); reply.Err != common.OK {
		return nil
	}
	reply.Bins, reply.Meta = entry.Bins, meta
	return nil
}

func (svc *Service) precheck(token string, key common.Key) common.Err {
	if svc.s.Killed() {
		return common.ErrServerClosed
	}
	if !svc.s.authorized(token) {
		return common.ErrNotAuthenticated
	}
	if !svc.s.hasNamespace(key.Namespace) {
		return common.ErrNamespace
	}
	return common.OK
}
