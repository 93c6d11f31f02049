package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/allen1211/kvput/internal/server"
	"github.com/allen1211/kvput/internal/server/etc"
)

func main() {
	conf := makeConfig()

	srv := startServer(conf)

	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigC
		srv.Kill()
	}()

	<-srv.KilledC
}

func makeConfig() etc.ServerConf {
	var confPath string
	flag.StringVar(&confPath, "c", "", "config file path (json, or yaml by extension)")
	flag.Parse()

	if confPath == "" {
		log.Infof("no config file path provided, using defaults")
		return etc.MakeDefaultConfig()
	}
	conf, err := etc.ParseServerConf(confPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return conf
}

func startServer(conf etc.ServerConf) *server.Server {
	srv, err := server.StartServer(conf)
	if err != nil {
		log.Fatalf("Start Server Error: %v", err)
	}
	if err := srv.StartRPCServer(); err != nil {
		log.Fatalf("Start RPC Server Error: %v", err)
	}
	return srv
}
