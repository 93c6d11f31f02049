// Package tool implements the command-line record writers: parse arguments, connect,
// write, close, and map the outcome to an exit code.
package tool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/allen1211/kvput/pkg/client"
	"github.com/allen1211/kvput/pkg/common"
	"github.com/allen1211/kvput/pkg/record"
)

const (
	ExitOK        = 0
	ExitUsage     = 1
	ExitOperation = 2
	ExitConnect   = 3
)

const (
	BulkNamespace = "test"
	BulkSet       = "demo"
	BulkCount     = 1000
)

// Store is the part of the record store client the tools use.
type Store interface {
	Put(ctx context.Context, key common.Key, rec record.Record, meta common.WriteMeta) error
	Get(ctx context.Context, key common.Key) (record.Record, common.RecordMeta, error)
	Close() error
}

// Connector opens the one connection a tool run uses.
type Connector func(ctx context.Context, conf client.Config) (Store, error)

// DialStore connects with pkg/client.
func DialStore(ctx context.Context, conf client.Config) (Store, error) {
	c, err := client.Connect(ctx, conf)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}

func usageExit(err error, stdout, stderr io.Writer) int {
	var ue *UsageError
	if errors.As(err, &ue) {
		fmt.Fprint(stdout, ue.Usage)
		if ue.Err != nil {
			printError(stderr, ue.Err)
		}
	} else {
		printError(stderr, err)
	}
	return ExitUsage
}

// session connects, runs op and always closes what it connected. A failed connect or
// close yields ExitConnect, a failed op ExitOperation.
func session(ctx context.Context, opts *Options, connect Connector, logger *logrus.Logger, stderr io.Writer, op func(Store) error) int {
	conf := opts.Client
	conf.Logger = logger

	store, err := connect(ctx, conf)
	if err != nil {
		printError(stderr, err)
		return ExitConnect
	}

	code := ExitOK
	if err := op(store); err != nil {
		printError(stderr, err)
		code = ExitOperation
	}

	if err := store.Close(); err != nil {
		printError(stderr, err)
		code = ExitConnect
	}
	logger.Debugf("exit code %d", code)
	return code
}

// RunPut writes record.Demo() under the key named on the command line.
func RunPut(ctx context.Context, args []string, stdout, stderr io.Writer, connect Connector) int {
	opts, err := ParsePutArgs(args)
	if err != nil {
		return usageExit(err, stdout, stderr)
	}
	logger := opts.Logger("put")

	return session(ctx, opts, connect, logger, stderr, func(store Store) error {
		rec := record.Demo()
		if err := store.Put(ctx, opts.Key, rec, opts.Meta); err != nil {
			return err
		}
		fmt.Fprintln(stdout, rec)
		fmt.Fprintln(stdout, "---")
		fmt.Fprintln(stdout, "OK, 1 record written.")
		return nil
	})
}

// RunBulk writes record.Bulk(i) under keys "0" to "999" in test/demo, stopping at the
// first failure.
func RunBulk(ctx context.Context, args []string, stdout, stderr io.Writer, connect Connector) int {
	opts, err := ParseBulkArgs(args)
	if err != nil {
		return usageExit(err, stdout, stderr)
	}
	logger := opts.Logger("kvs")

	return session(ctx, opts, connect, logger, stderr, func(store Store) error {
		banner := strings.Repeat("#", 72)
		fmt.Fprintln(stdout, banner)
		fmt.Fprintln(stdout, "PUT")
		fmt.Fprintln(stdout, banner)

		set := BulkSet
		for i := 0; i < BulkCount; i++ {
			rec := record.Bulk(i)
			fmt.Fprintln(stdout, rec)
			key := common.NewKey(BulkNamespace, &set, strconv.Itoa(i))
			if err := store.Put(ctx, key, rec, common.WriteMeta{}); err != nil {
				logger.Debugf("aborted after %d records", i)
				return err
			}
		}
		fmt.Fprintln(stdout, "---")
		fmt.Fprintf(stdout, "OK, %d records written.\n", BulkCount)
		return nil
	})
}

// RunGet reads the record under the key named on the command line and prints it.
func RunGet(ctx context.Context, args []string, stdout, stderr io.Writer, connect Connector) int {
	opts, err := ParseGetArgs(args)
	if err != nil {
		return usageExit(err, stdout, stderr)
	}
	logger := opts.Logger("get")

	return session(ctx, opts, connect, logger, stderr, func(store Store) error {
		rec, meta, err := store.Get(ctx, opts.Key)
		if err != nil {
			return err
		}
		table, err := formatRecord(rec, meta)
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, table)
		return nil
	})
}
