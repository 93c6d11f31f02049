package tool

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/allen1211/kvput/pkg/client"
	"github.com/allen1211/kvput/pkg/common"
)

const (
	DefaultHost      = "127.0.0.1"
	DefaultPort      = 3000
	DefaultNamespace = "test"
	DefaultSet       = "demo"
)

// UsageError is returned by the Parse functions. A nil Err means help was asked for.
type UsageError struct {
	Usage string
	Err   error
}

func (e *UsageError) Error() string {
	if e.Err == nil {
		return "help requested"
	}
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// Options is everything a tool needs after its command line is parsed.
type Options struct {
	Client   client.Config
	LogLevel string
	Key      common.Key
	Meta     common.WriteMeta
}

// Logger builds the tool's diagnostic logger; it writes to stderr.
func (o *Options) Logger(appName string) *logrus.Logger {
	logger, err := common.InitLogger(o.LogLevel, appName)
	if err != nil {
		// levels are validated while parsing
		return common.DiscardLogger()
	}
	return logger
}

type commandLine struct {
	fs       *pflag.FlagSet
	name     string
	synopsis string

	host     string
	port     int
	username string
	password string
	ns       string
	set      string
	gen      uint32
	ttl      int32
	logLevel string
	help     bool
}

func newCommandLine(name, synopsis string) *commandLine {
	cl := &commandLine{
		fs:       pflag.NewFlagSet(name, pflag.ContinueOnError),
		name:     name,
		synopsis: synopsis,
	}
	cl.fs.SetOutput(io.Discard)
	cl.fs.Usage = func() {}
	cl.fs.SortFlags = false

	cl.fs.BoolVar(&cl.help, "help", false, "Displays this message.")
	cl.fs.StringVarP(&cl.host, "host", "h", DefaultHost, "Address of the record store server.")
	cl.fs.IntVarP(&cl.port, "port", "p", DefaultPort, "Port of the record store server.")
	return cl
}

func (cl *commandLine) withAuth() *commandLine {
	cl.fs.StringVarP(&cl.username, "username", "U", "", "Username to connect to the store.")
	cl.fs.StringVarP(&cl.password, "password", "P", "", "Password to connect to the store.")
	return cl
}

func (cl *commandLine) withKey() *commandLine {
	cl.fs.StringVarP(&cl.ns, "namespace", "n", DefaultNamespace, "Namespace of the record.")
	cl.fs.StringVarP(&cl.set, "set", "s", DefaultSet, "Set of the record, empty for none.")
	return cl
}

func (cl *commandLine) withMeta() *commandLine {
	cl.fs.Uint32Var(&cl.gen, "gen", 0, "Expected generation of the record being written.")
	cl.fs.Int32Var(&cl.ttl, "ttl", 0, "TTL of the record being written, in seconds (-1: never expire).")
	return cl
}

func (cl *commandLine) usage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "usage: %s %s\n\nOptions:\n", cl.name, cl.synopsis)
	b.WriteString(cl.fs.FlagUsages())
	b.WriteString("\n")
	return b.String()
}

func (cl *commandLine) fail(err error) *UsageError {
	return &UsageError{Usage: cl.usage(), Err: err}
}

// parse fills opts and returns the positional arguments.
func (cl *commandLine) parse(args []string, opts *Options) ([]string, error) {
	cl.fs.StringVar(&cl.logLevel, "log-level", "error", "Level of diagnostic logging on stderr.")

	if err := cl.fs.Parse(args); err != nil {
		return nil, cl.fail(err)
	}
	if cl.help {
		return nil, cl.fail(nil)
	}
	if cl.port < 1 || cl.port > 65535 {
		return nil, cl.fail(fmt.Errorf("port %d out of range", cl.port))
	}
	if _, err := common.ParseLevel(cl.logLevel); err != nil {
		return nil, cl.fail(err)
	}

	opts.LogLevel = cl.logLevel
	opts.Client = client.Config{Host: cl.host, Port: cl.port}
	if cl.fs.Changed("username") {
		opts.Client.Username = &cl.username
	}
	if cl.fs.Changed("password") {
		opts.Client.Password = &cl.password
	}
	if cl.fs.Changed("gen") {
		opts.Meta.Gen = &cl.gen
	}
	if cl.fs.Changed("ttl") {
		opts.Meta.TTL = &cl.ttl
	}
	return cl.fs.Args(), nil
}

func (cl *commandLine) parseKeyed(args []string) (*Options, error) {
	opts := &Options{}
	rest, err := cl.parse(args, opts)
	if err != nil {
		return nil, err
	}
	if len(rest) != 1 {
		return nil, cl.fail(fmt.Errorf("expected exactly one key, got %d arguments", len(rest)))
	}
	if cl.ns == "" {
		return nil, cl.fail(fmt.Errorf("namespace must not be empty"))
	}
	opts.Key = common.NewKey(cl.ns, &cl.set, rest[0])
	return opts, nil
}

// ParsePutArgs parses the single writer's command line: connect flags, key location,
// write metadata and exactly one user key.
func ParsePutArgs(args []string) (*Options, error) {
	return newCommandLine("put", "[options] key").withAuth().withKey().withMeta().parseKeyed(args)
}

// ParseGetArgs parses the reader's command line.
func ParseGetArgs(args []string) (*Options, error) {
	return newCommandLine("get", "[options] key").withAuth().withKey().parseKeyed(args)
}

// ParseBulkArgs parses the bulk writer's command line, which only takes connect flags.
func ParseBulkArgs(args []string) (*Options, error) {
	cl := newCommandLine("kvs", "[options]")
	opts := &Options{}
	rest, err := cl.parse(args, opts)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, cl.fail(fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " ")))
	}
	return opts, nil
}
