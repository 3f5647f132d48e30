package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/xnslong/cli-tools/hexfixture/fileio"
	"github.com/xnslong/cli-tools/hexfixture/fixture"
	"github.com/xnslong/cli-tools/hexfixture/logs"
)

type options struct {
	String bool `name:"string" short:"s" help:"Encode the argument as a string"`
	Float  bool `name:"float" short:"f" help:"Encode the argument as a float"`
	Double bool `name:"double" short:"d" help:"Encode the argument as a double"`
	Byte   bool `name:"byte" short:"b" help:"Encode the argument as a signed 8-bit integer"`
	Short  bool `name:"short" help:"Encode the argument as a signed 16-bit integer"`
	Int    bool `name:"int" short:"i" help:"Encode the argument as a signed 32-bit integer"`
	Long   bool `name:"long" short:"l" help:"Encode the argument as a signed 64-bit integer"`

	Out     string `name:"output-file" short:"o" help:"output file, \"-\" for standard output" default:"-"`
	Verbose int    `name:"verbose" short:"v" type:"counter"`

	Value string `arg:"" help:"Unencoded value"`
}

func (o *options) mode() fixture.Mode {
	switch {
	case o.String:
		return fixture.ModeString
	case o.Float:
		return fixture.ModeFloat
	case o.Double:
		return fixture.ModeDouble
	case o.Byte:
		return fixture.ModeByte
	case o.Short:
		return fixture.ModeShort
	case o.Int:
		return fixture.ModeInt
	case o.Long:
		return fixture.ModeLong
	default:
		return fixture.ModeNone
	}
}

// negativeNumber matches the literals that are values, not short flags, even
// without a "--" separator.
var negativeNumber = regexp.MustCompile(`^-\d+$|^-\d*\.\d+$`)

// positionalNegatives moves a negative number literal behind "--", so that
// "encode -f -1.5" reads -1.5 as the value. A negative number given to -o is
// joined to the flag instead. Arguments after an existing "--" are left alone.
func positionalNegatives(args []string) []string {
	var (
		rest      = make([]string, 0, len(args)+1)
		values    []string
		separated bool
	)

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			rest = append(rest, args[i:]...)
			separated = true
			i = len(args)
		case isOutputFlag(arg) && i+1 < len(args) && negativeNumber.MatchString(args[i+1]):
			rest = append(rest, "--output-file="+args[i+1])
			i++
		case negativeNumber.MatchString(arg):
			values = append(values, arg)
		default:
			rest = append(rest, arg)
		}
	}

	if len(values) == 0 {
		return rest
	}
	if !separated {
		rest = append(rest, "--")
	}
	return append(rest, values...)
}

func isOutputFlag(arg string) bool {
	return arg == "-o" || arg == "--output-file"
}

func parseArgs(parser *kong.Kong, args []string) (*kong.Context, error) {
	return parser.Parse(positionalNegatives(args))
}

func newParser(cli *options, extra ...kong.Option) *kong.Kong {
	opts := []kong.Option{
		kong.Name("encode"),
		kong.Description("Encode a value as space separated hex bytes for test fixtures."),
		kong.UsageOnError(),
	}
	return kong.Must(cli, append(opts, extra...)...)
}

func main() {
	var cli options
	parser := newParser(&cli)
	_, err := parseArgs(parser, os.Args[1:])
	parser.FatalIfErrorf(err)

	logs.SetLevel(logs.Verbosity(cli.Verbose))

	ctx := logs.CtxAddKvs(context.Background(), "mode", cli.mode())
	if err := run(ctx, &cli, os.Stdout); err != nil {
		logs.LoggerOf(ctx).Error("encode failed", zap.String("value", cli.Value), zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cli *options, stdout io.Writer) error {
	mode := cli.mode()
	if mode == fixture.ModeNone {
		logs.LoggerOf(ctx).Warn("no mode flag given, nothing encoded")
		return nil
	}

	outFile, err := fileio.OpenWriteFile(cli.Out, stdout)
	if err != nil {
		return fmt.Errorf("open output file error, file: %s: %w", cli.Out, err)
	}
	defer outFile.Close()

	logs.LoggerOf(ctx).Debug("encoding", zap.String("value", cli.Value), zap.String("output", cli.Out))

	if err := fixture.Encode(outFile, mode, cli.Value); err != nil {
		return err
	}

	logs.LoggerOf(ctx).Info("encoded")
	return outFile.Close()
}
