package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/xnslong/cli-tools/hexfixture/fileio"
	"github.com/xnslong/cli-tools/hexfixture/fixture"
	"github.com/xnslong/cli-tools/hexfixture/logs"
)

type options struct {
	Out     string `name:"output-file" short:"o" help:"output file, \"-\" for standard output" default:"-"`
	Verbose int    `name:"verbose" short:"v" type:"counter"`

	Value string `arg:"" help:"Encoded value (hex), space separated tokens in one argument, \"-\" to read from standard input"`
}

func newParser(cli *options, extra ...kong.Option) *kong.Kong {
	opts := []kong.Option{
		kong.Name("decode"),
		kong.Description("Decode a space separated hex sequence into a string."),
		kong.UsageOnError(),
	}
	return kong.Must(cli, append(opts, extra...)...)
}

func main() {
	var cli options
	parser := newParser(&cli)
	_, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logs.SetLevel(logs.Verbosity(cli.Verbose))

	ctx := context.Background()
	if err := run(ctx, &cli, os.Stdin, os.Stdout); err != nil {
		logs.LoggerOf(ctx).Error("decode failed", zap.String("value", cli.Value), zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cli *options, stdin io.Reader, stdout io.Writer) error {
	value, err := readValue(ctx, cli.Value, stdin)
	if err != nil {
		return err
	}

	decoded, err := fixture.DecodeString(value)
	if err != nil {
		return err
	}

	outFile, err := fileio.OpenWriteFile(cli.Out, stdout)
	if err != nil {
		return fmt.Errorf("open output file error, file: %s: %w", cli.Out, err)
	}
	defer outFile.Close()

	if _, err := fmt.Fprintln(outFile, decoded); err != nil {
		return fmt.Errorf("write output error: %w", err)
	}

	logs.LoggerOf(ctx).Info("decoded", zap.Int("chars", len([]rune(decoded))))
	return outFile.Close()
}

// readValue returns the hex sequence from the argument, or from stdin when
// the argument is "-".
func readValue(ctx context.Context, value string, stdin io.Reader) (string, error) {
	if value != fileio.Stdio {
		return value, nil
	}

	in, err := fileio.OpenReadFile(value, stdin)
	if err != nil {
		return "", err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read standard input error: %w", err)
	}

	logs.LoggerOf(logs.CtxAddKvs(ctx, "source", "stdin")).Debug("read value", zap.Int("bytes", len(data)))
	return strings.TrimRight(string(data), "\r\n"), nil
}
