package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hanpama/responsegraph/internal/jsonwire"
	"github.com/hanpama/responsegraph/internal/response"
)

const rootUsage = `responsegraph — GraphQL response shape tools

USAGE:
  responsegraph <command> [flags]

COMMANDS:
  check            Verify a response JSON document against the shape rules
  fmt              Re-encode a response JSON document canonically
  help             Show help for any command
`

const checkUsage = `check FLAGS:
  -in <file>   Response JSON to check (default: stdin)
  (Exits non-zero with the first violation found)
`

const fmtUsage = `fmt FLAGS:
  -in <file>     Response JSON to format (default: stdin)
  -out <file>    Write formatted JSON to file (default: stdout)
  -pretty        Indented output
  (Object keys keep their document order; numbers keep their integer
   or floating form)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("responsegraph", flag.ContinueOnError)
	global.SetOutput(new(bytes.Buffer)) // silence automatic output
	if err := global.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, rootUsage)
		return err
	}
	remaining := global.Args()
	if len(remaining) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]
	switch cmd {
	case "check":
		return cmdCheck(cmdArgs)
	case "fmt":
		return cmdFmt(cmdArgs)
	case "help":
		return cmdHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "check":
		fmt.Print(checkUsage)
	case "fmt":
		fmt.Print(fmtUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

func cmdCheck(args []string) error {
	inFile := ""
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&inFile, "in", inFile, "Response JSON to check")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, checkUsage)
		return err
	}

	data, err := readInput(inFile)
	if err != nil {
		return err
	}
	v, err := jsonwire.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := response.Validate(v); err != nil {
		return fmt.Errorf("invalid response: %w", err)
	}
	return nil
}

func cmdFmt(args []string) error {
	inFile := ""
	outFile := ""
	pretty := false
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&inFile, "in", inFile, "Response JSON to format")
	fs.StringVar(&outFile, "out", outFile, "Write formatted JSON to file")
	fs.BoolVar(&pretty, "pretty", pretty, "Indented output")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, fmtUsage)
		return err
	}

	data, err := readInput(inFile)
	if err != nil {
		return err
	}
	v, err := jsonwire.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	var out []byte
	if pretty {
		out, err = jsonwire.MarshalIndent(v, "", "  ")
	} else {
		out, err = jsonwire.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	out = append(out, '\n')
	if outFile == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(outFile, out, 0644)
}

func readInput(file string) ([]byte, error) {
	if file == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}
