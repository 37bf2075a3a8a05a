package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	firmwarestrings "github.com/wippyai/firmware-strings"
	"github.com/wippyai/firmware-strings/transcoder"
)

func main() {
	var (
		encodeText  = flag.String("encode", "", "Text to encode into firmware code units")
		decodeDump  = flag.String("decode", "", "Hex code units to decode (e.g. \"48 69 00\")")
		validate    = flag.String("validate", "", "Hex code units to validate")
		narrow      = flag.Bool("narrow", false, "Use the 8-bit Latin-1 encoding instead of UCS-2")
		units       = flag.Int("units", 64, "Output buffer size in code units")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		transcoder.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*units); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *encodeText == "" && *decodeDump == "" && *validate == "" {
		fmt.Fprintln(os.Stderr, "Usage: fwstr -encode <text> [-narrow] [-units N]")
		fmt.Fprintln(os.Stderr, "       fwstr -decode <hex units> [-narrow]")
		fmt.Fprintln(os.Stderr, "       fwstr -validate <hex units> [-narrow]")
		fmt.Fprintln(os.Stderr, "       fwstr -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*encodeText, *decodeDump, *validate, *narrow, *units); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(encodeText, decodeDump, validateDump string, narrow bool, units int) error {
	switch {
	case encodeText != "":
		return runEncode(encodeText, narrow, units)
	case decodeDump != "":
		return runDecode(decodeDump, narrow)
	default:
		return runValidate(validateDump, narrow)
	}
}

func runEncode(text string, narrow bool, units int) error {
	if narrow {
		buf := make([]byte, units)
		s, rest, err := transcoder.EncodeCStr8(text, buf)
		if err != nil {
			return err
		}
		fmt.Println(formatUnits8(s.IntsWithNul()))
		printRemainder(rest)
		return nil
	}

	buf := make([]uint16, units)
	s, rest, err := transcoder.EncodeCStr16(text, buf)
	if err != nil {
		return err
	}
	fmt.Println(formatUnits16(s.IntsWithNul()))
	printRemainder(rest)
	return nil
}

func runDecode(dump string, narrow bool) error {
	if narrow {
		units, err := parseUnits8(dump)
		if err != nil {
			return err
		}
		s, err := firmwarestrings.NewCStr8(units)
		if err != nil {
			return err
		}
		fmt.Printf("%q (%d characters)\n", s.String(), s.Len())
		return nil
	}

	units, err := parseUnits16(dump)
	if err != nil {
		return err
	}
	s, err := firmwarestrings.NewCStr16(units)
	if err != nil {
		return err
	}
	fmt.Printf("%q (%d characters)\n", s.String(), s.Len())
	return nil
}

func runValidate(dump string, narrow bool) error {
	var err error
	if narrow {
		var units []byte
		if units, err = parseUnits8(dump); err == nil {
			_, err = firmwarestrings.NewCStr8(units)
		}
	} else {
		var units []uint16
		if units, err = parseUnits16(dump); err == nil {
			_, err = firmwarestrings.NewCStr16(units)
		}
	}
	if err != nil {
		return err
	}
	fmt.Println("ok")
	return nil
}

func printRemainder(rest string) {
	if rest != "" {
		fmt.Printf("truncated, remainder: %q\n", rest)
	}
}

func parseUnits16(dump string) ([]uint16, error) {
	fields := strings.FieldsFunc(dump, func(r rune) bool { return r == ' ' || r == ',' })
	units := make([]uint16, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(strings.TrimPrefix(f, "0x"), 16, 16)
		if err != nil {
			return nil, fmt.Errorf("bad code unit %q: %w", f, err)
		}
		units = append(units, uint16(v))
	}
	return units, nil
}

func parseUnits8(dump string) ([]byte, error) {
	fields := strings.FieldsFunc(dump, func(r rune) bool { return r == ' ' || r == ',' })
	units := make([]byte, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(strings.TrimPrefix(f, "0x"), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("bad code unit %q: %w", f, err)
		}
		units = append(units, byte(v))
	}
	return units, nil
}

func formatUnits16(units []uint16) string {
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = fmt.Sprintf("%04X", u)
	}
	return strings.Join(parts, " ")
}

func formatUnits8(units []byte) string {
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = fmt.Sprintf("%02X", u)
	}
	return strings.Join(parts, " ")
}
