// cmd/scalarcalc/main.go — command-line calculator over goscalar tools
//
// Usage:
//   scalarcalc add 2 theta          # prints (2e0 + theta)
//   scalarcalc -json div x 4        # prints the full tool response
//   scalarcalc fold mul 2 x 0.5     # prints ((2e0 * x) * 5e-1)
//   scalarcalc                      # one call per line from stdin
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/njchilds90/goscalar"
)

const (
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

func main() {
	asJSON := flag.Bool("json", false, "Print the full JSON tool response")
	flag.Parse()

	p := &printer{out: os.Stdout, errOut: os.Stderr, json: *asJSON, color: useColor(os.Stdout)}

	if flag.NArg() > 0 {
		if !p.run(flag.Args()) {
			os.Exit(1)
		}
		return
	}

	prompt := ""
	if isTerminal(os.Stdin) {
		prompt = "> "
	}
	if !p.repl(os.Stdin, prompt) {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func useColor(f *os.File) bool {
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTerminal(f) && os.Getenv("TERM") != "dumb"
}

type printer struct {
	out, errOut io.Writer
	json        bool
	color       bool
}

// repl runs one call per non-empty line. It reports whether every call
// succeeded.
func (p *printer) repl(in io.Reader, prompt string) bool {
	ok := true
	sc := bufio.NewScanner(in)
	fmt.Fprint(p.out, prompt)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			if line == "quit" || line == "exit" {
				return ok
			}
			if !p.run(strings.Fields(line)) {
				ok = false
			}
		}
		fmt.Fprint(p.out, prompt)
	}
	if err := sc.Err(); err != nil {
		p.fail(err.Error())
		return false
	}
	return ok
}

func (p *printer) run(args []string) bool {
	req, err := buildRequest(args)
	if err != nil {
		p.fail(err.Error())
		return false
	}
	resp := goscalar.HandleToolCall(req)
	if p.json {
		b, _ := json.Marshal(resp)
		fmt.Fprintln(p.out, string(b))
		return resp.Error == ""
	}
	if resp.Error != "" {
		p.fail(resp.Error)
		return false
	}
	if req.Tool == "mcp_spec" {
		fmt.Fprintln(p.out, resp.Result)
		return true
	}
	fmt.Fprintln(p.out, resp.String)
	return true
}

func (p *printer) fail(msg string) {
	if p.color {
		fmt.Fprintf(p.errOut, "%serror:%s %s\n", colorRed, colorReset, msg)
		return
	}
	fmt.Fprintf(p.errOut, "error: %s\n", msg)
}

// buildRequest maps positional arguments onto the tool's parameters in
// declaration order. An array parameter takes all remaining arguments.
func buildRequest(args []string) (goscalar.ToolRequest, error) {
	name := args[0]
	def, ok := goscalar.LookupTool(name)
	if !ok {
		return goscalar.ToolRequest{}, fmt.Errorf("unknown tool: %s", name)
	}
	rest := args[1:]
	params := map[string]interface{}{}
	for i, param := range def.Params {
		if param.Type == "array" {
			values := make([]interface{}, len(rest[i:]))
			for j, a := range rest[i:] {
				values[j] = a
			}
			params[param.Name] = values
			rest = nil
			break
		}
		if i >= len(rest) {
			return goscalar.ToolRequest{}, fmt.Errorf("%s: missing argument %s", name, param.Name)
		}
		params[param.Name] = rest[i]
	}
	if rest != nil && len(rest) > len(def.Params) {
		return goscalar.ToolRequest{}, fmt.Errorf("%s: expected %d arguments, got %d", name, len(def.Params), len(rest))
	}
	return goscalar.ToolRequest{Tool: name, Params: params}, nil
}
