// Bowerbird - declarative view compiler
// Named after the bird that builds elaborate display structures.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chazu/bowerbird/pkg/compile"
	"github.com/chazu/bowerbird/pkg/lexer"
	"github.com/chazu/bowerbird/pkg/parser"
	"github.com/chazu/bowerbird/pkg/widget"
)

var (
	tokens  = flag.Bool("tokens", false, "dump the token stream as JSON and exit")
	astOut  = flag.Bool("ast", false, "dump the parsed statement tree as JSON and exit")
	envFile = flag.String("env", "", "YAML file supplying subject state and configuration")
	version = flag.Bool("version", false, "print version and exit")
)

const versionStr = "0.3.0"

// hostEnv is the YAML shape of an -env file: state for the primary and
// secondary subjects, named beans, and %{...} configuration values.
type hostEnv struct {
	Subject   map[string]interface{}            `yaml:"subject"`
	Secondary map[string]interface{}            `yaml:"secondary"`
	Beans     map[string]map[string]interface{} `yaml:"beans"`
	Config    map[string]string                 `yaml:"config"`
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Bowerbird - declarative view compiler\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  bowerbird [options] view.bower\n")
		fmt.Fprintf(os.Stderr, "  bowerbird [options] < view.bower\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("bowerbird version %s\n", versionStr)
		os.Exit(0)
	}

	src, err := readSource()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	if len(strings.TrimSpace(src)) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no input provided\n")
		fmt.Fprintf(os.Stderr, "Usage: bowerbird view.bower\n")
		os.Exit(1)
	}

	if *tokens {
		out, err := lexer.New(src).TokenizeJSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
		os.Exit(0)
	}

	if *astOut {
		doc, err := parser.ParseSource(src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		os.Exit(0)
	}

	env, err := buildEnvironment(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading environment: %v\n", err)
		os.Exit(1)
	}

	res, err := compile.Compile(src, env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, d := range res.Diagnostics {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", d)
	}
	if !res.Clean {
		fmt.Fprintf(os.Stderr, "Error: view did not compile cleanly, no tree produced\n")
		os.Exit(1)
	}

	printTree(os.Stdout, res.Root, 0)
}

// readSource reads the view source from the file argument, or stdin when
// no file is named.
func readSource() (string, error) {
	if flag.NArg() > 0 {
		b, err := os.ReadFile(flag.Arg(0))
		return string(b), err
	}
	b, err := io.ReadAll(os.Stdin)
	return string(b), err
}

// buildEnvironment loads the optional -env YAML file into a compile
// environment. Missing file name means a default environment.
func buildEnvironment(path string) (*compile.Environment, error) {
	env := compile.NewEnvironment()
	if path == "" {
		return env, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var h hostEnv
	if err := yaml.Unmarshal(b, &h); err != nil {
		return nil, err
	}

	if h.Subject != nil {
		env.Subject = h.Subject
	}
	if h.Secondary != nil {
		env.Secondary = h.Secondary
	}
	if h.Beans != nil {
		env.Beans = func(name string) (interface{}, error) {
			bean, ok := h.Beans[name]
			if !ok {
				return nil, fmt.Errorf("unknown bean %q", name)
			}
			return bean, nil
		}
	}
	if h.Config != nil {
		env.Config = func(key string) (interface{}, bool) {
			v, ok := h.Config[key]
			return v, ok
		}
	}
	return env, nil
}

// printTree writes the constructed widget tree, one widget per line with
// its set properties, children indented beneath their container.
func printTree(w io.Writer, node *widget.Widget, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s%s\n", indent, node, propSummary(node))
	for _, child := range node.Children() {
		printTree(w, child, depth+1)
	}
}

func propSummary(node *widget.Widget) string {
	var parts []string
	for _, name := range node.Kind().PropNames() {
		v, ok := node.Property(name)
		if !ok || v == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", name, v))
	}
	sort.Strings(parts)
	if len(parts) == 0 {
		return ""
	}
	return " [" + strings.Join(parts, " ") + "]"
}
