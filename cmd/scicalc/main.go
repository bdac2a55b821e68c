package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/zephyrtronium/scicalc"
	"github.com/zephyrtronium/scicalc/shell"
)

const help = `Enter an expression to evaluate it, e.g. 2+3*4, sqrt(16), sin90, 5P2.
Functions: %s
Commands:
/history	print previous results
/help		print this help
/exit		exit
`

func main() {
	log.SetFlags(0)
	var (
		inname              string
		keys, echo, verbose bool
		funcs               bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.BoolVar(&keys, "keys", false, "treat each input line as a key label rather than an expression")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&funcs, "funcs", false, "list functions and exit")
	flag.BoolVar(&verbose, "v", false, "log the reason for each error")
	flag.Parse()

	if funcs {
		fmt.Println(strings.Join(scicalc.Funcs(), " "))
		return
	}

	r := &runner{
		sh:      shell.New(),
		out:     os.Stdout,
		keys:    keys,
		echo:    echo,
		verbose: verbose,
	}
	for _, arg := range flag.Args() {
		if !r.line(arg) {
			return
		}
	}
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := r.run(f); err != nil {
			log.Fatal(err)
		}
	case inname == "-", flag.NArg() == 0:
		fd := int(os.Stdin.Fd())
		if inname == "" && term.IsTerminal(fd) {
			if err := interactive(fd, r); err != nil {
				log.Fatal(err)
			}
			return
		}
		if err := r.run(os.Stdin); err != nil {
			log.Fatal(err)
		}
	}
}

// runner feeds lines of input to a shell and writes what the display shows.
type runner struct {
	sh      *shell.Shell
	out     io.Writer
	keys    bool
	echo    bool
	verbose bool
}

// run handles every line of in.
func (r *runner) run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if !r.line(sc.Text()) {
			return nil
		}
	}
	return sc.Err()
}

// line handles one line of input. It returns false when the input asks to
// quit.
func (r *runner) line(text string) bool {
	if r.keys {
		return r.key(text)
	}
	text = strings.TrimSpace(text)
	switch text {
	case "":
		return true
	case "/exit":
		return false
	case "/help":
		fmt.Fprintf(r.out, help, strings.Join(scicalc.Funcs(), " "))
		return true
	case "/history":
		for _, h := range r.sh.History() {
			fmt.Fprintln(r.out, h)
		}
		return true
	}
	if strings.HasPrefix(text, "/") {
		fmt.Fprintln(r.out, "Unknown command")
		return true
	}
	if r.echo && !strings.ContainsAny(text, "PC") {
		if a, err := scicalc.ParseString(text); err == nil {
			fmt.Fprintf(r.out, "%v : ", a)
		}
	}
	res, err := r.sh.Evaluate(text)
	if err != nil {
		if r.verbose {
			log.Printf("%s: %v", text, err)
		}
		res = shell.ErrorText
	}
	fmt.Fprintln(r.out, res)
	return true
}

// key presses one key and prints the display.
func (r *runner) key(label string) bool {
	err := r.sh.Press(label)
	if errors.Is(err, shell.ErrOff) {
		return false
	}
	if err != nil && r.verbose {
		log.Printf("%s: %v", label, err)
	}
	fmt.Fprintln(r.out, r.sh.Display())
	return true
}

// interactive runs a line-editing session on the terminal fd.
func interactive(fd int, r *runner) error {
	old, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, old)
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}, "> ")
	// The terminal translates newlines while in raw mode.
	r.out = t
	log.SetOutput(t)
	defer log.SetOutput(os.Stderr)
	for {
		line, err := t.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !r.line(line) {
			return nil
		}
	}
}
