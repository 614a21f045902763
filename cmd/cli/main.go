package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amirasaad/supportchain/infra/initializer"
	"github.com/amirasaad/supportchain/pkg/app"
	"github.com/amirasaad/supportchain/pkg/handler"
	"github.com/fatih/color"
)

var defaultRequests = []handler.Request{
	handler.DefaultBasicKeyword,
	handler.DefaultExpertKeyword,
	"desconocido",
}

func main() {
	a, err := initializer.Initialize()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	os.Exit(run(context.Background(), a, os.Args[1:], os.Stdout))
}

// run dispatches each argument (or the default scenarios) and prints one line per outcome.
func run(ctx context.Context, a *app.App, args []string, w io.Writer) int {
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(w, "Usage: cli [request...]")
		fmt.Fprintf(w, "Handlers: %s\n", strings.Join(a.Chain.Names(), " -> "))
		return 0
	}

	reqs := defaultRequests
	if len(args) > 0 {
		reqs = make([]handler.Request, len(args))
		for i, arg := range args {
			reqs[i] = handler.Request(arg)
		}
	}

	resolved := color.New(color.FgGreen, color.Bold).SprintFunc()
	unhandled := color.New(color.FgRed, color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	for i, out := range a.DispatchAll(ctx, reqs) {
		if out.Err != nil {
			fmt.Fprintf(w, "%q %s: %v\n", reqs[i], unhandled("failed"), out.Err)
			continue
		}
		path := faint(strings.Join(out.Visited, " -> "))
		if out.Resolved() {
			fmt.Fprintf(w, "%q %s by %s (%s)\n", reqs[i], resolved("resolved"), out.HandledBy, path)
			continue
		}
		fmt.Fprintf(w, "%q %s (%s)\n", reqs[i], unhandled("unhandled"), path)
	}
	return 0
}
