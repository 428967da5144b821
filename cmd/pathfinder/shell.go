package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/loader"
	"github.com/katalvlaran/pathfinder/render"
	"github.com/katalvlaran/pathfinder/router"
)

// shell answers "START END" lines over one graph.
type shell struct {
	ctx context.Context
	svc *router.Service
	g   *core.Graph
	out io.Writer
}

var shellCommands = []prompt.Suggest{
	{Text: "graph", Description: "graph - Print every node and edge"},
	{Text: "nodes", Description: "nodes - List node ids"},
	{Text: "help", Description: "help - Show commands"},
	{Text: "exit", Description: "exit - Leave the shell"},
}

func runShell(ctx context.Context, out io.Writer, svc *router.Service, path string) error {
	doc, err := loader.LoadFile(path)
	if err != nil {
		return loadFailure(err)
	}

	sh := &shell{ctx: ctx, svc: svc, g: doc.Graph, out: out}
	fmt.Fprintf(out, "Loaded %s: %d nodes, %d edges.\n", path, doc.Graph.Order(), doc.Graph.Size())
	fmt.Fprintln(out, "Type START END to query. Use `Ctrl-D` or `exit` to leave.")

	p := prompt.New(
		sh.execute,
		sh.complete,
		prompt.OptionPrefix(">>> "),
		prompt.OptionPrefixTextColor(prompt.Yellow),
		prompt.OptionSuggestionTextColor(prompt.Yellow),
		prompt.OptionSuggestionBGColor(prompt.Black),
		prompt.OptionDescriptionBGColor(prompt.Black),
		prompt.OptionDescriptionTextColor(prompt.Yellow),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			return breakline && strings.TrimSpace(in) == "exit"
		}),
	)
	p.Run()

	return nil
}

func (s *shell) execute(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "exit":
		return
	case "help":
		for _, c := range shellCommands {
			fmt.Fprintln(s.out, c.Description)
		}
		fmt.Fprintln(s.out, "START END - Shortest path between two node ids")
		return
	case "graph":
		_ = render.Graph(s.out, s.g)
		return
	case "nodes":
		fmt.Fprintln(s.out, render.Path(s.g.NodeIDs()))
		return
	}

	if len(fields) != 2 {
		fmt.Fprintln(s.out, "Expected: START END")
		return
	}
	start, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid node id %q\n", fields[0])
		return
	}
	end, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid node id %q\n", fields[1])
		return
	}

	ans := s.svc.Route(s.ctx, s.g, router.Query{Start: start, End: end})
	_ = render.Result(s.out, start, end, ans.Path, ans.Found)
	if ans.Found {
		fmt.Fprintf(s.out, "Cost: %d\n", ans.Distance)
	}
}

func (s *shell) complete(d prompt.Document) []prompt.Suggest {
	return suggest(d.TextBeforeCursor())
}

// suggest offers commands for a partially typed first word.
func suggest(input string) []prompt.Suggest {
	if input == "" || strings.Contains(input, " ") {
		return []prompt.Suggest{}
	}

	return prompt.FilterHasPrefix(shellCommands, input, true)
}
