package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"travelplanner/itinerary"
)

// Dependencies 命令執行時需要的輸入輸出
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CLI kong 的命令定義
type CLI struct {
	Parse ParseCmd `cmd:"" help:"Parse itinerary text into JSON"`
	Route RouteCmd `cmd:"" help:"Print the 旅行路线 stops, one per line"`
}

// ParseCmd "parse" 子命令
type ParseCmd struct {
	File      string `arg:"" optional:"" help:"Itinerary text file (default: stdin)"`
	Gazetteer string `short:"g" type:"existingfile" help:"Extra place names, one per line"`
	Route     bool   `short:"r" help:"Include the route line"`
	Compact   bool   `short:"c" help:"Print compact JSON"`
}

// RouteCmd "route" 子命令
type RouteCmd struct {
	File string `arg:"" optional:"" help:"Itinerary text file (default: stdin)"`
}

type parseOutput struct {
	Itinerary itinerary.Itinerary `json:"itinerary"`
	Route     []string            `json:"route,omitempty"`
}

func (c *ParseCmd) Run(deps *Dependencies) error {
	text, err := readInput(c.File, deps.Stdin)
	if err != nil {
		return err
	}

	var opts []itinerary.Option
	if c.Gazetteer != "" {
		names, err := readNames(c.Gazetteer)
		if err != nil {
			return err
		}
		opts = append(opts, itinerary.WithExtraGazetteer(names))
	}

	var out any = itinerary.New(opts...).Parse(text)
	if c.Route {
		out = parseOutput{
			Itinerary: out.(itinerary.Itinerary),
			Route:     itinerary.ParseRoute(text),
		}
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	if !c.Compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

func (c *RouteCmd) Run(deps *Dependencies) error {
	text, err := readInput(c.File, deps.Stdin)
	if err != nil {
		return err
	}
	for _, stop := range itinerary.ParseRoute(text) {
		fmt.Fprintln(deps.Stdout, stop)
	}
	return nil
}

// readInput 沒有指定檔案或為 "-" 時讀 stdin
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

func readNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gazetteer: %w", err)
	}
	defer f.Close()

	var names []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read gazetteer: %w", err)
	}
	return names, nil
}
