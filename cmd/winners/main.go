package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"winninghands/internal/config"
	"winninghands/pkg/poker"
)

// CLI are the command line arguments
type CLI struct {
	Hands      []string `arg:"" optional:"" help:"Hands to compare, e.g. \"4S 5S 7H 8D JC\". Read from stdin, one per line, when omitted."`
	Workers    int      `short:"w" help:"Number of hands evaluated at once." default:"${workers}"`
	KickerRule string   `help:"How three of a kind hands with the same trips are split (${enum})." enum:"single,all" default:"${kickerRule}"`
	JSON       bool     `help:"Print the winners as JSON."`
	LogLevel   string   `help:"Log level." default:"${logLevel}"`
}

var errNoHands = errors.New("no hands given and stdin is a terminal")

type output struct {
	Winners  []string `json:"winners"`
	Category string   `json:"category,omitempty"`
}

func main() {
	cfg := config.Instance()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("winners"),
		kong.Description("Prints the winning poker hands."),
		kong.UsageOnError(),
		kong.Vars{
			"workers":    strconv.Itoa(cfg.Evaluator.Workers),
			"kickerRule": cfg.Evaluator.KickerRule,
			"logLevel":   cfg.Log.Level,
		},
	)

	stdinIsTerminal := term.IsTerminal(int(os.Stdin.Fd()))
	ctx.FatalIfErrorf(cli.run(context.Background(), os.Stdin, stdinIsTerminal, os.Stdout))
}

func (c *CLI) run(ctx context.Context, stdin io.Reader, stdinIsTerminal bool, stdout io.Writer) error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}

	logrus.SetLevel(level)

	rule, err := poker.ParseKickerRule(c.KickerRule)
	if err != nil {
		return err
	}

	hands := c.Hands
	if len(hands) == 0 {
		if stdinIsTerminal {
			return errNoHands
		}

		if hands, err = readHands(stdin); err != nil {
			return err
		}
	}

	e := poker.NewEvaluator(poker.Options{
		Workers:    c.Workers,
		KickerRule: rule,
	})

	results, err := e.Winners(ctx, hands)
	if err != nil {
		return err
	}

	out := output{
		Winners: make([]string, len(results)),
	}

	for i, r := range results {
		out.Winners[i] = r.Hand
	}

	if len(results) > 0 {
		out.Category = results[0].Category.String()
	}

	if c.JSON {
		return json.NewEncoder(stdout).Encode(out)
	}

	for _, winner := range out.Winners {
		if _, err := fmt.Fprintln(stdout, winner); err != nil {
			return err
		}
	}

	return nil
}

// readHands returns every non-blank line
func readHands(r io.Reader) ([]string, error) {
	hands := make([]string, 0)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			hands = append(hands, line)
		}
	}

	return hands, scanner.Err()
}
