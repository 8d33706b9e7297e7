package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	"github.com/iancoleman/strcase"
	"github.com/urfave/cli/v2"

	"github.com/pdok/gridstep/direction"
	"github.com/pdok/gridstep/point"
	"github.com/pdok/gridstep/walk"
)

const START string = `start`
const MOVES string = `moves`
const SCALE string = `scale`
const PLAN string = `plan`

//nolint:funlen
func main() {
	app := cli.NewApp()
	app.Name = "gridstep"
	app.Usage = "Walk a grid using 8-way compass directions"
	app.Version = versioninfo.Short()

	app.Commands = []*cli.Command{
		{
			Name:  "walk",
			Usage: "Follow a sequence of moves from a start point",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    START,
					Aliases: []string{"s"},
					Usage:   `Start point as "x,y"`,
					Value:   "0,0",
					EnvVars: []string{strcase.ToScreamingSnake(START)},
				},
				&cli.StringFlag{
					Name:    MOVES,
					Aliases: []string{"m"},
					Usage:   `Comma separated moves. E.g.: Up,Left,DownRight`,
					EnvVars: []string{strcase.ToScreamingSnake(MOVES)},
				},
				&cli.Float64Flag{
					Name:    SCALE,
					Usage:   "Factor the reported points are multiplied with",
					Value:   1,
					EnvVars: []string{strcase.ToScreamingSnake(SCALE)},
				},
				&cli.PathFlag{
					Name:    PLAN,
					Aliases: []string{"p"},
					Usage:   "JSON file with a walk plan. Takes precedence over the other flags",
					EnvVars: []string{strcase.ToScreamingSnake(PLAN)},
				},
			},
			Action: func(c *cli.Context) error {
				plan, err := planFromContext(c)
				if err != nil {
					return err
				}
				log.Printf("walking %d moves from %v", len(plan.Moves), plan.Start)
				printTrail(os.Stdout, plan, plan.Follow())
				return nil
			},
		},
		{
			Name:  "table",
			Usage: "Print the algebra of every direction",
			Action: func(c *cli.Context) error {
				printTable(os.Stdout)
				return nil
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func planFromContext(c *cli.Context) (walk.Plan, error) {
	var plan walk.Plan
	if c.IsSet(PLAN) {
		planJSON, err := os.ReadFile(c.Path(PLAN))
		if err != nil {
			return plan, err
		}
		err = json.Unmarshal(planJSON, &plan)
		if err != nil {
			return plan, fmt.Errorf("invalid plan %s: %w", c.Path(PLAN), err)
		}
		return plan, nil
	}

	start, err := point.Parse(c.String(START))
	if err != nil {
		return plan, err
	}
	moves, err := parseMoves(c.String(MOVES))
	if err != nil {
		return plan, err
	}
	plan, err = walk.NewPlan(start, moves...)
	if err != nil {
		return plan, err
	}
	plan.Scale = c.Float64(SCALE)
	return plan, plan.Validate()
}

func parseMoves(s string) ([]direction.Direction, error) {
	var moves []direction.Direction
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		move, err := direction.Parse(name)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}
	return moves, nil
}

func printTrail(w io.Writer, plan walk.Plan, trail *walk.Trail[float64]) {
	if plan.Name != "" {
		fmt.Fprintf(w, "plan:         %s\n", plan.Name)
	}
	end := trail.Position().Mul(plan.Scale)
	most, visits, winners := trail.MostVisited()
	fmt.Fprintf(w, "position:     %v\n", end)
	fmt.Fprintf(w, "wkt:          %s\n", end.WKT())
	fmt.Fprintf(w, "heading:      %v\n", trail.Heading())
	fmt.Fprintf(w, "distinct:     %d of %d steps\n", trail.Len(), trail.Steps())
	fmt.Fprintf(w, "most visited: %v (%d times, %d tied)\n", most.Mul(plan.Scale), visits, winners)
}
