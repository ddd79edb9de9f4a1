package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"pfeifer.dev/soard/cereal"
	"pfeifer.dev/soard/cereal/soar"
	m "pfeifer.dev/soard/math"
	"pfeifer.dev/soard/task"
	"pfeifer.dev/soard/waypoints"
)

func waypointFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "waypoints",
		Usage: "The waypoint database used to resolve named task points",
		Value: waypoints.DefaultPath(),
	}
}

func editTask(t soar.InputType, args []string, radius float64) error {
	pub := cereal.GetSoarInPub()
	return sendTaskEdit(&pub, t, args, radius)
}

func Handle() {
	shouldExit := true
	defaults := waypoints.DefaultGenerateSettings()
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Send commands to an active soard instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					interactive()
					return nil
				},
			},
			{
				Name:      "send",
				Usage:     "Send a single command to an active soard instance",
				ArgsUsage: "<command> [value]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					t, err := parseInputType(cmd.Args().First())
					if err != nil {
						return err
					}
					send(t, cmd.Args().Get(1))
					return nil
				},
			},
			{
				Name:  "params",
				Usage: "List the stored params",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return printParams(os.Stdout)
				},
			},
			{
				Name:  "task",
				Usage: "Edit the active task",
				Commands: []*cli.Command{
					{
						Name:      "load",
						Usage:     "Validate a task file and make it the active task",
						ArgsUsage: "<file>",
						Flags: []cli.Flag{
							waypointFlag(),
							&cli.BoolFlag{
								Name:  "notify",
								Usage: "Tell a running soard instance to reload the task",
								Value: true,
							},
						},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							if cmd.Args().Len() != 1 {
								return errors.New("expected exactly one task file")
							}
							def, sectors, err := loadTaskFile(cmd.Args().First(), loadResolver(cmd.String("waypoints")))
							if err != nil {
								return err
							}
							printTask(os.Stdout, def.Name, sectors)
							if cmd.Bool("notify") {
								send(soar.InputType_reloadTask, "")
							}
							return nil
						},
					},
					{
						Name:  "show",
						Usage: "Print the active task",
						Flags: []cli.Flag{waypointFlag()},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return showTask(os.Stdout, loadResolver(cmd.String("waypoints")))
						},
					},
					{
						Name:      "insert",
						Usage:     "Insert a waypoint cylinder into the running task",
						ArgsUsage: "<index> <waypoint>",
						Flags: []cli.Flag{
							&cli.Float64Flag{
								Name:  "radius",
								Usage: "Cylinder radius in meters, 0 uses the default",
							},
						},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return editTask(soar.InputType_insertTaskPoint, cmd.Args().Slice(), cmd.Float64("radius"))
						},
					},
					{
						Name:      "remove",
						Usage:     "Remove a point from the running task",
						ArgsUsage: "<index>",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return editTask(soar.InputType_removeTaskPoint, cmd.Args().Slice(), 0)
						},
					},
					{
						Name:      "move",
						Usage:     "Move a point of the running task",
						ArgsUsage: "<from> <to>",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return editTask(soar.InputType_moveTaskPoint, cmd.Args().Slice(), 0)
						},
					},
					{
						Name:      "activate",
						Usage:     "Make a point of the running task the active one",
						ArgsUsage: "<index>",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return editTask(soar.InputType_setActiveTaskPoint, cmd.Args().Slice(), 0)
						},
					},
					{
						Name:  "clear",
						Usage: "Remove the active task",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return task.ClearDefinition()
						},
					},
				},
			},
			{
				Name:  "waypoints",
				Usage: "Manage the waypoint database",
				Commands: []*cli.Command{
					{
						Name:    "generate",
						Aliases: []string{"g"},
						Usage:   "Generate the waypoint database from the aerodromes in an OSM pbf file",
						Flags: []cli.Flag{
							&cli.Float64Flag{
								Category: "Bounds",
								Name:     "minlat",
								Usage:    "Sets the minimum latitude in degrees of waypoints to keep",
								Value:    defaults.Bounds.MinPos.Lat(),
							},
							&cli.Float64Flag{
								Category: "Bounds",
								Name:     "minlon",
								Usage:    "Sets the minimum longitude in degrees of waypoints to keep",
								Value:    defaults.Bounds.MinPos.Lon(),
							},
							&cli.Float64Flag{
								Category: "Bounds",
								Name:     "maxlat",
								Usage:    "Sets the maximum latitude in degrees of waypoints to keep",
								Value:    defaults.Bounds.MaxPos.Lat(),
							},
							&cli.Float64Flag{
								Category: "Bounds",
								Name:     "maxlon",
								Usage:    "Sets the maximum longitude in degrees of waypoints to keep",
								Value:    defaults.Bounds.MaxPos.Lon(),
							},
							&cli.StringFlag{
								Category: "Inputs and Outputs",
								Name:     "input-file",
								Usage:    "The open street maps pbf file to read aerodromes from",
								Aliases:  []string{"i"},
								Value:    defaults.InputFile,
							},
							&cli.StringFlag{
								Category: "Inputs and Outputs",
								Name:     "output-file",
								Usage:    "The waypoint database file to write",
								Aliases:  []string{"o"},
								Value:    defaults.OutputFile,
							},
						},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							s := waypoints.GenerateSettings{
								Bounds: m.Box{
									MinPos: m.NewPosition(cmd.Float64("minlat"), cmd.Float64("minlon")),
									MaxPos: m.NewPosition(cmd.Float64("maxlat"), cmd.Float64("maxlon")),
								},
								InputFile:  cmd.String("input-file"),
								OutputFile: cmd.String("output-file"),
							}
							count, err := waypoints.Generate(ctx, s)
							if err != nil {
								return err
							}
							fmt.Printf("wrote %d waypoints to %s\n", count, s.OutputFile)
							return nil
						},
					},
					{
						Name:  "nearest",
						Usage: "Find the waypoint closest to a position",
						Flags: []cli.Flag{
							waypointFlag(),
							&cli.Float64Flag{Name: "lat", Usage: "Latitude in degrees", Required: true},
							&cli.Float64Flag{Name: "lon", Usage: "Longitude in degrees", Required: true},
						},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							db, err := waypoints.Load(cmd.String("waypoints"))
							if err != nil {
								return err
							}
							return printNearest(os.Stdout, db, m.NewPosition(cmd.Float64("lat"), cmd.Float64("lon")))
						},
					},
					{
						Name:      "find",
						Usage:     "Look up a waypoint by name or ICAO code",
						ArgsUsage: "<name>",
						Flags:     []cli.Flag{waypointFlag()},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							db, err := waypoints.Load(cmd.String("waypoints"))
							if err != nil {
								return err
							}
							wp, ok := db.Lookup(cmd.Args().First())
							if !ok {
								return errors.Errorf("no waypoint named %q", cmd.Args().First())
							}
							fmt.Printf("%s %s %s lat=%.5f lon=%.5f elevation=%.0fm\n",
								wp.Name, wp.Icao, wp.Kind, wp.Position.Lat(), wp.Position.Lon(), wp.Elevation)
							return nil
						},
					},
				},
			},
		},
		Name:  "soard",
		Usage: "Start an instance of soard",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shouldExit = false
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}

	if shouldExit {
		os.Exit(0)
	}
}
