package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scenephys/scenephys/physics"
	"github.com/scenephys/scenephys/scene"
)

var (
	flagInclude []string
	flagExclude []string
	flagOwners  []string
	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:   "scenephys",
		Short: "Extract and validate physics data from scene files",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	parseCmd := &cobra.Command{
		Use:   "parse <stage.yaml>",
		Short: "Parse physics descriptors from a stage and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args[0])
		},
	}
	parseCmd.Flags().StringSliceVar(&flagInclude, "include", nil, "subtree roots to parse (default: whole stage)")
	parseCmd.Flags().StringSliceVar(&flagExclude, "exclude", nil, "subtrees to skip")
	parseCmd.Flags().StringSliceVar(&flagOwners, "owners", nil, "simulation owner scenes to keep")

	validateCmd := &cobra.Command{
		Use:   "validate <stage.yaml>",
		Short: "Run the physics rule checkers over a stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}

	root.AddCommand(parseCmd, validateCmd)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func parsePaths(raw []string) ([]scene.Path, error) {
	if raw == nil {
		return nil, nil
	}
	paths := make([]scene.Path, 0, len(raw))
	for _, s := range raw {
		p, err := scene.NewPath(s)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func runParse(filename string) error {
	stage, err := scene.LoadStage(filename)
	if err != nil {
		return err
	}
	include, err := parsePaths(flagInclude)
	if err != nil {
		return err
	}
	exclude, err := parsePaths(flagExclude)
	if err != nil {
		return err
	}
	owners, err := parsePaths(flagOwners)
	if err != nil {
		return err
	}

	var opts []physics.Option
	if len(exclude) > 0 {
		opts = append(opts, physics.WithExcludePaths(exclude...))
	}
	if owners != nil {
		opts = append(opts, physics.WithSimulationOwners(owners...))
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Type", "Prim", "Valid"})
	total := 0
	report := func(typ physics.ObjectType, paths []scene.Path, descs []physics.Desc, _ interface{}) {
		for i, d := range descs {
			table.Append([]string{typ.String(), paths[i].String(), fmt.Sprintf("%t", d.DescValid())})
		}
		total += len(descs)
	}

	if err := physics.LoadPhysicsFromRange(stage, include, report, opts...); err != nil {
		return err
	}
	table.Render()
	logrus.WithField("descriptors", total).Info("parse finished")
	return nil
}

func runValidate(filename string) error {
	stage, err := scene.LoadStage(filename)
	if err != nil {
		return err
	}
	if err := physics.ValidateStage(stage); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logrus.Info("stage is clean")
	return nil
}
