/*
Copyright © 2024 the HAZOP authors.
This file is part of HAZOP.

HAZOP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

HAZOP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with HAZOP.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package hazoputil is the command-line interface to the HAZOP release,
// consequence, LOPA and SIF calculations.
package hazoputil

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/hazop"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// Log is where the commands report progress and problems.
var Log = logrus.New()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	Log.Formatter = &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	}

	liquidFlags := liquidCmd.Flags()
	gasFlags := gasCmd.Flags()
	twoPhaseFlags := twoPhaseCmd.Flags()
	pipeFlags := pipeCmd.Flags()
	flangeFlags := flangeCmd.Flags()

	// Options are the configuration options available to HAZOP.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "loglevel",
			usage: `
              loglevel sets the minimum level of the messages that are
              logged: debug, info, warning or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "hole",
			usage: `
              hole is the diameter of the release hole [mm].`,
			defaultVal: 25.0,
			flagsets:   []*pflag.FlagSet{liquidFlags, gasFlags, twoPhaseFlags},
		},
		{
			name: "pressure",
			usage: `
              pressure is the pressure driving the release [kPa]: the
              pressure drop across the hole or pipe, or the flange
              gauge pressure.`,
			shorthand:  "p",
			defaultVal: 500.0,
			flagsets:   []*pflag.FlagSet{liquidFlags, pipeFlags, flangeFlags},
		},
		{
			name: "density",
			usage: `
              density is the liquid density [kg/m³].`,
			defaultVal: 1000.0,
			flagsets:   []*pflag.FlagSet{liquidFlags, pipeFlags, flangeFlags},
		},
		{
			name: "head",
			usage: `
              head is the height of liquid above the hole [m].`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{liquidFlags},
		},
		{
			name: "cd",
			usage: `
              cd is the discharge coefficient. Zero selects the default
              or, for liquids with a hole profile, an estimate from the
              Reynolds number.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{liquidFlags, gasFlags, twoPhaseFlags},
		},
		{
			name: "profile",
			usage: `
              profile is the shape of the hole used to estimate the
              discharge coefficient of a liquid release: sharp, rounded
              or pipe. Leave empty to use the default coefficient.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{liquidFlags},
		},
		{
			name: "viscosity",
			usage: `
              viscosity is the dynamic viscosity of the liquid [Pa s].`,
			defaultVal: 0.001,
			flagsets:   []*pflag.FlagSet{liquidFlags, pipeFlags},
		},
		{
			name: "upstream",
			usage: `
              upstream is the absolute pressure upstream of the hole [kPa].`,
			defaultVal: 1000.0,
			flagsets:   []*pflag.FlagSet{gasFlags, twoPhaseFlags},
		},
		{
			name: "downstream",
			usage: `
              downstream is the absolute pressure downstream of the hole [kPa].`,
			defaultVal: 101.325,
			flagsets:   []*pflag.FlagSet{gasFlags, twoPhaseFlags},
		},
		{
			name: "temperature",
			usage: `
              temperature is the gas temperature [K].`,
			defaultVal: 288.15,
			flagsets:   []*pflag.FlagSet{gasFlags},
		},
		{
			name: "mw",
			usage: `
              mw is the molecular weight of the released material [g/mol].`,
			defaultVal: 28.96,
			flagsets:   []*pflag.FlagSet{gasFlags, toxicCmd.Flags()},
		},
		{
			name: "k",
			usage: `
              k is the ratio of specific heats of the gas.`,
			defaultVal: 1.4,
			flagsets:   []*pflag.FlagSet{gasFlags},
		},
		{
			name: "fraction",
			usage: `
              fraction is the liquid mass fraction of a two-phase release.`,
			defaultVal: 0.5,
			flagsets:   []*pflag.FlagSet{twoPhaseFlags},
		},
		{
			name: "liquiddensity",
			usage: `
              liquiddensity is the density of the liquid phase [kg/m³].`,
			defaultVal: 600.0,
			flagsets:   []*pflag.FlagSet{twoPhaseFlags},
		},
		{
			name: "vapordensity",
			usage: `
              vapordensity is the density of the vapour phase [kg/m³].`,
			defaultVal: 10.0,
			flagsets:   []*pflag.FlagSet{twoPhaseFlags},
		},
		{
			name: "diameter",
			usage: `
              diameter is the inside diameter of the pipe [mm].`,
			defaultVal: 50.0,
			flagsets:   []*pflag.FlagSet{pipeFlags},
		},
		{
			name: "length",
			usage: `
              length is the length of the pipe [m].`,
			defaultVal: 10.0,
			flagsets:   []*pflag.FlagSet{pipeFlags},
		},
		{
			name: "friction",
			usage: `
              friction is the Darcy friction factor. Zero solves for it
              from the roughness and Reynolds number.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{pipeFlags},
		},
		{
			name: "roughness",
			usage: `
              roughness is the absolute pipe roughness [mm].`,
			defaultVal: 0.045,
			flagsets:   []*pflag.FlagSet{pipeFlags},
		},
		{
			name: "size",
			usage: `
              size is the flange diameter [mm].`,
			defaultVal: 100.0,
			flagsets:   []*pflag.FlagSet{flangeFlags},
		},
		{
			name: "class",
			usage: `
              class is the flange leak class: small, medium or large.`,
			defaultVal: "small",
			flagsets:   []*pflag.FlagSet{flangeFlags},
		},
		{
			name: "inventory",
			usage: `
              inventory is the mass available to be released [kg].`,
			defaultVal: 1000.0,
			flagsets:   []*pflag.FlagSet{durationCmd.Flags()},
		},
		{
			name: "massflow",
			usage: `
              massflow is the release rate [kg/s].`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{durationCmd.Flags()},
		},
		{
			name: "severity",
			usage: `
              severity is the consequence severity rating, 1 to 5.`,
			defaultVal: 3,
			flagsets:   []*pflag.FlagSet{riskCmd.Flags()},
		},
		{
			name: "likelihood",
			usage: `
              likelihood is the likelihood rating, 1 to 5.`,
			defaultVal: 3,
			flagsets:   []*pflag.FlagSet{riskCmd.Flags()},
		},
		{
			name: "rate",
			usage: `
              rate is the release rate [kg/s].`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{dispersionCmd.Flags(), toxicCmd.Flags(), fireCmd.Flags()},
		},
		{
			name: "wind",
			usage: `
              wind is the wind speed [m/s].`,
			defaultVal: 2.0,
			flagsets:   []*pflag.FlagSet{dispersionCmd.Flags(), toxicCmd.Flags()},
		},
		{
			name: "stability",
			usage: `
              stability is the Pasquill atmospheric stability class, A to F.`,
			defaultVal: "D",
			flagsets:   []*pflag.FlagSet{dispersionCmd.Flags()},
		},
		{
			name: "threshold",
			usage: `
              threshold is the toxic concentration of concern [ppm].`,
			defaultVal: 100.0,
			flagsets:   []*pflag.FlagSet{toxicCmd.Flags()},
		},
		{
			name: "heatofcombustion",
			usage: `
              heatofcombustion is the heat of combustion of the fuel [kJ/kg].`,
			defaultVal: 50000.0,
			flagsets:   []*pflag.FlagSet{fireCmd.Flags()},
		},
		{
			name: "mass",
			usage: `
              mass is the flammable mass in the vapour cloud [kg].`,
			defaultVal: 100.0,
			flagsets:   []*pflag.FlagSet{explosionCmd.Flags()},
		},
		{
			name: "tntfactor",
			usage: `
              tntfactor is the TNT equivalency factor of the cloud.`,
			defaultVal: 0.03,
			flagsets:   []*pflag.FlagSet{explosionCmd.Flags()},
		},
		{
			name: "scenario",
			usage: `
              scenario is the path to a TOML file describing a LOPA
              scenario, its initiating event, IPLs and conditional
              modifiers.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{lopaCmd.Flags()},
		},
		{
			name: "sif",
			usage: `
              sif is the path to a TOML file describing a safety
              instrumented function and its subsystems.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{sifCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("HAZOP")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(releaseCmd)
	releaseCmd.AddCommand(liquidCmd, gasCmd, twoPhaseCmd, pipeCmd, flangeCmd, durationCmd)
	Root.AddCommand(consequenceCmd)
	consequenceCmd.AddCommand(riskCmd, dispersionCmd, toxicCmd, fireCmd, explosionCmd)
	Root.AddCommand(lopaCmd)
	Root.AddCommand(sifCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the logging level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("hazop: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("loglevel"))
	if err != nil {
		return fmt.Errorf("hazop: %v", err)
	}
	Log.SetLevel(level)
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "hazop",
	Short: "Quantitative tools for process hazard analysis.",
	Long: `hazop estimates release rates and consequences of loss-of-containment
events, carries out layer of protection analysis (LOPA) and verifies safety
instrumented functions (SIFs) against their required safety integrity level.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'HAZOP_var' where 'var' is the
name of the variable to be set.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of HAZOP.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("HAZOP v%s\n", hazop.Version)
	},
	DisableAutoGenTag: true,
}

// readRecord decodes the TOML file at path into a record.
func readRecord(path string) (hazop.Record, error) {
	if path == "" {
		return nil, fmt.Errorf("hazop: no input file specified")
	}
	path = os.ExpandEnv(path)
	var m map[string]interface{}
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("hazop: reading %s: %v", path, err)
	}
	return hazop.Record(m), nil
}
