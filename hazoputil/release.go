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

package hazoputil

import (
	"github.com/ctessum/unit"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/hazop/release"
	"github.com/spf13/cobra"
)

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Estimate release rates.",
	Long: `release estimates the rate at which material escapes from a loss of
containment. Use the subcommands specified below to choose the kind of release.`,
	DisableAutoGenTag: true,
}

var liquidCmd = &cobra.Command{
	Use:   "liquid",
	Short: "Liquid release through a hole",
	Long: `liquid calculates the discharge of an incompressible liquid through a
hole, driven by the pressure drop and any liquid head above the hole.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := release.Liquid{
			HoleDiameter: Cfg.GetFloat64("hole"),
			PressureDrop: Cfg.GetFloat64("pressure"),
			Density:      Cfg.GetFloat64("density"),
			Head:         Cfg.GetFloat64("head"),
			Cd:           Cfg.GetFloat64("cd"),
			Profile:      release.Profile(Cfg.GetString("profile")),
			Viscosity:    Cfg.GetFloat64("viscosity"),
		}.Rate()
		if err != nil {
			return err
		}
		cmd.Printf("mass flow: %.4g kg/s\n", r.MassFlow)
		cmd.Printf("volume flow: %.4g m³/s\n", r.VolumeFlow)
		cmd.Printf("velocity: %.4g m/s\n", r.Velocity)
		cmd.Printf("discharge coefficient: %.3g\n", r.Cd)
		return nil
	},
	DisableAutoGenTag: true,
}

var gasCmd = &cobra.Command{
	Use:   "gas",
	Short: "Gas release through a hole",
	Long: `gas calculates the discharge of an ideal gas through a hole, choosing
between choked (sonic) and subsonic flow from the pressure ratio.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := release.Gas{
			HoleDiameter:       Cfg.GetFloat64("hole"),
			UpstreamPressure:   Cfg.GetFloat64("upstream"),
			DownstreamPressure: Cfg.GetFloat64("downstream"),
			Temperature:        Cfg.GetFloat64("temperature"),
			MolecularWeight:    Cfg.GetFloat64("mw"),
			K:                  Cfg.GetFloat64("k"),
			Cd:                 Cfg.GetFloat64("cd"),
		}.Rate()
		if err != nil {
			return err
		}
		cmd.Printf("mass flow: %.4g kg/s\n", r.MassFlow)
		cmd.Printf("standard volume flow: %.4g m³/s\n", r.StdVolumeFlow)
		cmd.Printf("choked: %v (pressure ratio %.4g, critical %.4g)\n", r.Choked, r.PressureRatio, r.CriticalRatio)
		return nil
	},
	DisableAutoGenTag: true,
}

var twoPhaseCmd = &cobra.Command{
	Use:   "twophase",
	Short: "Flashing two-phase release through a hole",
	Long: `twophase calculates the discharge of a liquid/vapour mixture through a
hole using the homogeneous equilibrium model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := release.TwoPhase{
			HoleDiameter:       Cfg.GetFloat64("hole"),
			UpstreamPressure:   Cfg.GetFloat64("upstream"),
			DownstreamPressure: Cfg.GetFloat64("downstream"),
			LiquidFraction:     Cfg.GetFloat64("fraction"),
			LiquidDensity:      Cfg.GetFloat64("liquiddensity"),
			VaporDensity:       Cfg.GetFloat64("vapordensity"),
			Cd:                 Cfg.GetFloat64("cd"),
		}.Rate()
		if err != nil {
			return err
		}
		cmd.Printf("mass flow: %.4g kg/s (liquid %.4g, vapour %.4g)\n", r.MassFlow, r.LiquidMassFlow, r.VaporMassFlow)
		cmd.Printf("mixture density: %.4g kg/m³\n", r.MixtureDensity)
		cmd.Printf("velocity: %.4g m/s\n", r.Velocity)
		return nil
	},
	DisableAutoGenTag: true,
}

var pipeCmd = &cobra.Command{
	Use:   "pipe",
	Short: "Liquid flow out of a pipe",
	Long: `pipe calculates the flow driven through a pipe segment by a pressure
drop, solving for the friction factor unless one is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := release.Pipe{
			Diameter:       Cfg.GetFloat64("diameter"),
			Length:         Cfg.GetFloat64("length"),
			PressureDrop:   Cfg.GetFloat64("pressure"),
			Density:        Cfg.GetFloat64("density"),
			Viscosity:      Cfg.GetFloat64("viscosity"),
			FrictionFactor: Cfg.GetFloat64("friction"),
			Roughness:      Cfg.GetFloat64("roughness"),
		}.Rate()
		if err != nil {
			return err
		}
		cmd.Printf("mass flow: %.4g kg/s\n", r.MassFlow)
		cmd.Printf("velocity: %.4g m/s\n", r.Velocity)
		cmd.Printf("friction factor: %.4g (Reynolds number %.4g)\n", r.FrictionFactor, r.Reynolds)
		return nil
	},
	DisableAutoGenTag: true,
}

var flangeCmd = &cobra.Command{
	Use:   "flange",
	Short: "Leak from a flanged joint",
	Long: `flange estimates the liquid leak rate from a flanged joint for a
small, medium or large leak.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		class := release.LeakClass(Cfg.GetString("class"))
		switch class {
		case release.SmallLeak, release.MediumLeak, release.LargeLeak:
		default:
			Log.WithFields(logrus.Fields{
				"command": "flange",
				"class":   class,
			}).Warn("unknown leak class, using small leak")
		}
		r, err := release.Flange{
			Pressure: Cfg.GetFloat64("pressure"),
			Size:     Cfg.GetFloat64("size"),
			Density:  Cfg.GetFloat64("density"),
			Class:    class,
		}.Rate()
		if err != nil {
			return err
		}
		cmd.Printf("mass flow: %.4g kg/s\n", r.MassFlow)
		cmd.Printf("leak area: %.4g m²\n", r.LeakArea)
		return nil
	},
	DisableAutoGenTag: true,
}

var durationCmd = &cobra.Command{
	Use:   "duration",
	Short: "Time to empty an inventory",
	Long: `duration calculates how long an inventory lasts at a given release rate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := release.Exposure(
			unit.New(Cfg.GetFloat64("inventory"), unit.Kilogram),
			unit.New(Cfg.GetFloat64("massflow"), release.KilogramPerSecond),
		)
		if err != nil {
			return err
		}
		cmd.Printf("duration: %.4g s (%.4g min)\n", d.Value(), d.Value()/60)
		return nil
	},
	DisableAutoGenTag: true,
}
