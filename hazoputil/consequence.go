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
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/hazop/consequence"
	"github.com/spf13/cobra"
)

var consequenceCmd = &cobra.Command{
	Use:   "consequence",
	Short: "Estimate consequences and rank risk.",
	Long: `consequence provides screening estimates of the effects of a release
and ranks risk on a 5 x 5 severity-likelihood matrix. Use the subcommands
specified below to choose the estimate.`,
	DisableAutoGenTag: true,
}

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Rank a risk",
	Long: `risk scores a hazard from its severity and likelihood ratings and
recommends whether it needs a layer of protection analysis.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := consequence.Assess(Cfg.GetInt("severity"), Cfg.GetInt("likelihood"))
		cmd.Printf("risk score: %d (%s)\n", a.Score, a.Category)
		cmd.Printf("needs LOPA: %v\n", a.NeedsLOPA)
		cmd.Printf("%s\n", a.RecommendedAction)
		return nil
	},
	DisableAutoGenTag: true,
}

var dispersionCmd = &cobra.Command{
	Use:   "dispersion",
	Short: "Downwind hazard distance",
	Long: `dispersion estimates the downwind distance a release travels before
it is diluted, for a given wind speed and stability class.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		class := consequence.StabilityClass(strings.ToUpper(Cfg.GetString("stability")))
		switch class {
		case consequence.ClassA, consequence.ClassB, consequence.ClassC,
			consequence.ClassD, consequence.ClassE, consequence.ClassF:
		default:
			Log.WithFields(logrus.Fields{
				"command":   "dispersion",
				"stability": class,
			}).Warn("unknown stability class, using a dispersion factor of 1")
		}
		d, err := consequence.DispersionDistance(Cfg.GetFloat64("rate"), Cfg.GetFloat64("wind"), class)
		if err != nil {
			return err
		}
		cmd.Printf("dispersion distance: %.4g m\n", d)
		return nil
	},
	DisableAutoGenTag: true,
}

var toxicCmd = &cobra.Command{
	Use:   "toxic",
	Short: "Toxic impact zone",
	Long: `toxic estimates the radius and population affected by a toxic release
above a concentration threshold.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tox, err := consequence.ToxicImpact(Cfg.GetFloat64("rate"), Cfg.GetFloat64("threshold"),
			Cfg.GetFloat64("mw"), Cfg.GetFloat64("wind"))
		if err != nil {
			return err
		}
		cmd.Printf("impact radius: %.4g m\n", tox.Radius)
		cmd.Printf("affected area: %.4g m²\n", tox.AffectedArea)
		cmd.Printf("potential casualties: %.4g\n", tox.Casualties)
		return nil
	},
	DisableAutoGenTag: true,
}

var fireCmd = &cobra.Command{
	Use:   "fire",
	Short: "Fire size and radiation distance",
	Long:  `fire estimates the heat release, flame height and radiation distance of a fire.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := consequence.FireSize(Cfg.GetFloat64("rate"), Cfg.GetFloat64("heatofcombustion"))
		cmd.Printf("heat release: %.4g kW\n", f.HeatRelease)
		cmd.Printf("flame height: %.4g m\n", f.FlameHeight)
		cmd.Printf("radiation distance: %.4g m\n", f.RadiationDistance)
		return nil
	},
	DisableAutoGenTag: true,
}

var explosionCmd = &cobra.Command{
	Use:   "explosion",
	Short: "Vapour cloud explosion damage distances",
	Long: `explosion estimates damage distances for a vapour cloud explosion from
its TNT-equivalent mass.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e := consequence.TNTEquivalent(Cfg.GetFloat64("mass"), Cfg.GetFloat64("tntfactor"))
		cmd.Printf("TNT equivalent: %.4g kg\n", e.TNTMass)
		cmd.Printf("window breakage: %.4g m\n", e.WindowBreakage)
		cmd.Printf("structural damage: %.4g m\n", e.StructuralDamage)
		cmd.Printf("severe damage: %.4g m\n", e.SevereDamage)
		return nil
	},
	DisableAutoGenTag: true,
}
