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
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/hazop"
	"github.com/spatialmodel/hazop/lopa"
	"github.com/spatialmodel/hazop/sif"
	"github.com/spf13/cobra"
)

// warnDefaults logs the fields of a record that fell back to their
// defaults while it was read from file.
func warnDefaults(cmd, file string, err error) error {
	var ce hazop.ConversionErrors
	if !errors.As(err, &ce) {
		return err
	}
	Log.WithFields(logrus.Fields{
		"command": cmd,
		"file":    file,
		"fields":  ce.Fields(),
	}).Warn("using default values for fields that could not be read")
	return nil
}

var lopaCmd = &cobra.Command{
	Use:   "lopa",
	Short: "Layer of protection analysis",
	Long: `lopa calculates the mitigated frequency of the scenario in the file given
by --scenario, compares it with the target frequency and, if the target is not
met, reports the safety integrity level a new safety instrumented function
would need.

The file holds the scenario fields at the top level, an [[ipls]] table per
independent protection layer and a [conditional_modifiers] table, e.g.

	initiating_event = "Cooling water failure"
	initiating_event_frequency = 0.1
	target_mitigated_frequency = 1e-6

	[[ipls]]
	name = "High temperature alarm"
	ipl_type = "Operator Response to Alarm"
	pfd = 0.1

	[conditional_modifiers]
	Occupancy = 0.1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file := Cfg.GetString("scenario")
		r, err := readRecord(file)
		if err != nil {
			return err
		}
		s, err := lopa.ScenarioFromRecord(r)
		if err = warnDefaults("lopa", file, err); err != nil {
			return err
		}
		Log.WithFields(logrus.Fields{
			"command": "lopa",
			"file":    file,
			"ipls":    len(s.IPLs),
		}).Debug("read scenario")

		cmd.Printf("initiating frequency: %g/yr\n", s.InitiatingFrequency)
		cmd.Printf("mitigated frequency: %g/yr (target %g/yr)\n", s.MitigatedFrequency(), s.TargetFrequency)
		cmd.Printf("risk reduction factor: %g\n", s.RiskReductionFactor())
		cmd.Printf("meets target: %v\n", s.MeetsTarget())
		if !s.MeetsTarget() {
			req := s.RequiredSIL()
			cmd.Printf("new safety instrumented function needs %v (PFD %g)\n", req.SIL, req.PFD)
			if !req.Achievable {
				cmd.Printf("the target cannot be reached with a safety instrumented function alone\n")
			}
		}
		return nil
	},
	DisableAutoGenTag: true,
}

var sifCmd = &cobra.Command{
	Use:   "sif",
	Short: "Verify a safety instrumented function",
	Long: `sif calculates the probability of failure on demand of the safety
instrumented function in the file given by --sif and checks it against the
required safety integrity level. Each subsystem is given in a [[subsystems]]
table, e.g.

	name = "High pressure trip"
	required_sil = 2

	[[subsystems]]
	name = "PT-101"
	architecture = "1oo1"
	pfd_per_component = 0.02
	subsystem_type = "Sensor"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file := Cfg.GetString("sif")
		r, err := readRecord(file)
		if err != nil {
			return err
		}
		f, err := sif.FromRecord(r)
		if err = warnDefaults("sif", file, err); err != nil {
			return err
		}
		v, err := f.Verify()
		if err != nil {
			return err
		}
		for _, s := range f.Subsystems {
			if s.Bypassed {
				cmd.Printf("%s (%s %v): bypassed\n", s.Name, s.Role, s.Architecture)
				continue
			}
			cmd.Printf("%s (%s %v): PFD %.3g\n", s.Name, s.Role, s.Architecture, f.Model.PFD(s))
		}
		cmd.Printf("overall PFD: %.3g\n", v.OverallPFD)
		cmd.Printf("achieved %v, required %v\n", v.AchievedSIL, v.RequiredSIL)
		for _, rec := range v.Recommendations {
			Log.WithFields(logrus.Fields{
				"command": "sif",
				"sif":     f.Name,
			}).Warn(rec)
			cmd.Printf("%s\n", rec)
		}
		return nil
	},
	DisableAutoGenTag: true,
}
