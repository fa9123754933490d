// Command astk builds surfaces of revolution and exports them as IGES.
package main

import (
	"os"

	astk "github.com/Chaitanya-Cho-Ongole/astk"
	"github.com/Chaitanya-Cho-Ongole/astk/iges"
	mk "github.com/Chaitanya-Cho-Ongole/astk/make"
	"github.com/Chaitanya-Cho-Ongole/astk/units"
	"github.com/spf13/cobra"
	"github.com/ungerik/go3d/float64/vec3"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if err := newRootCmd(logger.Sugar()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(log *zap.SugaredLogger) *cobra.Command {
	root := &cobra.Command{
		Use:           "astk",
		Short:         "Parametric surface construction and export",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRevolveCmd(log))

	return root
}

func newRevolveCmd(log *zap.SugaredLogger) *cobra.Command {
	var (
		radius, height float64
		startDeg       float64
		endDeg         float64
		nurbs          bool
		output         string
	)

	cmd := &cobra.Command{
		Use:   "revolve",
		Short: "Revolve a cylindrical profile about the z axis and write an IGES file",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := astk.NewBezierCurve([]vec3.T{
				{radius, 0, 0},
				{radius, 0, height},
			})

			center := vec3.T{}
			axis := vec3.T{0, 0, 1}
			start := units.Degrees(startDeg)
			end := units.Degrees(endDeg)

			var surf astk.Surface
			var err error
			if nurbs {
				surf, err = mk.RevolvedNurbs(profile, &center, &axis, start, end)
			} else {
				surf, err = mk.RevolvedRationalBezier(profile, &center, &axis, start, end)
			}
			if err != nil {
				log.Errorw("revolution failed", "error", err)
				return err
			}

			writer := iges.NewWriter(iges.NewRationalBSplineSurface(surf.Interchange()))
			if err := writer.WriteFile(output); err != nil {
				log.Errorw("export failed", "error", err)
				return err
			}

			log.Infow("surface exported",
				"output", output,
				"nurbs", nurbs,
				"sweepDegrees", endDeg-startDeg)

			return nil
		},
	}

	cmd.Flags().Float64Var(&radius, "radius", 1, "profile distance from the axis")
	cmd.Flags().Float64Var(&height, "height", 1, "profile extent along the axis")
	cmd.Flags().Float64Var(&startDeg, "start", 0, "sweep start angle in degrees")
	cmd.Flags().Float64Var(&endDeg, "end", 360, "sweep end angle in degrees")
	cmd.Flags().BoolVar(&nurbs, "nurbs", false, "emit the piecewise NURBS form instead of a single rational patch")
	cmd.Flags().StringVar(&output, "output", "revolved", "output file path, .igs appended when missing")

	return cmd
}
