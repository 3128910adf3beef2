package commands

import (
	"github.com/spf13/cobra"

	"marsdome/internal/domain"
	"marsdome/internal/dome"
	"marsdome/internal/materials"
	"marsdome/internal/render"
)

// calc: one calculation from flags.
func calcCmd() *cobra.Command {
	var (
		diameter  float64
		material  string
		thickness float64
		format    string
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute area and Martian weight of one dome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = appCtx.Settings.Output.Format
			}
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			res, err := appCtx.Dome.Calculate(cmd.Context(), domain.DomeSpec{
				Diameter:  diameter,
				Material:  domain.Material(material),
				Thickness: thickness,
			})
			if err != nil {
				return err
			}
			return render.Result(cmd.OutOrStdout(), f, res)
		},
	}
	cmd.Flags().Float64VarP(&diameter, "diameter", "d", 0, "dome diameter in meters")
	cmd.Flags().StringVarP(&material, "material", "m", string(materials.Default), "dome material")
	cmd.Flags().Float64VarP(&thickness, "thickness", "t", dome.DefaultThickness, "shell thickness in centimeters")
	cmd.Flags().StringVarP(&format, "format", "o", "", "output format: text, json or yaml (default from config)")
	_ = cmd.MarkFlagRequired("diameter")
	return cmd
}
