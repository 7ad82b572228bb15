package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/fincalc/internal/format"
	"github.com/rpgo/fincalc/internal/numinput"
	"github.com/rpgo/fincalc/internal/output"
	money "github.com/rpgo/fincalc/pkg/decimal"
)

func newNormalizeCmd(a *app) *cobra.Command {
	var loose bool
	cmd := &cobra.Command{
		Use:   "normalize [input...]",
		Short: "Parse field input into a number (invalid input is 0)",
		Example: `  fincalc normalize 12.5 "" abc
  fincalc normalize --loose '$1,234.50'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				v := numinput.Normalize(raw)
				if loose {
					v = numinput.NormalizeLooseWith(a.settings.Registry(), raw)
				}
				fmt.Fprintln(cmd.OutOrStdout(), numinput.FormatForEdit(v, true))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&loose, "loose", false, "strip currency symbols and grouping first")
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	var keepZero bool
	cmd := &cobra.Command{
		Use:   "edit [input...]",
		Short: "Render values the way an input field shows them",
		Long: `Renders each value as an editable field would. Zero renders as an empty
line unless --keep-zero (or keep_zero in settings) is set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keep := a.settings.KeepZero
			if cmd.Flags().Changed("keep-zero") {
				keep = keepZero
			}
			for _, raw := range args {
				fmt.Fprintln(cmd.OutOrStdout(), numinput.FormatForEdit(numinput.Normalize(raw), keep))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&keepZero, "keep-zero", false, "render zero as 0 instead of empty")
	return cmd
}

func newCurrencyCmd(a *app) *cobra.Command {
	var (
		code     string
		minD     int
		maxD     int
		noSymbol bool
	)
	cmd := &cobra.Command{
		Use:     "currency [amount...]",
		Aliases: []string{"money"},
		Short:   "Format amounts in a currency",
		Example: `  fincalc currency 1234.5
  fincalc currency --code JPY 1234.5
  fincalc currency --code EUR --min 0 --no-symbol 12`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []format.Option{format.WithOptions(a.settings.Display)}
			if cmd.Flags().Changed("min") {
				opts = append(opts, format.WithMinFractionDigits(minD))
			}
			if cmd.Flags().Changed("max") {
				opts = append(opts, format.WithMaxFractionDigits(maxD))
			}
			if noSymbol {
				opts = append(opts, format.WithoutSymbol())
			}
			if code != "" {
				a.preference.Set(code)
			}
			f := a.formatter()
			reg := a.settings.Registry()
			code := f.Selected().Code
			for _, raw := range args {
				m := money.FromInput(numinput.SanitizeWith(reg, raw), code)
				fmt.Fprintln(cmd.OutOrStdout(), m.FormatWith(f, opts...))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&code, "code", "", "currency code (default from settings)")
	cmd.Flags().IntVar(&minD, "min", 0, "minimum fraction digits")
	cmd.Flags().IntVar(&maxD, "max", 0, "maximum fraction digits")
	cmd.Flags().BoolVar(&noSymbol, "no-symbol", false, "omit the currency symbol")
	return cmd
}

func newPercentCmd(a *app) *cobra.Command {
	var digits int
	cmd := &cobra.Command{
		Use:   "percent [value...]",
		Short: "Format rates as percentages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				fmt.Fprintln(cmd.OutOrStdout(), format.FormatPercent(numinput.NormalizeLooseWith(a.settings.Registry(), raw), digits))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&digits, "digits", 2, "fraction digits")
	return cmd
}

func newCurrenciesCmd(a *app) *cobra.Command {
	var (
		outFormat string
		sample    float64
	)
	cmd := &cobra.Command{
		Use:   "currencies",
		Short: "List known currencies and how they render",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.settings.OutputFormat
			if outFormat != "" {
				name = outFormat
			}
			f, err := output.GetFormatterByName(name)
			if err != nil {
				return err
			}
			rows := output.BuildRows(a.settings.Registry(), sample)
			return output.WriteFormatted(cmd.OutOrStdout(), f, rows)
		},
	}
	cmd.Flags().StringVarP(&outFormat, "output", "o", "", "output format: "+fmt.Sprint(output.AvailableFormatterNames()))
	cmd.Flags().Float64Var(&sample, "sample", output.DefaultSample, "amount rendered in the sample column")
	return cmd
}
