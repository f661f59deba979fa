// Command currencies renders monetary amounts as human-readable strings
// and inspects the currency registry.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jezen/currencies/internal/config"
	"github.com/jezen/currencies/pkg/currency"
	"github.com/jezen/currencies/pkg/money"
)

var rootCmd = &cobra.Command{
	Use:           "currencies",
	Short:         "Format monetary amounts",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var (
	flagCurrency   string
	flagProfile    string
	flagFile       string
	flagSymbol     bool
	flagCodeSuffix bool
	flagNoDecimals bool
	flagGroupAll   bool
	flagGroupSep   string
	flagDecimalSep string
)

var formatCmd = &cobra.Command{
	Use:   "format [value]",
	Short: "Render one amount, or every amount in a batch file",
	Example: `  currencies format 2342.20
  currencies format -c EUR --symbol 2342.20
  currencies format --file amounts.yaml --profile european.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered currencies",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	f := formatCmd.Flags()
	f.StringVarP(&flagCurrency, "currency", "c", "USD", "ISO code of the currency")
	f.StringVar(&flagProfile, "profile", "", "YAML format profile to overlay on the defaults")
	f.StringVar(&flagFile, "file", "", "YAML batch file of amounts to render")
	f.BoolVar(&flagSymbol, "symbol", false, "prefix the currency symbol instead of the ISO code")
	f.BoolVar(&flagCodeSuffix, "code-suffix", false, "place the ISO code after the number")
	f.BoolVar(&flagNoDecimals, "no-decimals", false, "drop the fractional part")
	f.BoolVar(&flagGroupAll, "group-all", false, "group four-digit amounts too (\"1,000\" rather than \"1000\")")
	f.StringVar(&flagGroupSep, "group-separator", "", "grouping separator character")
	f.StringVar(&flagDecimalSep, "decimal-separator", "", "decimal separator character")

	rootCmd.AddCommand(formatCmd, listCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if flagFile != "" {
		amounts, err := config.LoadAmounts(flagFile)
		if err != nil {
			return err
		}
		for _, a := range amounts {
			fmt.Fprintln(cmd.OutOrStdout(), a.Format(cfg))
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("need a value argument or --file")
	}
	cur, err := currency.Parse(flagCurrency)
	if err != nil {
		return err
	}
	a, err := money.NewFromString(cur, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.Format(cfg))
	return nil
}

// buildConfig layers the format configuration: defaults, then the
// profile file, then explicit flags.
func buildConfig(cmd *cobra.Command) (money.FormatConfig, error) {
	cfg := money.DefaultFormatConfig

	if flagProfile != "" {
		var err error
		cfg, err = config.LoadProfile(flagProfile)
		if err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("symbol") {
		cfg.UseCurrencySymbol = flagSymbol
	}
	if flags.Changed("code-suffix") {
		cfg.SuffixISOCode = flagCodeSuffix
	}
	if flags.Changed("no-decimals") {
		cfg.ShowDecimals = !flagNoDecimals
	}
	if flags.Changed("group-all") {
		cfg.CompactFourDigitAmounts = !flagGroupAll
	}
	if flags.Changed("group-separator") {
		r, err := config.ParseSeparator(flagGroupSep)
		if err != nil {
			return cfg, fmt.Errorf("--group-separator: %w", err)
		}
		cfg.LargeAmountSeparator = r
	}
	if flags.Changed("decimal-separator") {
		r, err := config.ParseSeparator(flagDecimalSep)
		if err != nil {
			return cfg, fmt.Errorf("--decimal-separator: %w", err)
		}
		cfg.DecimalSeparator = r
	}

	return cfg, nil
}

func runList(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tSYMBOL\tDECIMALS")
	for _, c := range currency.Currencies() {
		fmt.Fprintf(w, "%s\t%s\t%d\n", c.Code(), c.Symbol(), c.DecimalDigits())
	}
	return w.Flush()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
