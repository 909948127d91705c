package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sartorproj/gospurious/crossval"
	"github.com/sartorproj/gospurious/datasets"
	"github.com/sartorproj/gospurious/stats"
	"github.com/sartorproj/gospurious/timeseries"
)

func detectCmd() *cobra.Command {
	var (
		responsePath    string
		predictorPath   string
		responseColumn  string
		predictorColumn string
		horizon         int
		initial         int
		difference      bool
	)

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Run the detector on two CSV series (or the built-in fixture)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			response, predictor, err := loadPair(responsePath, predictorPath, responseColumn, predictorColumn)
			if err != nil {
				return err
			}

			if difference {
				log.Info().Msg("running on first-differenced series")
				response = response.Diff()
				predictor = predictor.Diff()
			}

			cfg := &crossval.Config{Horizon: horizon, Initial: initial}
			result, err := crossval.Detect(response, predictor, cfg)
			if err != nil {
				return err
			}

			if masked := result.Alignment.Length - initial - horizon + 1 - result.Origins; masked > 0 {
				log.Warn().
					Int("origins", result.Origins).
					Int("masked", masked).
					Msg("some rolling origins produced no comparable forecast pair")
			}

			if result.Alignment.Truncated {
				log.Warn().
					Int("response_len", response.Len()).
					Int("predictor_len", predictor.Len()).
					Int("common_len", result.Alignment.Length).
					Msg("series lengths differ, truncated to common prefix")
			}

			printReport(cmd.OutOrStdout(), response, predictor, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&responsePath, "response", "", "CSV file with the response series (default: built-in air passengers)")
	cmd.Flags().StringVar(&predictorPath, "predictor", "", "CSV file with the predictor series (default: built-in rice production)")
	cmd.Flags().StringVar(&responseColumn, "response-column", "", "value column in the response CSV")
	cmd.Flags().StringVar(&predictorColumn, "predictor-column", "", "value column in the predictor CSV")
	cmd.Flags().IntVar(&horizon, "horizon", 1, "forecast horizon in steps")
	cmd.Flags().IntVar(&initial, "initial", 20, "minimum training window before the first origin")
	cmd.Flags().BoolVar(&difference, "difference", false, "first-difference both series before detection")

	return cmd
}

func loadPair(responsePath, predictorPath, responseColumn, predictorColumn string) (*timeseries.Series, *timeseries.Series, error) {
	if responsePath == "" && predictorPath == "" {
		log.Info().Msg("no input files given, using built-in air-passengers/rice fixture")
		return datasets.AusAirPassengers(), datasets.GuineaRice(), nil
	}
	if responsePath == "" || predictorPath == "" {
		return nil, nil, fmt.Errorf("both --response and --predictor are required when loading from files")
	}

	response, err := loadSeries(responsePath, responseColumn)
	if err != nil {
		return nil, nil, fmt.Errorf("load response: %w", err)
	}
	predictor, err := loadSeries(predictorPath, predictorColumn)
	if err != nil {
		return nil, nil, fmt.Errorf("load predictor: %w", err)
	}
	return response, predictor, nil
}

func loadSeries(path, column string) (*timeseries.Series, error) {
	opts := timeseries.DefaultCSVOptions()
	opts.ValueColumn = column
	return timeseries.LoadCSV(path, opts)
}

// printReport renders the verdict, input diagnostics, and residual
// diagnostics. The writer is injected so tests can capture the output.
func printReport(w io.Writer, response, predictor *timeseries.Series, result *crossval.Result) {
	verdict := "ok: regression beats the naive drift benchmark"
	if result.Spurious {
		verdict = "SPURIOUS: regression loses to the naive drift benchmark"
	}

	fmt.Fprintf(w, "\n%s\n\n", verdict)

	table := tablewriter.NewWriter(w)
	table.Header("Model", "CV MSE", "Origins")
	table.Append("regression (y ~ x)", fmt.Sprintf("%.4f", result.MSERegression), fmt.Sprintf("%d", result.Origins))
	table.Append("naive drift", fmt.Sprintf("%.4f", result.MSENaive), fmt.Sprintf("%d", result.Origins))
	table.Render()

	printStationarity(w, response, predictor)
	printResidualDiagnostics(w, result)
}

func printStationarity(w io.Writer, response, predictor *timeseries.Series) {
	fmt.Fprintln(w, "\nInput diagnostics:")

	table := tablewriter.NewWriter(w)
	table.Header("Series", "ADF stat", "ADF p", "KPSS stat", "KPSS p", "NDiffs")

	for _, s := range []*timeseries.Series{response, predictor} {
		name := s.Name
		if name == "" {
			name = "series"
		}

		adfStat, adfP := "n/a", "n/a"
		if adf := stats.ADF(s, 0); adf != nil {
			adfStat = fmt.Sprintf("%.3f", adf.Statistic)
			adfP = fmt.Sprintf("%.3f", adf.PValue)
		}

		kpssStat, kpssP := "n/a", "n/a"
		if kpss := stats.KPSS(s, "c", 0); kpss != nil {
			kpssStat = fmt.Sprintf("%.3f", kpss.Statistic)
			kpssP = fmt.Sprintf("%.3f", kpss.PValue)
		}

		table.Append(name, adfStat, adfP, kpssStat, kpssP,
			fmt.Sprintf("%d", stats.NDiffs(s, 2, "kpss")))
	}

	table.Render()
}

func printResidualDiagnostics(w io.Writer, result *crossval.Result) {
	fmt.Fprintln(w, "\nCV residual diagnostics:")

	table := tablewriter.NewWriter(w)
	table.Header("Model", "Ljung-Box Q", "LB p", "Durbin-Watson")

	rows := []struct {
		name      string
		residuals []float64
	}{
		{"regression", result.RegressionResiduals},
		{"naive drift", result.NaiveResiduals},
	}

	for _, row := range rows {
		lbQ, lbP := "n/a", "n/a"
		if lb := stats.LjungBox(timeseries.New(row.residuals), 10, 0); lb != nil {
			lbQ = fmt.Sprintf("%.3f", lb.Statistic)
			lbP = fmt.Sprintf("%.3f", lb.PValue)
		}

		dwStat := "n/a"
		if dw := stats.DurbinWatson(row.residuals); dw != nil {
			dwStat = fmt.Sprintf("%.3f", dw.Statistic)
		}

		table.Append(row.name, lbQ, lbP, dwStat)
	}

	table.Render()
}
