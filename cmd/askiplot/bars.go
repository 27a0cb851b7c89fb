package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/askiplot/askiplot"
	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

func newBarsCommand() *cobra.Command {
	var (
		width    int
		height   int
		title    string
		label    string
		borders  bool
		labels   bool
		xlsxPath string
		sheet    string
		xCol     int
		yCol     int
	)

	cmd := &cobra.Command{
		Use:   "bars [FILE]",
		Short: "Plot a bar chart from a numeric series",
		Long: `bars reads one value per line (x generated as 0, 1, 2, ...) or two
comma, tab or space separated values per line (x, y pairs) from FILE or
standard input and renders one bar per pair. With --xlsx the series is
read from a worksheet instead; rows whose cells do not parse as numbers,
such as headers, are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				x, y []float64
				err  error
			)
			switch {
			case xlsxPath != "":
				x, y, err = readXLSXSeries(xlsxPath, sheet, xCol, yCol)
			case len(args) == 1:
				f, ferr := os.Open(args[0])
				if ferr != nil {
					return ferr
				}
				defer f.Close()
				x, y, err = readSeries(f)
			default:
				x, y, err = readSeries(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			bc, err := askiplot.NewBarChart(width, height)
			if err != nil {
				return err
			}
			if borders {
				bc.DrawBorders(askiplot.BorderAll)
			}
			if title != "" {
				bc.SetTitle(title).DrawTitle()
			}
			if err := bc.PlotBars(x, y, label, askiplot.Brush{}); err != nil {
				return err
			}
			if labels {
				bc.DrawBarLabels(askiplot.Offset{Row: 1})
			}
			fmt.Fprint(cmd.OutOrStdout(), bc.Serialize())
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "W", 0, "Canvas width (0 = terminal width)")
	cmd.Flags().IntVarP(&height, "height", "H", 0, "Canvas height (0 = terminal height)")
	cmd.Flags().StringVar(&title, "title", "", "Chart title")
	cmd.Flags().StringVar(&label, "label", "data", "Legend label for the series")
	cmd.Flags().BoolVar(&borders, "border", false, "Draw canvas borders")
	cmd.Flags().BoolVar(&labels, "labels", false, "Write each bar's value above it")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Read the series from an Excel workbook")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name (default: first sheet)")
	cmd.Flags().IntVar(&xCol, "x-col", 0, "1-based x column in the worksheet (0 = generate 0, 1, 2, ...)")
	cmd.Flags().IntVar(&yCol, "y-col", 1, "1-based y column in the worksheet")

	return cmd
}

// readSeries parses the one- or two-column text format. Empty lines are
// skipped; any mix of commas, tabs and spaces separates columns.
func readSeries(r io.Reader) (x, y []float64, err error) {
	sc := bufio.NewScanner(r)
	row := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == '\t' || r == ' '
		})
		switch len(fields) {
		case 1:
			v, perr := strconv.ParseFloat(fields[0], 64)
			if perr != nil {
				return nil, nil, fmt.Errorf("invalid number in line %q", line)
			}
			x = append(x, float64(row))
			y = append(y, v)
			row++
		case 2:
			xv, xerr := strconv.ParseFloat(fields[0], 64)
			yv, yerr := strconv.ParseFloat(fields[1], 64)
			if xerr != nil || yerr != nil {
				return nil, nil, fmt.Errorf("invalid number in line %q", line)
			}
			x = append(x, xv)
			y = append(y, yv)
		default:
			return nil, nil, fmt.Errorf("invalid line %q: expected 1 or 2 columns", line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// readXLSXSeries reads an (x, y) series from a worksheet. With xCol 0 the
// x-values are the 0-based sequence of accepted rows.
func readXLSXSeries(path, sheet string, xCol, yCol int) (x, y []float64, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = list[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	next := 0
	for i, row := range rows {
		yv, ok := cellFloat(row, yCol)
		if !ok {
			askiplot.Logger().Debug("skipping worksheet row", "sheet", sheet, "row", i+1)
			continue
		}
		xv := float64(next)
		if xCol > 0 {
			if xv, ok = cellFloat(row, xCol); !ok {
				askiplot.Logger().Debug("skipping worksheet row", "sheet", sheet, "row", i+1)
				continue
			}
		}
		x = append(x, xv)
		y = append(y, yv)
		next++
	}
	return x, y, nil
}

// cellFloat parses the 1-based column of a row of cell strings.
func cellFloat(row []string, col int) (float64, bool) {
	if col < 1 || col > len(row) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[col-1]), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
