package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/ndarray/sparse"
	"github.com/born-ml/ndarray/tensor"
)

func NewCSRCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csr FILE",
		Short: "Assemble a sparse matrix from triplets",
		Long: `Assemble a compressed sparse row matrix from "row col value" lines.

Blank lines and lines starting with # are ignored. Entries with the same
coordinates are summed. Use - to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: csrHandler,
	}

	cmd.Flags().Int("rows", sparse.InferSize, "Number of rows (default: largest row index + 1)")
	cmd.Flags().Int("cols", sparse.InferSize, "Number of columns (default: largest column index + 1)")
	cmd.Flags().Bool("dense", true, "Also print the dense form")

	return cmd
}

func csrHandler(cmd *cobra.Command, args []string) error {
	rows, err := cmd.Flags().GetInt("rows")
	if err != nil {
		return err
	}
	cols, err := cmd.Flags().GetInt("cols")
	if err != nil {
		return err
	}
	dense, err := cmd.Flags().GetBool("dense")
	if err != nil {
		return err
	}

	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	rowIdx, colIdx, values, err := readTriplets(r)
	if err != nil {
		return err
	}
	s, err := sparse.FromCoordinates(rowIdx, colIdx, values, rows, cols)
	if err != nil {
		return err
	}
	slog.Debug("matrix assembled", "triplets", len(values), "rows", s.Rows(), "cols", s.Columns(), "stored", s.Length())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "shape: %dx%d\n", s.Rows(), s.Columns())
	fmt.Fprintf(out, "row_start: %v\n", s.RowStart())
	fmt.Fprintf(out, "column: %v\n", s.ColumnIndices())
	fmt.Fprintf(out, "data: %v\n", s.Values())

	if dense && !s.IsEmpty() {
		writeDense(out, sparse.Full(s))
	}
	return nil
}

func readTriplets(r io.Reader) (rowIdx, colIdx []int, values []float64, err error) {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, nil, nil, fmt.Errorf("line %d: want \"row col value\", got %q", line, text)
		}
		row, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, nil, nil, fmt.Errorf("line %d: row: %w", line, err)
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, nil, nil, fmt.Errorf("line %d: col: %w", line, err)
		}
		v, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("line %d: value: %w", line, err)
		}
		rowIdx = append(rowIdx, row)
		colIdx = append(colIdx, col)
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, err
	}
	return rowIdx, colIdx, values, nil
}

func writeDense(w io.Writer, m *tensor.RTensor) {
	header := make([]string, m.Columns()+1)
	header[0] = "ROW"
	for j := 1; j < len(header); j++ {
		header[j] = strconv.Itoa(j - 1)
	}

	data := make([][]string, m.Rows())
	for i := range data {
		row := make([]string, m.Columns()+1)
		row[0] = strconv.Itoa(i)
		for j := 0; j < m.Columns(); j++ {
			row[j+1] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		data[i] = row
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetBorder(false)
	table.AppendBulk(data)
	table.Render()
}
