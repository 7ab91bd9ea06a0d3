package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/ndarray/tensor"
)

func NewIterateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iterate",
		Short: "Print the offsets a slice visits",
		Long: `Print the linear offsets visited by a slice of a column-major tensor.

Each --range selects positions along one axis, in axis order. A single
--range on a tensor of rank other than one addresses the flattened tensor.`,
		Example: `  ndtensor iterate --dims 3,4 --range 0:1 --range :
  ndtensor iterate --dims 5 --range 4:0:-2
  ndtensor iterate --dims 2,3 --range [1,0] --range 2`,
		Args: cobra.NoArgs,
		RunE: iterateHandler,
	}

	cmd.Flags().IntSlice("dims", nil, "Axis sizes of the tensor")
	cmd.Flags().StringArray("range", nil, "Axis selection (:, a, a:b, a:b:s, [i,j], empty)")
	_ = cmd.MarkFlagRequired("dims")

	return cmd
}

func iterateHandler(cmd *cobra.Command, _ []string) error {
	sizes, err := cmd.Flags().GetIntSlice("dims")
	if err != nil {
		return err
	}
	specs, err := cmd.Flags().GetStringArray("range")
	if err != nil {
		return err
	}

	dims, err := tensor.NewDimensions(sizes...)
	if err != nil {
		return err
	}
	span := make(tensor.RangeSpan, 0, len(specs))
	for _, s := range specs {
		r, err := parseRange(s)
		if err != nil {
			return err
		}
		span = append(span, r)
	}
	if len(span) == 0 {
		for range sizes {
			span = append(span, tensor.Full())
		}
	}

	viewDims, err := span.Dimensions(dims)
	if err != nil {
		return err
	}
	it, err := tensor.NewRangeIterator(span...)
	if err != nil {
		return err
	}
	slog.Debug("iterator built", "dims", dims, "ranges", len(span), "levels", it.Levels(), "size", it.Size())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "tensor: %v\n", dims)
	fmt.Fprintf(out, "view: %v\n", viewDims)
	fmt.Fprintf(out, "levels: %d\n", it.Levels())
	fmt.Fprintf(out, "size: %d\n", it.Size())

	var data [][]string
	k := 0
	for off := range it.Offsets() {
		coords, err := dims.Coordinates(off)
		if err != nil {
			return err
		}
		data = append(data, []string{strconv.Itoa(k), strconv.Itoa(off), fmt.Sprint(coords)})
		k++
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"N", "OFFSET", "COORDINATES"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}
