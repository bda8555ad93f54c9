package cmd

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/radiator/cmd/global"
	"github.com/markusressel/radiator/internal/curves"
	"github.com/markusressel/radiator/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

const (
	curvePreviewFrom = 30
	curvePreviewTo   = 80
	curvePreviewStep = 5
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Print the temperature to duty cycle mapping to console",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		curve := curves.Default

		var rows [][]string
		for temp := curvePreviewFrom; temp <= curvePreviewTo; temp += curvePreviewStep {
			duty := curve.Evaluate(float64(temp))
			rows = append(rows, []string{
				fmt.Sprintf("%d°C", temp),
				strconv.Itoa(duty),
				strconv.Itoa(curves.ToPwm(duty)),
			})
		}

		// print table
		ui.Printfln(curve.GetId())
		tab := table.Table{
			Headers: []string{"Temperature", "Duty", "PWM"},
			Rows:    rows,
		}
		var buf bytes.Buffer
		err := tab.WriteTable(&buf, &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		})
		if err != nil {
			return err
		}
		ui.Printfln(buf.String())

		// print graph, one value per degree
		values := make([]float64, 0, curvePreviewTo-curvePreviewFrom+1)
		for temp := curvePreviewFrom; temp <= curvePreviewTo; temp++ {
			values = append(values, float64(curve.Evaluate(float64(temp))))
		}
		caption := fmt.Sprintf("Duty / Temperature (%d..%d°C)", curvePreviewFrom, curvePreviewTo)
		graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
		ui.Printfln(graph)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(curveCmd)
}
