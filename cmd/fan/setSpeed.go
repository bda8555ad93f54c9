package fan

import (
	"fmt"
	"strconv"

	"github.com/markusressel/radiator/internal/curves"
	"github.com/markusressel/radiator/internal/fans"
	"github.com/markusressel/radiator/internal/packet"
	"github.com/markusressel/radiator/internal/ui"
	"github.com/spf13/cobra"
)

var dryRun bool

var setSpeedCmd = &cobra.Command{
	Use:   "setSpeed <duty>",
	Short: fmt.Sprintf("Set the speed of the fan to the given duty cycle ([%d..%d])", curves.MinDuty, curves.MaxDuty),
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		duty, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		if duty < curves.MinDuty || duty > curves.MaxDuty {
			return fmt.Errorf("duty cycle %d is out of range [%d..%d]", duty, curves.MinDuty, curves.MaxDuty)
		}

		if dryRun {
			return printDryRun(duty)
		}

		fan, err := getFan()
		if err != nil {
			return err
		}
		defer fan.Close()

		if err = fan.SetPwm(duty); err != nil {
			return err
		}

		switch f := fan.(type) {
		case *fans.PwmFan:
			ui.Success("Set %s to %d (pwm %d)", f.GetId(), f.GetPwm(), curves.ToPwm(f.GetPwm()))
		case *fans.UdpFan:
			ui.Success("Sent [%s] from %s to %s", packet.Encode(uint16(f.GetPwm())), f.LocalAddr(), f.Address)
		default:
			ui.Success("Set %s to %d", fan.GetId(), fan.GetPwm())
		}
		return nil
	},
}

// printDryRun shows what each fan type would receive, without touching any fan
func printDryRun(duty int) error {
	p := packet.Encode(uint16(duty))
	decoded, err := packet.Decode(p.Bytes())
	if err != nil {
		return err
	}
	ui.Printfln("pwm: %d", curves.ToPwm(duty))
	ui.Printfln("udp: [%s] (duty %d)", p, decoded)
	return nil
}

func init() {
	setSpeedCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Only print the values that would be sent to the fan")
	Command.AddCommand(setSpeedCmd)
}
