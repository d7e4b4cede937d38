package fan

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/openvoiceos/mk2fan/internal"
	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/openvoiceos/mk2fan/internal/controller"
	"github.com/openvoiceos/mk2fan/internal/fans"
	"github.com/openvoiceos/mk2fan/internal/i2c"
	"github.com/openvoiceos/mk2fan/internal/persistence"
	"github.com/openvoiceos/mk2fan/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var speedCmd = &cobra.Command{
	Use:   "speed [0..100]",
	Short: "Get/Set the speed of the fan ([0..100])",
	Long: `Without an argument the last speed applied by mk2fan is printed.
With an argument the fan is set to the given speed once.`,
	Args: cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		if err := loadConfig(); err != nil {
			return err
		}
		config := configuration.CurrentConfig
		pers := persistence.NewPersistence(config.DbPath)

		if len(args) <= 0 {
			state, err := pers.LoadFanSpeed(config.Fan.ID)
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("no speed has been applied to fan %s yet", config.Fan.ID)
			} else if err != nil {
				return err
			}
			fmt.Printf("%d", state.Speed)
			return nil
		}

		speed, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		if speed < fans.MinSpeed || speed > fans.MaxSpeed {
			return fmt.Errorf("speed must be in [%d..%d], got %d", fans.MinSpeed, fans.MaxSpeed, speed)
		}

		bus := i2c.NewAdapter()
		defer func() {
			_ = bus.Close()
		}()
		fan, err := internal.CreateFan(config.Fan, bus)
		if err != nil {
			return err
		}
		control := controller.NewFanControl(fan, nil)
		if err := control.SetFanSpeed(speed); err != nil {
			return err
		}

		if err := pers.Init(); err == nil {
			err = pers.SaveFanSpeed(fan.GetId(), persistence.FanState{
				Speed:     speed,
				Pwm:       control.GetPwm(),
				Timestamp: time.Now(),
			})
			if err != nil {
				ui.Warning("Unable to persist speed of fan %s: %v", fan.GetId(), err)
			}
		}
		return nil
	},
}

func init() {
	Command.AddCommand(speedCmd)
}
