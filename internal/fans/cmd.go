package fans

import (
	"strconv"
	"strings"
	"time"

	"github.com/openvoiceos/mk2fan/internal/configuration"
	"github.com/openvoiceos/mk2fan/internal/util"
)

const (
	cmdTimeout = 2 * time.Second

	pwmPlaceholder = "%pwm%"
)

// CmdFan runs an executable to set the pwm value, e.g.
// "i2cset -a -y 1 0x04 101 %pwm% i".
type CmdFan struct {
	Config configuration.FanConfig `json:"config"`
}

func (fan *CmdFan) GetId() string {
	return fan.Config.ID
}

func (fan *CmdFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *CmdFan) SetPwm(pwm int) (err error) {
	conf := fan.Config.Cmd.SetPwm

	args := make([]string, 0, len(conf.Args))
	for _, arg := range conf.Args {
		args = append(args, strings.ReplaceAll(arg, pwmPlaceholder, strconv.Itoa(pwm)))
	}

	_, err = util.SafeCmdExecution(conf.Exec, args, cmdTimeout)
	if err != nil {
		return &IoError{FanId: fan.GetId(), Pwm: pwm, Err: err}
	}
	return nil
}
