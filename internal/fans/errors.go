package fans

import "fmt"

// IoError is returned when a pwm value could not be written to a fan.
type IoError struct {
	FanId string
	Pwm   int
	Err   error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("unable to set pwm %d on fan %s: %v", e.Pwm, e.FanId, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}
