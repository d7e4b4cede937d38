package controller

import (
	"errors"
	"testing"

	"github.com/openvoiceos/mk2fan/internal/fans"
	"github.com/openvoiceos/mk2fan/internal/sensors"
	"github.com/openvoiceos/mk2fan/internal/testingutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFanControl_SetFanSpeed(t *testing.T) {
	tests := []struct {
		speed       int
		expectedPwm int
	}{
		{0, 0},
		{25, 63},
		{50, 127},
		{100, 255},
		{-5, 0},
		{150, 255},
	}

	for _, tt := range tests {
		// GIVEN
		fan := &testingutils.MockFan{ID: "fan"}
		control := NewFanControl(fan, &testingutils.MockSensor{ID: "cpu", Samples: testingutils.Temperatures(40)})

		// WHEN
		err := control.SetFanSpeed(tt.speed)

		// THEN
		require.NoError(t, err)
		assert.Equal(t, []int{tt.expectedPwm}, fan.GetWrites(), "speed %d", tt.speed)
		assert.Equal(t, tt.expectedPwm, control.GetPwm())
	}
}

func TestFanControl_GetFanSpeed_AfterSet(t *testing.T) {
	// GIVEN
	control := NewFanControl(&testingutils.MockFan{ID: "fan"}, &testingutils.MockSensor{ID: "cpu", Samples: testingutils.Temperatures(40)})

	for _, speed := range []int{0, 25, 50, 100} {
		// WHEN
		err := control.SetFanSpeed(speed)

		// THEN
		require.NoError(t, err)
		assert.Equal(t, speed, control.GetFanSpeed())
	}
}

func TestFanControl_GetFanSpeed_Initial(t *testing.T) {
	// GIVEN
	fan := &testingutils.MockFan{ID: "fan"}
	control := NewFanControl(fan, &testingutils.MockSensor{ID: "cpu", Samples: testingutils.Temperatures(40)})

	// THEN
	assert.Equal(t, 0, control.GetFanSpeed())
	assert.Equal(t, 0, fan.WriteCount())
}

func TestFanControl_SetFanSpeed_WriteFailureKeepsState(t *testing.T) {
	// GIVEN
	fan := &testingutils.MockFan{ID: "fan"}
	control := NewFanControl(fan, &testingutils.MockSensor{ID: "cpu", Samples: testingutils.Temperatures(40)})
	require.NoError(t, control.SetFanSpeed(50))
	fan.SetErr(errBus)

	// WHEN
	err := control.SetFanSpeed(100)

	// THEN
	var ioErr *fans.IoError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "fan", ioErr.FanId)
	assert.ErrorIs(t, err, errBus)
	assert.Equal(t, 127, control.GetPwm())
	assert.Equal(t, 50, control.GetFanSpeed())
}

func TestFanControl_SetFanSpeed_WrapsUntypedErrors(t *testing.T) {
	// GIVEN
	control := NewFanControl(&plainErrorFan{id: "fan"}, &testingutils.MockSensor{ID: "cpu", Samples: testingutils.Temperatures(40)})

	// WHEN
	err := control.SetFanSpeed(25)

	// THEN
	var ioErr *fans.IoError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, 63, ioErr.Pwm)
}

func TestFanControl_GetCpuTemp(t *testing.T) {
	// GIVEN
	control := NewFanControl(&testingutils.MockFan{ID: "fan"}, &testingutils.MockSensor{ID: "cpu", Samples: testingutils.Temperatures(45.5)})

	// WHEN
	value, err := control.GetCpuTemp()

	// THEN
	require.NoError(t, err)
	assert.Equal(t, 45.5, value)
}

func TestFanControl_GetCpuTemp_Error(t *testing.T) {
	// GIVEN
	sensor := &testingutils.MockSensor{ID: "cpu", Samples: []testingutils.Sample{{Err: errors.New("no such file")}}}
	control := NewFanControl(&testingutils.MockFan{ID: "fan"}, sensor)

	// WHEN
	_, err := control.GetCpuTemp()

	// THEN
	var sensorErr *sensors.SensorError
	require.ErrorAs(t, err, &sensorErr)
	assert.Equal(t, "cpu", sensorErr.SensorId)
}
