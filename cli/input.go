package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"pfeifer.dev/soard/cereal"
	"pfeifer.dev/soard/cereal/soar"
)

type SettingType int

const (
	None SettingType = iota
	String
	Float
	Bool
)

// inputTypes maps each input to the kind of value it carries.
var inputTypes = map[soar.InputType]SettingType{
	soar.InputType_setMacCready:        Float,
	soar.InputType_setCruiseEfficiency: Float,
	soar.InputType_setSpeedFilterAlpha: Float,
	soar.InputType_setFaiHalfAngle:     Float,
	soar.InputType_setLineHalfAngle:    Float,
	soar.InputType_setBallastRatio:     Float,
	soar.InputType_setBugs:             Float,
	soar.InputType_setLogLevel:         String,
	soar.InputType_reloadSettings:      None,
	soar.InputType_saveSettings:        None,
	soar.InputType_loadDefaultSettings: None,
	soar.InputType_reloadTask:          None,
	soar.InputType_resetTask:           None,
}

func parseInputType(name string) (soar.InputType, error) {
	for t := range inputTypes {
		if strings.EqualFold(t.String(), name) {
			return t, nil
		}
	}
	return 0, errors.Errorf("unknown command %q", name)
}

func validateFloat(value string) error {
	_, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	return errors.Wrapf(err, "%q is not a number", value)
}

// fillInput sets the value of an input from user text.
func fillInput(input soar.SoarIn, kind SettingType, value string) error {
	switch kind {
	case String:
		return errors.Wrap(input.SetStr(value), "could not set string value")
	case Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return errors.Wrapf(err, "%q is not a bool", value)
		}
		input.SetBool(b)
	case Float:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return errors.Wrapf(err, "%q is not a number", value)
		}
		input.SetFloat(f)
	}
	return nil
}

func sendInput(pub *cereal.Publisher[soar.SoarIn], t soar.InputType, value string) error {
	msg, input := pub.NewMessage(true)
	input.SetType(t)
	if err := fillInput(input, inputTypes[t], value); err != nil {
		return err
	}
	return pub.Send(msg)
}

// fillTaskEdit sets up a task point edit from command line arguments: the
// index followed by the waypoint name for an insert or the target index for
// a move.
func fillTaskEdit(input soar.SoarIn, t soar.InputType, args []string, radius float64) error {
	want := map[soar.InputType]int{
		soar.InputType_insertTaskPoint:    2,
		soar.InputType_removeTaskPoint:    1,
		soar.InputType_moveTaskPoint:      2,
		soar.InputType_setActiveTaskPoint: 1,
	}
	n, ok := want[t]
	if !ok {
		return errors.Errorf("%s is not a task edit", t)
	}
	if len(args) != n {
		return errors.Errorf("%s expects %d arguments, got %d", t, n, len(args))
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.Wrapf(err, "%q is not a task point index", args[0])
	}
	input.SetType(t)
	input.SetIndex(int32(index))

	switch t {
	case soar.InputType_insertTaskPoint:
		input.SetFloat(radius)
		return errors.Wrap(input.SetStr(args[1]), "could not set waypoint name")
	case soar.InputType_moveTaskPoint:
		to, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrapf(err, "%q is not a task point index", args[1])
		}
		input.SetFloat(float64(to))
	}
	return nil
}

func sendTaskEdit(pub *cereal.Publisher[soar.SoarIn], t soar.InputType, args []string, radius float64) error {
	msg, input := pub.NewMessage(true)
	if err := fillTaskEdit(input, t, args, radius); err != nil {
		return err
	}
	return pub.Send(msg)
}
