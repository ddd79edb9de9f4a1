package cereal

import (
	"pfeifer.dev/soard/cereal/soar"
)

func FixCreator(evt soar.Event) (soar.Fix, error) {
	return evt.NewFix()
}

func SoarInCreator(evt soar.Event) (soar.SoarIn, error) {
	return evt.NewSoarIn()
}

func SoarOutCreator(evt soar.Event) (soar.SoarOut, error) {
	return evt.NewSoarOut()
}

func SoarExtendedOutCreator(evt soar.Event) (soar.SoarExtendedOut, error) {
	return evt.NewSoarExtendedOut()
}
