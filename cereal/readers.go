package cereal

import (
	"pfeifer.dev/soard/cereal/soar"
)

func FixReader(evt soar.Event) (soar.Fix, error) {
	return evt.Fix()
}

func SoarInReader(evt soar.Event) (soar.SoarIn, error) {
	return evt.SoarIn()
}

func SoarOutReader(evt soar.Event) (soar.SoarOut, error) {
	return evt.SoarOut()
}

func SoarExtendedOutReader(evt soar.Event) (soar.SoarExtendedOut, error) {
	return evt.SoarExtendedOut()
}
