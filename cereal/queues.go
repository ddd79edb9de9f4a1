package cereal

import (
	"time"

	"github.com/pfeiferj/gomsgq"
	"pfeifer.dev/soard/cereal/soar"
	"pfeifer.dev/soard/settings"
)

// Queue names
const (
	SOAR_FIX          = "soarFix"
	SOAR_FIX_EXTERNAL = "soarFixExternal"
	SOAR_IN           = "soarIn"
	SOAR_OUT          = "soarOut"
	SOAR_EXTENDED_OUT = "soarExtendedOut"
)

var startTime = time.Now()

// GetTime is the monotonic log time in nanoseconds.
func GetTime() uint64 {
	return uint64(time.Since(startTime).Nanoseconds())
}

func openQueue(name string) gomsgq.Msgq {
	msgq := gomsgq.Msgq{}
	var err error
	switch name {
	case SOAR_IN, SOAR_OUT:
		err = msgq.Init(name, settings.SMALL_SEGMENT_SIZE)
	default:
		err = msgq.Init(name, settings.DEFAULT_SEGMENT_SIZE)
	}
	if err != nil {
		panic(err)
	}
	return msgq
}

func GetSoarInSub() Subscriber[soar.SoarIn] {
	return NewSubscriber(SOAR_IN, SoarInReader, false)
}

func GetSoarInPub() Publisher[soar.SoarIn] {
	return NewPublisher(SOAR_IN, SoarInCreator)
}

func GetSoarOutPub() Publisher[soar.SoarOut] {
	return NewPublisher(SOAR_OUT, SoarOutCreator)
}

func GetSoarOutSub() Subscriber[soar.SoarOut] {
	return NewSubscriber(SOAR_OUT, SoarOutReader, true)
}

func GetSoarExtendedOutPub() Publisher[soar.SoarExtendedOut] {
	return NewPublisher(SOAR_EXTENDED_OUT, SoarExtendedOutCreator)
}

func GetSoarExtendedOutSub() Subscriber[soar.SoarExtendedOut] {
	return NewSubscriber(SOAR_EXTENDED_OUT, SoarExtendedOutReader, true)
}
