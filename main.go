package main

import (
	"log/slog"
	"time"

	"pfeifer.dev/soard/cereal"
	"pfeifer.dev/soard/cli"
	"pfeifer.dev/soard/params"
	ms "pfeifer.dev/soard/settings"
	"pfeifer.dev/soard/utils"
)

// fixes evaluated per loop iteration at most, so inputs are never starved
const MAX_FIXES_PER_LOOP = 20

func main() {
	cli.Handle()

	params.EnsureParamDirectories()
	ms.Settings.LoadWithRetries(5)

	state := NewState(&ms.Settings)
	utils.Logwe(state.LoadTask())

	pub := cereal.GetSoarOutPub()
	extended := ExtendedState{Pub: cereal.GetSoarExtendedOutPub(), state: state}

	inputSub := cereal.GetSoarInSub()
	defer inputSub.Close()
	fixSub := cereal.GetFixSub()
	defer fixSub.Close()

	for {
		time.Sleep(ms.LOOP_DELAY)

		input, success := inputSub.Read()
		if success {
			state.HandleInput(input)
		}

		for range MAX_FIXES_PER_LOOP {
			wire, success := fixSub.Read()
			if !success {
				break
			}
			fix := cereal.FixFromMessage(wire)
			state.Update(&fix)
			if err := pub.Send(state.ToMessage()); err != nil {
				slog.Error("failed to send update", "error", err)
			}
		}

		utils.Loge(extended.Send())
	}
}
