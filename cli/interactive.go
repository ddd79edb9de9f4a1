package cli

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"pfeifer.dev/soard/cereal"
	"pfeifer.dev/soard/cereal/soar"
)

func interactive() {
	prompt := promptui.Select{
		Label: "Select Action",
		Items: []string{"Dashboard", "Set MacCready", "Reset Task", "Reload Task"},
	}

	_, result, err := prompt.Run()

	if err != nil {
		fmt.Printf("Prompt failed %v\n", err)
		return
	}

	switch result {
	case "Dashboard":
		dashboard()
	case "Set MacCready":
		value := promptui.Prompt{
			Label:    "MacCready (m/s)",
			Validate: validateFloat,
		}
		v, err := value.Run()
		if err != nil {
			fmt.Printf("Prompt failed %v\n", err)
			return
		}
		send(soar.InputType_setMacCready, v)
	case "Reset Task":
		send(soar.InputType_resetTask, "")
	case "Reload Task":
		send(soar.InputType_reloadTask, "")
	}
}

func send(t soar.InputType, value string) {
	pub := cereal.GetSoarInPub()
	if err := sendInput(&pub, t, value); err != nil {
		fmt.Printf("Could not send %s: %v\n", t, err)
	}
}
