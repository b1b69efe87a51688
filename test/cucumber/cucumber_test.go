package cucumber_test

import (
	"fmt"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/test/cucumber"
	"github.com/cucumber/godog"
)

type extender struct {
	*cucumber.TestScenario
}

func (s *extender) debug(as string) error {
	fmt.Println(s.Expand(as))
	return nil
}

// You can also add additional step implementations that have access to the scenario state.
func Example_customSteps() {

	// With extender defined as:
	//
	//  type extender struct {
	//  	*cucumber.TestScenario
	//  }
	//
	//  func (s *extender) debug(as string) error {
	//  	fmt.Println(s.Expand(as))
	//  	return nil
	//  }

	cucumber.StepModules = append(cucumber.StepModules, func(ctx *godog.ScenarioContext, s *cucumber.TestScenario) {
		e := &extender{s}
		ctx.Step(`^debug "([^"]*)"$`, e.debug)
	})

}
