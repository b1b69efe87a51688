// Ensures the user has at least one repository registered and stores it's id in a scenario variable:
//    Given I have registered a repository as ${rid}
package cucumber

import (
	"fmt"
	"net/http"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/compat"
	depbottest "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/test"
	"github.com/cucumber/godog"
)

func init() {
	StepModules = append(StepModules, func(ctx *godog.ScenarioContext, s *TestScenario) {
		ctx.Step(`^I have registered a repository as \${([^"]*)}$`, s.iHaveRegisteredARepositoryAs)
	})
}

func (s *TestScenario) iHaveRegisteredARepositoryAs(id string) error {
	session := s.Session()

	// lock the TestUser to avoid 2 scenarios with the same TestUser registering the repository concurrently.
	session.TestUser.Mu.Lock()
	defer session.TestUser.Mu.Unlock()

	client := depbottest.NewAPIClient(s.Suite.Helper)
	repositories, _, err := client.ListRepositories(session.TestUser.Ctx, nil)
	if err != nil {
		return err
	}

	repositoryId := ""
	if len(repositories.Items) != 0 {
		repositoryId = repositories.Items[0].Id
	} else {
		repository, resp, err := client.CreateRepository(session.TestUser.Ctx, true, compat.RepositoryRequestPayload{
			Name:      "dub-cucumber/payments",
			ForgeType: "github",
		})
		if err != nil {
			return err
		}
		if resp.StatusCode() != http.StatusAccepted {
			return fmt.Errorf("expected repository registration to be accepted, got %d: %s", resp.StatusCode(), resp.String())
		}
		repositoryId = repository.Id
	}
	s.Variables[id] = repositoryId

	return nil
}
