package constants

// ForgeType type - the Git host family a repository lives on
type ForgeType string

const (
	// ForgeTypeGithub - repositories hosted on GitHub or a GitHub Enterprise install
	ForgeTypeGithub ForgeType = "github"
	// ForgeTypeGitlab - repositories hosted on GitLab
	ForgeTypeGitlab ForgeType = "gitlab"
)

func (f ForgeType) String() string {
	return string(f)
}
