package cli_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/remedyhq/remedy/pkg/cli"
	"github.com/remedyhq/remedy/pkg/domain/model"
)

func TestAutoDetectGitMetadata(t *testing.T) {
	t.Run("auto-detect from current git repository", func(t *testing.T) {
		input := model.IntakeInput{}
		err := cli.AutoDetectGitMetadata(&input)

		if err != nil {
			t.Skipf("Not in a git repository: %v", err)
		}

		gt.V(t, input.Repo).NotEqual("")
		gt.V(t, input.CommitSHA).NotEqual("")
	})

	t.Run("preserve explicit values", func(t *testing.T) {
		input := model.IntakeInput{
			Repo:      "acme/api",
			CommitSHA: "deadbeef",
		}
		err := cli.AutoDetectGitMetadata(&input)

		if err != nil {
			t.Skipf("Not in a git repository: %v", err)
		}

		gt.V(t, input.Repo).Equal("acme/api")
		gt.V(t, input.CommitSHA).Equal("deadbeef")
	})
}

func TestParseRemoteURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"git@github.com:acme/api.git", "acme/api"},
		{"https://github.com/acme/api.git", "acme/api"},
		{"https://github.com/acme/api", "acme/api"},
		{"ssh://git@gitlab.example.com/acme/api.git", "acme/api"},
	}

	for _, tc := range cases {
		got, err := cli.ParseRemoteURLForTest(tc.url)
		gt.NoError(t, err)
		gt.V(t, got).Equal(tc.want)
	}

	t.Run("unparseable URL fails", func(t *testing.T) {
		_, err := cli.ParseRemoteURLForTest("not-a-remote")
		gt.Error(t, err)
	})
}
